package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func schemaServer(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schemas/bank", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": ModelSchema{
				Name:        "bank",
				DisplayName: "Bank",
				PrimaryKey:  "id",
				Timestamps:  true,
				Fields: []FieldDescriptor{
					{Key: "name", Label: "Name", Type: FieldText, Required: true},
				},
			},
		})
	})
	mux.HandleFunc("/api/schemas/models", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []ModelInfo{
				{Name: "bank", DisplayName: "Bank", Collection: "banks"},
			},
		})
	})
	mux.HandleFunc("/api/schemas", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]ModelSchema{
				"bank": {Name: "bank", DisplayName: "Bank"},
			},
		})
	})
	mux.HandleFunc("/api/schemas/unicorn", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "model \"unicorn\" not found",
		})
	})
	return httptest.NewServer(mux)
}

func TestSchema_FetchAndCache(t *testing.T) {
	var hits int64
	server := schemaServer(t, &hits)
	defer server.Close()

	c := New(server.URL, "")
	ctx := context.Background()

	first, err := c.Schema(ctx, "bank")
	assert.NoError(t, err)
	assert.Equal(t, "Bank", first.DisplayName)
	assert.Len(t, first.Fields, 1)

	// Second call is served from cache.
	_, err = c.Schema(ctx, "bank")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))

	c.ClearCache()
	_, err = c.Schema(ctx, "bank")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&hits))
}

func TestSchema_NotFound(t *testing.T) {
	var hits int64
	server := schemaServer(t, &hits)
	defer server.Close()

	_, err := New(server.URL, "").Schema(context.Background(), "unicorn")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSchemas_RefreshesPerModelCache(t *testing.T) {
	var hits int64
	server := schemaServer(t, &hits)
	defer server.Close()

	c := New(server.URL, "")
	ctx := context.Background()

	schemas, err := c.Schemas(ctx)
	assert.NoError(t, err)
	assert.Contains(t, schemas, "bank")

	// The bulk fetch seeded the cache; the per-model call stays local.
	_, err = c.Schema(ctx, "bank")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
}

func TestModelNames(t *testing.T) {
	var hits int64
	server := schemaServer(t, &hits)
	defer server.Close()

	infos, err := New(server.URL, "").ModelNames(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, infos, 1) {
		assert.Equal(t, "banks", infos[0].Collection)
	}
}

func TestClient_SendsBearerToken(t *testing.T) {
	var header string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []ModelInfo{}})
	}))
	defer server.Close()

	_, err := New(server.URL, "secret-token").ModelNames(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", header)
}
