package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"admin-service/internal/config"
	"admin-service/internal/models"
	"admin-service/internal/registry"
	"admin-service/internal/schema"
	"admin-service/internal/store"
)

func TestPing(t *testing.T) {
	w := doRequest("GET", "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	assert.True(t, env.Success)
	record := dataRecord(t, env)
	assert.NotEmpty(t, record["timestamp"])
}

func TestAuthRequired(t *testing.T) {
	secured := newTestRouter(config.Config{Environment: "test", APIToken: "secret-token"})

	request := func(header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/schemas/models", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		secured.ServeHTTP(w, req)
		return w
	}

	w := request("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", parseEnvelope(t, w).Message)

	w = request("Bearer wrong-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid or expired token", parseEnvelope(t, w).Message)

	w = request("Bearer secret-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired_PingStaysOpen(t *testing.T) {
	secured := newTestRouter(config.Config{Environment: "test", APIToken: "secret-token"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	secured.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchDisabled_TermIsIgnored(t *testing.T) {
	clearTable(t)

	// A bank config with search switched off; the term must not narrow results.
	reg := registry.DefaultModels()
	st := store.New(testDB)
	configs := config.NewModels(config.ModelConfig{
		Name:     "bank",
		Features: config.FeaturesWithout(config.FeatureSearch),
	})
	h := New(config.Config{Environment: "test"}, st, reg, configs, schema.NewService(reg, st))
	engine := gin.New()
	h.RegisterRoutes(engine)

	createRecord(t, "banks", models.Record{"name": "First National", "code": "FN"})
	createRecord(t, "banks", models.Record{"name": "Meridian Trust", "code": "MT"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/banks?search=meridian", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataRecords(t, parseEnvelope(t, w)), 2)
}

func TestErrorDetailHiddenInProduction(t *testing.T) {
	clearTable(t)
	production := newTestRouter(config.Config{Environment: "production"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/banks", nil)
	req.Header.Set("Content-Type", "application/json")
	production.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Empty(t, env.Error, "production responses must not leak error detail")
	assert.NotEmpty(t, env.Message)
}
