package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"admin-service/internal/models"
	"admin-service/internal/schema"
)

func parseSchema(t *testing.T, env testEnvelope) schema.ModelSchema {
	t.Helper()
	var ms schema.ModelSchema
	if err := json.Unmarshal(env.Data, &ms); err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}
	return ms
}

func fieldByKey(fields []schema.FieldDescriptor, key string) (schema.FieldDescriptor, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return schema.FieldDescriptor{}, false
}

func TestGetModelSchema_Bank(t *testing.T) {
	clearTable(t)

	w := doRequest("GET", "/api/schemas/bank", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	ms := parseSchema(t, parseEnvelope(t, w))
	assert.Equal(t, "bank", ms.Name)
	assert.Equal(t, "Bank", ms.DisplayName)
	assert.Equal(t, "id", ms.PrimaryKey)
	assert.True(t, ms.Timestamps)

	email, ok := fieldByKey(ms.Fields, "email")
	if assert.True(t, ok) {
		assert.Equal(t, schema.FieldEmail, email.Type)
		assert.Equal(t, "example@domain.com", email.Placeholder)
	}

	active, ok := fieldByKey(ms.Fields, "isActive")
	if assert.True(t, ok) {
		assert.Equal(t, schema.FieldBoolean, active.Type)
		assert.Equal(t, true, active.DefaultValue)
	}

	created, ok := fieldByKey(ms.Fields, "createdAt")
	if assert.True(t, ok) {
		assert.Equal(t, schema.FieldDate, created.Type)
		assert.True(t, created.Readonly)
	}
}

func TestGetModelSchema_ByCollectionName(t *testing.T) {
	w := doRequest("GET", "/api/schemas/banks", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bank", parseSchema(t, parseEnvelope(t, w)).Name)
}

func TestGetModelSchema_NotFound(t *testing.T) {
	w := doRequest("GET", "/api/schemas/unicorn", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := parseEnvelope(t, w)
	assert.Contains(t, env.Message, `model "unicorn" not found`)
	assert.Contains(t, env.Message, "banks (Bank)")
}

func TestGetModelSchema_RefOptionsFromRecords(t *testing.T) {
	clearTable(t)
	createRecord(t, "banks", models.Record{"name": "First National", "code": "FN"})

	w := doRequest("GET", "/api/schemas/card", nil)

	ms := parseSchema(t, parseEnvelope(t, w))
	bank, ok := fieldByKey(ms.Fields, "bank")
	if assert.True(t, ok) {
		assert.Equal(t, schema.FieldSelect, bank.Type)
		if assert.Len(t, bank.Options, 1) {
			assert.Equal(t, "First National", bank.Options[0].Label)
		}
	}
}

func TestGetAllSchemas(t *testing.T) {
	w := doRequest("GET", "/api/schemas", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var schemas map[string]schema.ModelSchema
	assert.NoError(t, json.Unmarshal(parseEnvelope(t, w).Data, &schemas))
	assert.Len(t, schemas, 10)
	assert.Contains(t, schemas, "bank")
	assert.Contains(t, schemas, "offer")
}

func TestGetModelNames(t *testing.T) {
	w := doRequest("GET", "/api/schemas/models", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var infos []schema.ModelInfo
	assert.NoError(t, json.Unmarshal(parseEnvelope(t, w).Data, &infos))
	assert.Len(t, infos, 10)
}

func TestGetStats(t *testing.T) {
	clearTable(t)
	createRecord(t, "banks", models.Record{"name": "Active Bank", "code": "AB"})
	gone := createRecord(t, "banks", models.Record{"name": "Trashed Bank", "code": "TB"})
	doRequest("DELETE", "/api/banks/"+gone["id"].(string), nil)

	w := doRequest("GET", "/api/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var stats []map[string]interface{}
	assert.NoError(t, json.Unmarshal(parseEnvelope(t, w).Data, &stats))
	assert.Len(t, stats, 10)

	var bank map[string]interface{}
	for _, row := range stats {
		if row["model"] == "bank" {
			bank = row
			break
		}
	}
	if assert.NotNil(t, bank) {
		assert.Equal(t, float64(1), bank["active"])
		assert.Equal(t, float64(1), bank["deleted"])
		assert.Equal(t, float64(2), bank["total"])
	}
}
