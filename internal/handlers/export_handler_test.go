package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"admin-service/internal/models"
)

func TestExportBanks_CSV(t *testing.T) {
	clearTable(t)
	createRecord(t, "banks", models.Record{"name": `Quote "Heavy" Bank`, "code": "QH", "country": "US"})

	w := doRequest("GET", "/api/banks/export?format=csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="Bank_export.csv"`)

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "id,name,code,country,email,phone,website,logo,isActive,createdAt,updatedAt", lines[0])
		assert.Contains(t, lines[1], `"Quote ""Heavy"" Bank"`)
		assert.Contains(t, lines[1], `"US"`)
	}
}

func TestExportBanks_CSVEmptyCollection(t *testing.T) {
	clearTable(t)

	w := doRequest("GET", "/api/banks/export?format=csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "an empty export still carries the header row")
}

func TestExportBanks_JSONDefault(t *testing.T) {
	clearTable(t)
	createRecord(t, "banks", models.Record{"name": "Exported", "code": "EX"})

	w := doRequest("GET", "/api/banks/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	assert.True(t, env.Success)
	records := dataRecords(t, env)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Exported", records[0]["name"])
	}
}

func TestExportBanks_WithFilters(t *testing.T) {
	clearTable(t)
	createRecord(t, "banks", models.Record{"name": "Domestic", "code": "DO", "country": "US"})
	createRecord(t, "banks", models.Record{"name": "Foreign", "code": "FO", "country": "DE"})

	w := doRequest("GET", "/api/banks/export?useFilters=true&country=US", nil)

	records := dataRecords(t, parseEnvelope(t, w))
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Domestic", records[0]["name"])
	}
}

func TestExportBanks_IgnoresFiltersByDefault(t *testing.T) {
	clearTable(t)
	createRecord(t, "banks", models.Record{"name": "Domestic", "code": "DO", "country": "US"})
	createRecord(t, "banks", models.Record{"name": "Foreign", "code": "FO", "country": "DE"})

	w := doRequest("GET", "/api/banks/export?country=US", nil)

	assert.Len(t, dataRecords(t, parseEnvelope(t, w)), 2)
}

func TestExport_ExcludesDeletedRecords(t *testing.T) {
	clearTable(t)
	kept := createRecord(t, "banks", models.Record{"name": "Kept", "code": "KE"})
	gone := createRecord(t, "banks", models.Record{"name": "Gone", "code": "GO"})
	doRequest("DELETE", "/api/banks/"+gone["id"].(string), nil)

	w := doRequest("GET", "/api/banks/export", nil)

	records := dataRecords(t, parseEnvelope(t, w))
	if assert.Len(t, records, 1) {
		assert.Equal(t, kept["id"], records[0]["id"])
	}
}
