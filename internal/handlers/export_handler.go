package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-service/internal/config"
	"admin-service/internal/models"
	"admin-service/internal/registry"
	"admin-service/internal/store"
)

// Export godoc
// @Summary Export a collection as JSON or CSV
// @Produce json
// @Param collection path string true "Collection name"
// @Param format query string false "json or csv" default(json)
// @Param useFilters query string false "apply the list filters to the export"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /api/{collection}/export [get]
func (h *Handlers) Export(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Export operation not allowed for this model", config.FeatureExport) {
		return
	}

	params := store.ListParams{}
	if c.Query("useFilters") == "true" {
		params = h.listParams(c, mc, false)
	}
	records, err := h.store.FindAll(c.Request.Context(), model.Collection, params)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error exporting "+model.Name, err)
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		csv := recordsToCSV(model, records)
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", model.Name+"_export.csv"))
		c.String(http.StatusOK, csv)
		return
	}
	respondSuccess(c, http.StatusOK, records, "")
}

// exportColumns fixes the CSV column order: identity first, then the
// declared fields in definition order, then the timestamps.
func exportColumns(model *registry.ModelDef) []string {
	columns := []string{models.KeyID}
	for _, field := range model.Fields {
		columns = append(columns, field.Name)
	}
	if model.Timestamps {
		columns = append(columns, models.KeyCreatedAt, models.KeyUpdatedAt)
	}
	return columns
}

// recordsToCSV renders the records with a deterministic column order.
// String cells are always quoted with embedded quotes doubled; other values
// are printed bare.
func recordsToCSV(model *registry.ModelDef, records []models.Record) string {
	columns := exportColumns(model)

	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	b.WriteString("\n")

	for _, record := range records {
		cells := make([]string, 0, len(columns))
		for _, column := range columns {
			cells = append(cells, csvCell(record[column]))
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func csvCell(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return fmt.Sprintf("%v", value)
}
