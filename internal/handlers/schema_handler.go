package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-service/internal/models"
	"admin-service/internal/registry"
)

// GetModelSchema godoc
// @Summary Introspected schema for one model
// @Produce json
// @Param model path string true "Model name or collection"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/schemas/{model} [get]
func (h *Handlers) GetModelSchema(c *gin.Context) {
	name := c.Param("model")
	ms, err := h.schema.DescribeModel(c.Request.Context(), name)
	if err != nil {
		var notFound *registry.NotFoundError
		if errors.As(err, &notFound) {
			h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound, notFound.Error(), nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error generating schema for "+name, err)
		return
	}
	respondSuccess(c, http.StatusOK, ms, "")
}

// GetAllSchemas godoc
// @Summary Introspected schemas for every model
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/schemas [get]
func (h *Handlers) GetAllSchemas(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.schema.DescribeAll(c.Request.Context()), "")
}

// GetModelNames godoc
// @Summary Registered model names for navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/schemas/models [get]
func (h *Handlers) GetModelNames(c *gin.Context) {
	respondSuccess(c, http.StatusOK, h.schema.ModelNames(), "")
}

// modelStats is one row of the dashboard stats payload.
type modelStats struct {
	Model       string `json:"model"`
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
	Active      int64  `json:"active"`
	Deleted     int64  `json:"deleted"`
	Total       int64  `json:"total"`
}

// GetStats godoc
// @Summary Record counts per visible collection
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/stats [get]
func (h *Handlers) GetStats(c *gin.Context) {
	stats := make([]modelStats, 0)
	for _, mc := range h.models.Visible() {
		model, err := h.registry.Resolve(mc.Name)
		if err != nil {
			continue
		}
		active, deleted, err := h.store.Counts(c.Request.Context(), model.Collection)
		if err != nil {
			h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
				"Error fetching stats", err)
			return
		}
		stats = append(stats, modelStats{
			Model:       mc.Name,
			DisplayName: mc.DisplayName,
			Icon:        mc.UI.Icon,
			Active:      active,
			Deleted:     deleted,
			Total:       active + deleted,
		})
	}
	respondSuccess(c, http.StatusOK, stats, "")
}
