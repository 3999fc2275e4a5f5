package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"admin-service/internal/config"
	"admin-service/internal/models"
	"admin-service/internal/registry"
	"admin-service/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// reservedParams are query keys consumed by pagination, sorting, search and
// export; everything else becomes an equality filter.
var reservedParams = map[string]bool{
	"search": true,
	"page":   true,
	"limit":  true,
	"sort":   true,
	"order":  true,

	"format":     true,
	"useFilters": true,
}

// listParams assembles store.ListParams from the request. The search term is
// only honored when the model's search feature is enabled; a disabled
// feature must not narrow results.
func (h *Handlers) listParams(c *gin.Context, mc config.ModelConfig, includeDeleted bool) store.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	// Disabled features silently drop their parameters instead of failing
	// the request.
	filters := make(map[string]string)
	if h.models.IsFeatureEnabled(mc.Name, config.FeatureFilters) {
		for key, values := range c.Request.URL.Query() {
			if reservedParams[key] || len(values) == 0 || values[0] == "" {
				continue
			}
			filters[key] = values[0]
		}
	}

	search := ""
	if h.models.IsFeatureEnabled(mc.Name, config.FeatureSearch) {
		search = c.Query("search")
	}

	sortBy, sortOrder := "", ""
	if h.models.IsFeatureEnabled(mc.Name, config.FeatureSort) {
		sortBy, sortOrder = c.Query("sort"), c.Query("order")
	}

	return store.ListParams{
		Page:           page,
		Limit:          limit,
		SortBy:         sortBy,
		SortOrder:      sortOrder,
		Search:         search,
		SearchFields:   mc.SearchFields,
		Filters:        filters,
		IncludeDeleted: includeDeleted,
	}
}

// GetAll godoc
// @Summary List active records of a collection
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /api/{collection} [get]
func (h *Handlers) GetAll(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Read operation not allowed for this model", config.FeatureRead) {
		return
	}

	params := h.listParams(c, mc, false)
	result, err := h.store.List(c.Request.Context(), model.Collection, params)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error fetching "+model.Name, err)
		return
	}
	respondPage(c, result.Records, models.NewPagination(params.Page, params.Limit, result.Total))
}

// GetDeleted godoc
// @Summary List soft-deleted records of a collection
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /api/{collection}/deleted [get]
func (h *Handlers) GetDeleted(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Trash view not allowed for this model", config.FeatureViewTrash) {
		return
	}

	params := h.listParams(c, mc, true)
	result, err := h.store.List(c.Request.Context(), model.Collection, params)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error fetching deleted "+model.Name, err)
		return
	}
	respondPage(c, result.Records, models.NewPagination(params.Page, params.Limit, result.Total))
}

// GetByID godoc
// @Summary Fetch one active record
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/{collection}/{id} [get]
func (h *Handlers) GetByID(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Read operation not allowed for this model", config.FeatureRead) {
		return
	}
	id, ok := h.recordID(c, model)
	if !ok {
		return
	}

	record, err := h.store.Get(c.Request.Context(), model.Collection, id)
	if err == store.ErrNotFound {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound, model.Name+" not found", nil)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error fetching "+model.Name, err)
		return
	}
	respondSuccess(c, http.StatusOK, record, "")
}

// Create godoc
// @Summary Create a record
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /api/{collection} [post]
func (h *Handlers) Create(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Create operation not allowed for this model", config.FeatureCreate) {
		return
	}

	var record models.Record
	if err := c.ShouldBindJSON(&record); err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeValidation,
			"Error creating "+model.Name, err)
		return
	}

	model.ApplyDefaults(record)
	if errs := model.Validate(record); len(errs) > 0 {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeValidation,
			"Error creating "+model.Name, validationError(errs))
		return
	}

	saved, err := h.store.Create(c.Request.Context(), model.Collection, record)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeInternalServerError,
			"Error creating "+model.Name, err)
		return
	}
	respondSuccess(c, http.StatusCreated, saved, model.Name+" created successfully")
}

// Update godoc
// @Summary Update an active record
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/{collection}/{id} [put]
func (h *Handlers) Update(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Update operation not allowed for this model", config.FeatureUpdate) {
		return
	}
	id, ok := h.recordID(c, model)
	if !ok {
		return
	}

	var updates models.Record
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeValidation,
			"Error updating "+model.Name, err)
		return
	}

	if errs := model.ValidatePartial(updates); len(errs) > 0 {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeValidation,
			"Error updating "+model.Name, validationError(errs))
		return
	}

	record, err := h.store.Update(c.Request.Context(), model.Collection, id, updates)
	if err == store.ErrNotFound {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound, model.Name+" not found", nil)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeInternalServerError,
			"Error updating "+model.Name, err)
		return
	}
	respondSuccess(c, http.StatusOK, record, model.Name+" updated successfully")
}

// Delete godoc
// @Summary Soft-delete a record
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/{collection}/{id} [delete]
func (h *Handlers) Delete(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Delete operation not allowed for this model", config.FeatureDelete) {
		return
	}
	id, ok := h.recordID(c, model)
	if !ok {
		return
	}

	err := h.store.SoftDelete(c.Request.Context(), model.Collection, id)
	if err == store.ErrNotFound {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound, model.Name+" not found", nil)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error deleting "+model.Name, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil, model.Name+" deleted successfully")
}

// Restore godoc
// @Summary Restore a soft-deleted record
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/{collection}/{id}/restore [patch]
func (h *Handlers) Restore(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Restore operation not allowed for this model", config.FeatureRestore) {
		return
	}
	id, ok := h.recordID(c, model)
	if !ok {
		return
	}

	record, err := h.store.Restore(c.Request.Context(), model.Collection, id)
	if err == store.ErrNotFound {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound,
			"Deleted "+model.Name+" not found", nil)
		return
	}
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error restoring "+model.Name, err)
		return
	}
	respondSuccess(c, http.StatusOK, record, model.Name+" restored successfully")
}

// BulkCreate godoc
// @Summary Create many records, allowing partial failure
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /api/{collection}/bulk [post]
func (h *Handlers) BulkCreate(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Bulk operations not allowed for this model",
		config.FeatureBulkOperations, config.FeatureImport) {
		return
	}

	var req models.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeValidation,
			"Records array is required", err)
		return
	}

	// Unordered semantics: invalid records are skipped, valid ones land.
	valid := make([]models.Record, 0, len(req.Records))
	for _, record := range req.Records {
		model.ApplyDefaults(record)
		if errs := model.Validate(record); len(errs) == 0 {
			valid = append(valid, record)
		}
	}

	created, err := h.store.BulkCreate(c.Request.Context(), model.Collection, valid)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, models.ErrorCodeInternalServerError,
			"Error bulk creating "+model.Name, err)
		return
	}
	respondSuccess(c, http.StatusOK, created,
		fmt.Sprintf("%d %s records created successfully", len(created), model.Name))
}

// ValidateBulk godoc
// @Summary Dry-run validation for a batch of records
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 403 {object} models.Response
// @Router /api/{collection}/validate [post]
func (h *Handlers) ValidateBulk(c *gin.Context) {
	model, mc, ok := h.resolveCollection(c)
	if !ok {
		return
	}
	if !h.gate(c, mc.Name, "Bulk operations not allowed for this model", config.FeatureBulkOperations) {
		return
	}

	var req struct {
		Records []models.Record `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Records == nil {
		respondSuccess(c, http.StatusOK, models.BulkValidation{
			Valid:  false,
			Errors: []string{"Records must be an array"},
		}, "")
		return
	}

	errors := []string{}
	for i, record := range req.Records {
		for _, fieldErr := range model.Validate(record) {
			errors = append(errors, fmt.Sprintf("Row %d, %s: %s", i+1, fieldErr.Field, fieldErr.Message))
		}
	}
	respondSuccess(c, http.StatusOK, models.BulkValidation{
		Valid:  len(errors) == 0,
		Errors: errors,
	}, "")
}

// recordID parses the :id path parameter.
func (h *Handlers) recordID(c *gin.Context, model *registry.ModelDef) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeInvalidIDFormat,
			model.Name+" not found", err)
		return uuid.Nil, false
	}
	return id, true
}

func validationError(errs []registry.FieldError) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
