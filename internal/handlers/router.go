package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"admin-service/internal/config"
	"admin-service/internal/models"
	"admin-service/internal/registry"
	"admin-service/internal/schema"
	"admin-service/internal/store"
)

// Handlers owns every HTTP handler and its collaborators. Construct once in
// main and register onto a gin engine; nothing here holds per-request state.
type Handlers struct {
	cfg      config.Config
	store    *store.Store
	registry *registry.Registry
	models   *config.Models
	schema   *schema.Service
}

// New wires the handler set.
func New(cfg config.Config, st *store.Store, reg *registry.Registry, mc *config.Models, sc *schema.Service) *Handlers {
	return &Handlers{cfg: cfg, store: st, registry: reg, models: mc, schema: sc}
}

// RegisterRoutes attaches every endpoint. All routes are registered whether
// or not the model's features allow them; the feature gates live in the
// handlers so a disabled operation answers 403 instead of 404.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", h.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api", AuthRequired(h.cfg.APIToken))
	{
		schemas := api.Group("/schemas")
		{
			schemas.GET("", h.GetAllSchemas)
			schemas.GET("/models", h.GetModelNames)
			schemas.GET("/:model", h.GetModelSchema)
		}

		api.GET("/stats", h.GetStats)

		collection := api.Group("/:collection")
		{
			collection.GET("", h.GetAll)
			collection.GET("/deleted", h.GetDeleted)
			collection.GET("/export", h.Export)
			collection.GET("/:id", h.GetByID)
			collection.POST("", h.Create)
			collection.POST("/bulk", h.BulkCreate)
			collection.POST("/validate", h.ValidateBulk)
			collection.PUT("/:id", h.Update)
			collection.DELETE("/:id", h.Delete)
			collection.PATCH("/:id/restore", h.Restore)
		}
	}
}

// AuthRequired is the opaque authorization gate: a static bearer token
// resolved from the environment. An empty configured token disables the
// check for local development.
func AuthRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		presented, found := strings.CutPrefix(header, "Bearer ")
		if !found || presented == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Access token required",
			})
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}
		c.Next()
	}
}

// Ping godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} models.Response
// @Router /ping [get]
func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "admin-service is running",
		Data:    gin.H{"timestamp": time.Now().UTC().Format(time.RFC3339)},
	})
}

// resolveCollection maps the :collection path parameter onto its model
// definition and configuration. A miss on either side is a NotFound.
func (h *Handlers) resolveCollection(c *gin.Context) (*registry.ModelDef, config.ModelConfig, bool) {
	name := c.Param("collection")
	model, err := h.registry.Resolve(name)
	if err != nil {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound,
			"Collection '"+name+"' not found", err)
		return nil, config.ModelConfig{}, false
	}
	mc, ok := h.models.Get(model.Name)
	if !ok {
		h.respondError(c, http.StatusNotFound, models.ErrorCodeNotFound,
			"Collection '"+name+"' not found", nil)
		return nil, config.ModelConfig{}, false
	}
	return model, mc, true
}

// gate enforces the feature flags for one operation before anything runs.
func (h *Handlers) gate(c *gin.Context, modelName, message string, features ...config.Feature) bool {
	for _, feature := range features {
		if !h.models.IsFeatureEnabled(modelName, feature) {
			h.respondError(c, http.StatusForbidden, models.ErrorCodeFeatureDisabled, message, nil)
			return false
		}
	}
	return true
}
