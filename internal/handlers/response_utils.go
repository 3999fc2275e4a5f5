package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"admin-service/internal/models"
)

// respondSuccess sends the standard envelope with optional data and message.
func respondSuccess(c *gin.Context, httpStatus int, data interface{}, message string) {
	c.JSON(httpStatus, models.Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// respondPage sends a list response with pagination metadata.
func respondPage(c *gin.Context, data interface{}, pagination models.Pagination) {
	c.JSON(200, models.Response{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

// respondError sends a failure envelope. The underlying error detail is
// logged server-side and only echoed to the caller outside production.
func (h *Handlers) respondError(c *gin.Context, httpStatus int, code, message string, err error) {
	resp := models.Response{Success: false, Message: message}
	if err != nil {
		log.Printf("%s: %s: %v", code, message, err)
		if !h.cfg.IsProduction() {
			resp.Error = err.Error()
		}
	}
	c.JSON(httpStatus, resp)
}
