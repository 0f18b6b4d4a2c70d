package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comrade-org/membership/internal/server/http/dto"
)

// HealthHandler reports readiness of the service and its storage.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Status handles GET /api/health.
func (h *HealthHandler) Status(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
