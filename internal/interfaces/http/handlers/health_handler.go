package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness and readiness checks.
type HealthHandler struct {
	version string
}

// NewHealthHandler constructs a HealthHandler reporting the given build
// version.
func NewHealthHandler(version string) *HealthHandler {
	if version == "" {
		version = "dev"
	}
	return &HealthHandler{version: version}
}

// Healthz handles GET /healthz. The parser is stateless, so liveness and
// readiness coincide.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}
