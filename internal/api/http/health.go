package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Scorer    string    `json:"scorer,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	scorerMode  string
}

// NewHealthHandler reports scorerMode so operators can tell whether trained
// weights were picked up at startup.
func NewHealthHandler(serviceName, version, scorerMode string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		scorerMode:  scorerMode,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Scorer:    h.scorerMode,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
