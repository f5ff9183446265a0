package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Overview())
}

func (h *Handler) Anomalies(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Anomalies())
}

func (h *Handler) NetworkStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.NetworkStats())
}

func (h *Handler) Contagion(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.Contagion())
}

func (h *Handler) RiskMap(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.RiskMap())
}

func (h *Handler) GlobalRisk(c *gin.Context) {
	c.JSON(http.StatusOK, h.dash.GlobalRisk())
}
