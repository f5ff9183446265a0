package http

import "github.com/gin-gonic/gin"

// Register registers the dashboard routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/overview", h.Overview)
	rg.GET("/anomalies", h.Anomalies)
	rg.GET("/network/stats", h.NetworkStats)
	rg.GET("/network/graph", h.EgoGraph)
	rg.GET("/flow", h.FlowGraph)
	rg.GET("/contagion", h.Contagion)
	rg.GET("/risk-map", h.RiskMap)
	rg.GET("/global-risk", h.GlobalRisk)

	rg.POST("/sar/generate", h.GenerateSAR)
	rg.GET("/wallet/:id/sar", h.WalletSAR)
	rg.GET("/wallet/:id/report", h.WalletReport)
	rg.GET("/wallet/:id/sankey", h.WalletSankey)

	rg.POST("/predict", h.Predict)
}
