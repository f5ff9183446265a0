package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/mockgraph"
	"github.com/gin-gonic/gin"
)

// EgoGraph returns the ego network of the wallet in the center query
// parameter. A missing center falls back to the default entity.
func (h *Handler) EgoGraph(c *gin.Context) {
	h.graph(c, mockgraph.KindEgo)
}

// FlowGraph returns the fund flow network of the wallet in the center query
// parameter.
func (h *Handler) FlowGraph(c *gin.Context) {
	h.graph(c, mockgraph.KindFlow)
}

func (h *Handler) graph(c *gin.Context, kind mockgraph.Kind) {
	g, err := mockgraph.Generate(kind, c.Query("center"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate graph"})
		return
	}
	h.metrics.GraphsGenerated.WithLabelValues(string(kind)).Inc()
	c.JSON(http.StatusOK, g)
}

// WalletSankey returns the risk colored source -> target -> destination view
func (h *Handler) WalletSankey(c *gin.Context) {
	h.metrics.GraphsGenerated.WithLabelValues("sankey").Inc()
	c.JSON(http.StatusOK, h.dash.WalletSankey(c.Param("id")))
}
