package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/logging"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/scoring"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Predict scores the posted transactions and acknowledges. The scoring
// outcome is logged and recorded in metrics only; the response always
// carries an empty anomaly list.
func (h *Handler) Predict(c *gin.Context) {
	log := logging.FromContext(c.Request.Context(), h.logger)

	var body predictRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Debug("predict request body ignored", zap.Error(err))
	}

	if len(body.Transactions) > 0 {
		table := scoring.BuildFeatures(body.Transactions)
		res, err := h.scorer.Score(c.Request.Context(), table.InputFor(h.scorer))
		if err != nil {
			log.Warn("scoring failed", zap.String("mode", h.scorer.Mode()), zap.Error(err))
		} else {
			anomalies := res.Anomalies()
			h.metrics.NodesScored.WithLabelValues("anomalous").Add(float64(len(anomalies)))
			h.metrics.NodesScored.WithLabelValues("normal").Add(float64(len(res.Predictions) - len(anomalies)))

			kinds := make(map[string]int)
			for _, tx := range body.Transactions {
				kinds[scoring.ClassifyAnomaly(tx)]++
			}
			log.Info("prediction completed",
				zap.String("mode", h.scorer.Mode()),
				zap.Int("nodes", len(res.Predictions)),
				zap.Int("anomalies", len(anomalies)),
				zap.Any("patterns", kinds))
		}
	}

	c.JSON(http.StatusOK, predictResponse{Status: "completed", Anomalies: []any{}})
}
