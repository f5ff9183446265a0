package http

import (
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/report"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const unknownWallet = "Unknown"

// GenerateSAR files a SAR for the wallet in the request body. A missing or
// unreadable body reports on an unknown subject rather than failing.
func (h *Handler) GenerateSAR(c *gin.Context) {
	var body sarRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logging.FromContext(c.Request.Context(), h.logger).
			Debug("sar request body ignored", zap.Error(err))
	}
	walletID := strings.TrimSpace(body.WalletID)
	if walletID == "" {
		walletID = unknownWallet
	}

	text, err := report.SAR(h.reports.SARRecord(walletID))
	if !h.rendered(c, "sar", err) {
		return
	}
	c.JSON(http.StatusOK, sarResponse{Report: text})
}

// WalletSAR returns the SAR shown on a wallet page.
func (h *Handler) WalletSAR(c *gin.Context) {
	text, err := report.WalletSAR(h.reports.WalletSARRecord(c.Param("id")))
	if !h.rendered(c, "wallet_sar", err) {
		return
	}
	c.JSON(http.StatusOK, walletSARResponse{SAR: text})
}

// WalletReport returns the forensic report card markup.
func (h *Handler) WalletReport(c *gin.Context) {
	markup, err := report.Card(h.reports.CardRecord(c.Param("id")))
	if !h.rendered(c, "card", err) {
		return
	}
	c.JSON(http.StatusOK, sarResponse{Report: markup})
}

func (h *Handler) rendered(c *gin.Context, template string, err error) bool {
	if err != nil {
		logging.FromContext(c.Request.Context(), h.logger).
			Error("report rendering failed", zap.String("template", template), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return false
	}
	h.metrics.ReportsRendered.WithLabelValues(template).Inc()
	return true
}
