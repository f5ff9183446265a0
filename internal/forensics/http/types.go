package http

import (
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/dashboard"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/report"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/observability"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/scoring"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the forensics dashboard
type Handler struct {
	dash    *dashboard.Dashboard
	reports *report.Generator
	scorer  scoring.Scorer
	metrics *observability.Collector
	logger  *zap.Logger
}

// Deps are the collaborators of a Handler. Logger and Metrics are optional.
type Deps struct {
	Dashboard *dashboard.Dashboard
	Reports   *report.Generator
	Scorer    scoring.Scorer
	Metrics   *observability.Collector
	Logger    *zap.Logger
}

// New creates a new Handler
func New(dep Deps) *Handler {
	h := &Handler{
		dash:    dep.Dashboard,
		reports: dep.Reports,
		scorer:  dep.Scorer,
		metrics: dep.Metrics,
		logger:  dep.Logger,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.metrics == nil {
		h.metrics = observability.NewCollector("smurf_hunter")
	}
	return h
}

type sarRequest struct {
	WalletID string `json:"walletId"`
}

type sarResponse struct {
	Report string `json:"report"`
}

type walletSARResponse struct {
	SAR string `json:"sar"`
}

type predictRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type predictResponse struct {
	Status    string `json:"status"`
	Anomalies []any  `json:"anomalies"`
}
