package bootstrap

import (
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/config"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/dashboard"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/report"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/observability"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/scoring"
	"go.uber.org/zap"
)

// BuildDeps loads the scorer and generates the startup snapshots. The
// scorer choice is made here once and never revisited.
func BuildDeps(cfg *config.Config, logger *zap.Logger) RouterDeps {
	metrics := observability.NewCollector("smurf_hunter")

	scorer := scoring.Load(cfg.Model.WeightsPath, logger)
	metrics.SetScorerMode(scorer.Mode())

	return RouterDeps{
		ServiceName: "smurf-hunter-backend",
		Version:     cfg.App.Version,
		StaticDir:   cfg.Server.StaticDir,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit:   cfg.Server.RateLimitRPS,
		RateBurst:   cfg.Server.RateLimitBurst,
		Logger:      logger,
		Metrics:     metrics,
		Scorer:      scorer,
		Dashboard: dashboard.New(nil, dashboard.Options{
			AnomalyCount:    cfg.Dashboard.AnomalyCount,
			GlobalRiskCount: cfg.Dashboard.GlobalRiskCount,
		}),
		Reports: report.NewGenerator(nil, nil),
	}
}
