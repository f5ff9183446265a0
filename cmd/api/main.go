package main

import (
	"log"
	"net/http"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/config"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	deps := bootstrap.BuildDeps(cfg, logger)
	r := bootstrap.BuildRouter(deps)

	logger.Info("listening",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.App.Environment),
		zap.String("scorer", deps.Scorer.Mode()))
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
