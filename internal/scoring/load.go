package scoring

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Load selects the scorer once at startup: the GCN when the weights file
// exists and decodes, the stub otherwise. Load never fails.
func Load(path string, logger *zap.Logger) Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) || path == "" {
		logger.Warn("model weights not found, running in stub mode", zap.String("path", path))
		return NewStubScorer(nil)
	}

	w, err := ReadWeights(path)
	if err != nil {
		logger.Warn("failed to load model weights, running in stub mode",
			zap.String("path", path), zap.Error(err))
		return NewStubScorer(nil)
	}

	scorer, err := NewGCNScorer(w)
	if err != nil {
		logger.Warn("invalid model, running in stub mode", zap.Error(err))
		return NewStubScorer(nil)
	}

	logger.Info("model weights loaded",
		zap.String("path", path),
		zap.Int("input_dim", w.InputDim),
		zap.Int("hidden_dim", w.HiddenDim))
	return scorer
}
