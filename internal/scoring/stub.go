package scoring

import (
	"context"
	"math/rand/v2"
	"sync"
)

// StubThreshold is the draw above which the stub reports an anomaly.
const StubThreshold = 0.85

// StubScorer fabricates one uniform draw per node.
type StubScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewStubScorer uses src when given, otherwise an entropy seeded source.
func NewStubScorer(src rand.Source) *StubScorer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &StubScorer{rng: rand.New(src)}
}

func (s *StubScorer) Mode() string { return ModeStub }

func (s *StubScorer) Score(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	preds := make([]Prediction, len(in.Features))
	for i := range preds {
		risk := s.rng.Float64()
		label := LabelNormal
		if risk > StubThreshold {
			label = LabelAnomalous
		}
		preds[i] = newPrediction(risk, label)
	}
	return Result{Predictions: preds}, nil
}
