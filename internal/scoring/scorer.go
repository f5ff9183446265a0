// Package scoring labels wallets in a transaction graph as normal or
// anomalous. A GCN classifier is used when trained weights are available;
// otherwise a random stub stands in for it.
package scoring

import (
	"context"
	"errors"
)

const (
	LabelNormal    = 0
	LabelAnomalous = 1
)

// Scorer modes reported by Mode.
const (
	ModeModel = "model"
	ModeStub  = "stub"
)

var ErrFeatureWidth = errors.New("feature width does not match model input")

// Input is a node feature table plus index based edges.
type Input struct {
	Features [][]float64
	Edges    [][2]int
}

// Prediction is the per node outcome.
type Prediction struct {
	Label         int        `json:"label"`
	Anomalous     bool       `json:"is_anomaly"`
	Probability   float64    `json:"probability"`
	Probabilities [2]float64 `json:"probabilities"`
}

type Result struct {
	Predictions []Prediction `json:"predictions"`
}

// Anomalies returns the indices of nodes labelled anomalous.
func (r Result) Anomalies() []int {
	var out []int
	for i, p := range r.Predictions {
		if p.Anomalous {
			out = append(out, i)
		}
	}
	return out
}

type Scorer interface {
	Score(ctx context.Context, in Input) (Result, error)
	Mode() string
}

func newPrediction(p float64, label int) Prediction {
	return Prediction{
		Label:         label,
		Anomalous:     label == LabelAnomalous,
		Probability:   p,
		Probabilities: [2]float64{1 - p, p},
	}
}
