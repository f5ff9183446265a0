package scoring

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GCNScorer runs the trained graph convolution network.
type GCNScorer struct {
	w      *Weights
	convs  [3]denseLayer
	linear denseLayer
}

// denseLayer is a Layer unpacked into gonum form.
type denseLayer struct {
	weight *mat.Dense
	bias   []float64
}

func newDenseLayer(l Layer) denseLayer {
	in, out := l.dims()
	data := make([]float64, 0, in*out)
	for _, row := range l.Weight {
		data = append(data, row...)
	}
	return denseLayer{weight: mat.NewDense(in, out, data), bias: l.Bias}
}

// forward computes x·W + b row by row.
func (d denseLayer) forward(x mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(x, d.weight)
	out.Apply(func(_, j int, v float64) float64 { return v + d.bias[j] }, &out)
	return &out
}

func NewGCNScorer(w *Weights) (*GCNScorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &GCNScorer{
		w:      w,
		convs:  [3]denseLayer{newDenseLayer(w.Conv1), newDenseLayer(w.Conv2), newDenseLayer(w.Conv3)},
		linear: newDenseLayer(w.FC),
	}, nil
}

func (g *GCNScorer) Mode() string { return ModeModel }

// InputDim is the feature width the model expects.
func (g *GCNScorer) InputDim() int { return g.w.InputDim }

func (g *GCNScorer) Score(ctx context.Context, in Input) (Result, error) {
	h, err := g.Embed(ctx, in)
	if err != nil {
		return Result{}, err
	}
	if h == nil {
		return Result{Predictions: []Prediction{}}, nil
	}

	logits := g.linear.forward(h)
	n, _ := logits.Dims()
	preds := make([]Prediction, n)
	for i := range preds {
		probs := softmax(mat.Row(nil, i, logits))
		preds[i] = newPrediction(probs[LabelAnomalous], floats.MaxIdx(probs))
	}
	return Result{Predictions: preds}, nil
}

// GraphScore pools node embeddings by mean and classifies the whole graph.
func (g *GCNScorer) GraphScore(ctx context.Context, in Input) (Prediction, error) {
	h, err := g.Embed(ctx, in)
	if err != nil {
		return Prediction{}, err
	}
	if h == nil {
		return newPrediction(0, LabelNormal), nil
	}

	n, _ := h.Dims()
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	var pooled mat.Dense
	pooled.Mul(mat.NewDense(1, n, weights), h)

	probs := softmax(mat.Row(nil, 0, g.linear.forward(&pooled)))
	return newPrediction(probs[LabelAnomalous], floats.MaxIdx(probs)), nil
}

// Embed returns the node embeddings after the third convolution, one row
// per node. An empty graph yields nil.
func (g *GCNScorer) Embed(ctx context.Context, in Input) (*mat.Dense, error) {
	n := len(in.Features)
	for i, row := range in.Features {
		if len(row) != g.w.InputDim {
			return nil, fmt.Errorf("node %d has %d features, want %d: %w", i, len(row), g.w.InputDim, ErrFeatureWidth)
		}
	}
	for _, e := range in.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("edge %v out of range for %d nodes", e, n)
		}
	}
	if n == 0 {
		return nil, nil
	}

	x := mat.NewDense(n, g.w.InputDim, nil)
	for i, row := range in.Features {
		x.SetRow(i, row)
	}

	adj := normalizedAdjacency(n, in.Edges)
	h := x
	for _, layer := range g.convs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h = convolve(adj, h, layer)
	}
	return h, nil
}

// normalizedAdjacency builds D^-1/2 (A + I) D^-1/2 with rows as receivers.
// Degrees count incoming edges plus the self loop.
func normalizedAdjacency(n int, edges [][2]int) *mat.Dense {
	deg := make([]float64, n)
	for i := range deg {
		deg[i] = 1
	}
	for _, e := range edges {
		deg[e[1]]++
	}

	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		adj.Set(i, i, 1/deg[i])
	}
	for _, e := range edges {
		src, dst := e[0], e[1]
		adj.Set(dst, src, adj.At(dst, src)+1/math.Sqrt(deg[src]*deg[dst]))
	}
	return adj
}

// convolve computes ReLU(Â·H·W + b).
func convolve(adj, h *mat.Dense, l denseLayer) *mat.Dense {
	var xw mat.Dense
	xw.Mul(h, l.weight)

	var out mat.Dense
	out.Mul(adj, &xw)
	out.Apply(func(_, j int, v float64) float64 {
		return math.Max(0, v+l.bias[j])
	}, &out)
	return &out
}

func softmax(x []float64) []float64 {
	lse := floats.LogSumExp(x)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v - lse)
	}
	return out
}
