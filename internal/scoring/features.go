package scoring

import (
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

// Feature columns produced by BuildFeatures.
const (
	FeatureCount = iota
	FeatureNetVolume
	featureColumns
)

// FeatureTable is the per address view of a transaction list.
type FeatureTable struct {
	Addresses []string
	Features  [][]float64
	Edges     [][2]int
}

// BuildFeatures indexes addresses in first seen order and aggregates
// [transaction count, net volume] per address. Outgoing amounts count
// negative, incoming positive. Blank addresses are dropped together with
// their transactions' edges.
func BuildFeatures(txs []domain.Transaction) FeatureTable {
	index := make(map[string]int)
	var t FeatureTable

	add := func(addr string) {
		if addr == "" {
			return
		}
		if _, ok := index[addr]; ok {
			return
		}
		index[addr] = len(t.Addresses)
		t.Addresses = append(t.Addresses, addr)
		t.Features = append(t.Features, make([]float64, featureColumns))
	}

	for _, tx := range txs {
		add(tx.From)
		add(tx.To)
	}

	for _, tx := range txs {
		src, srcOK := index[tx.From]
		dst, dstOK := index[tx.To]
		if srcOK {
			t.Features[src][FeatureCount]++
			t.Features[src][FeatureNetVolume] -= tx.Amount
		}
		if dstOK {
			t.Features[dst][FeatureCount]++
			t.Features[dst][FeatureNetVolume] += tx.Amount
		}
		if srcOK && dstOK {
			t.Edges = append(t.Edges, [2]int{src, dst})
		}
	}

	return t
}

// Input widens or narrows every feature row to width, zero padding new
// columns. A non-positive width keeps the rows as built.
func (t FeatureTable) Input(width int) Input {
	if width <= 0 {
		return Input{Features: t.Features, Edges: t.Edges}
	}
	rows := make([][]float64, len(t.Features))
	for i, f := range t.Features {
		row := make([]float64, width)
		copy(row, f)
		rows[i] = row
	}
	return Input{Features: rows, Edges: t.Edges}
}

// InputFor shapes the table for s, padding to the model width when s has one.
func (t FeatureTable) InputFor(s Scorer) Input {
	if m, ok := s.(interface{ InputDim() int }); ok {
		return t.Input(m.InputDim())
	}
	return t.Input(0)
}

// Anomaly kinds returned by ClassifyAnomaly.
const (
	AnomalySmurfing = "Smurfing Pattern"
	AnomalyLayering = "Layering"
	AnomalyUnusual  = "Unusual Pattern"
)

// ClassifyAnomaly names the pattern a single flagged transfer most likely
// belongs to, judged by its amount alone.
func ClassifyAnomaly(tx domain.Transaction) string {
	switch {
	case tx.Amount < 1.0:
		return AnomalySmurfing
	case tx.Amount > 50.0:
		return AnomalyLayering
	default:
		return AnomalyUnusual
	}
}
