// Package dashboard produces the synthetic datasets behind the overview,
// anomaly list, contagion chart and risk scatter plots.
package dashboard

import (
	"math/rand/v2"
	"sync"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

type Options struct {
	AnomalyCount    int
	GlobalRiskCount int
}

// Dashboard holds the snapshots generated at startup and a shared random
// source for the per request datasets.
type Dashboard struct {
	opts Options

	mu  sync.Mutex
	rng *rand.Rand

	contagion []domain.ContagionPoint
	riskMap   []domain.RiskPoint
}

// New builds the startup snapshots from src. A nil src is seeded from
// entropy.
func New(src rand.Source, opts Options) *Dashboard {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if opts.AnomalyCount <= 0 {
		opts.AnomalyCount = 100
	}
	if opts.GlobalRiskCount <= 0 {
		opts.GlobalRiskCount = 200
	}

	r := rand.New(src)
	return &Dashboard{
		opts:      opts,
		rng:       r,
		riskMap:   RiskMap(r),
		contagion: Contagion(r),
	}
}

// draw runs fn with exclusive use of the shared source.
func (d *Dashboard) draw(fn func(r *rand.Rand)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.rng)
}

func (d *Dashboard) Overview() domain.Overview {
	return domain.Overview{
		TotalTransactions: 15293,
		AnomaliesDetected: 523,
		RiskScore:         9.1,
		NetworkHealth:     88.4,
	}
}

func (d *Dashboard) NetworkStats() []domain.NetworkStat {
	return []domain.NetworkStat{
		{Label: "Active Nodes", Value: "15,201", Trend: "+12%"},
		{Label: "High Risk", Value: "523", Trend: "+8%"},
		{Label: "Avg Volume", Value: "$42.5k", Trend: "-3%"},
		{Label: "GNN Accuracy", Value: "97.2%", Trend: "+0.5%"},
	}
}

func (d *Dashboard) Anomalies() []domain.Anomaly {
	var out []domain.Anomaly
	d.draw(func(r *rand.Rand) { out = Anomalies(r, d.opts.AnomalyCount) })
	return out
}

func (d *Dashboard) GlobalRisk() []domain.GlobalRiskPoint {
	var out []domain.GlobalRiskPoint
	d.draw(func(r *rand.Rand) { out = GlobalRisk(r, d.opts.GlobalRiskCount) })
	return out
}

func (d *Dashboard) WalletSankey(walletID string) domain.SankeyGraph {
	var out domain.SankeyGraph
	d.draw(func(r *rand.Rand) { out = WalletSankey(r, walletID) })
	return out
}

// Contagion returns the series generated at startup.
func (d *Dashboard) Contagion() []domain.ContagionPoint {
	return d.contagion
}

// RiskMap returns the scatter points generated at startup.
func (d *Dashboard) RiskMap() []domain.RiskPoint {
	return d.riskMap
}
