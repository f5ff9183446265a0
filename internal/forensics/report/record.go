// Package report renders suspicious activity reports and the forensic report
// card from a risk record. Rendering is pure; the random record builders
// live on Generator.
package report

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Record is the risk profile a report is rendered from.
type Record struct {
	WalletID    string
	CaseID      string
	Score       float64
	Volume      float64
	FlowRatio   float64
	BadActors   int
	GeneratedAt time.Time
}

// Critical reports whether the SAR escalates the subject.
func (r Record) Critical() bool { return r.Score > 0.9 }

// SARRole is the detected role stated in a generated SAR.
func (r Record) SARRole() string {
	if r.Critical() {
		return "Mule"
	}
	return "Smurf"
}

// CardRole is the role stated on the forensic report card, which uses a
// lower escalation threshold than the SAR.
func (r Record) CardRole() string {
	if r.Score > 0.8 {
		return "Mule"
	}
	return "Smurf"
}

// Generator draws risk records for a wallet.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator uses src and now when given, otherwise entropy and the wall
// clock.
func NewGenerator(src rand.Source, now func() time.Time) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rand.New(src), now: now}
}

func (g *Generator) draw(fn func(r *rand.Rand) Record) Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec := fn(g.rng)
	rec.GeneratedAt = g.now()
	return rec
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func intIn(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// SARRecord backs an on demand SAR filed from the dashboard.
func (g *Generator) SARRecord(walletID string) Record {
	return g.draw(func(r *rand.Rand) Record {
		return Record{
			WalletID:  walletID,
			Score:     uniform(r, 0.85, 0.99),
			Volume:    uniform(r, 100_000, 5_000_000),
			CaseID:    fmt.Sprintf("AUTO-%d", intIn(r, 1000, 9999)),
			FlowRatio: uniform(r, 0.8, 1.2),
		}
	})
}

// WalletSARRecord backs the SAR shown on a wallet page.
func (g *Generator) WalletSARRecord(walletID string) Record {
	return g.draw(func(r *rand.Rand) Record {
		return Record{
			WalletID: walletID,
			Score:    uniform(r, 0.85, 0.99),
			CaseID:   fmt.Sprintf("SAR-%d", intIn(r, 10000, 99999)),
			Volume:   float64(intIn(r, 500_000, 2_000_000)),
		}
	})
}

// CardRecord backs the forensic report card.
func (g *Generator) CardRecord(walletID string) Record {
	return g.draw(func(r *rand.Rand) Record {
		return Record{
			WalletID:  walletID,
			Score:     uniform(r, 0.75, 0.99),
			CaseID:    fmt.Sprintf("REF-%d", intIn(r, 10000, 99999)),
			Volume:    float64(intIn(r, 50_000, 5_000_000)),
			BadActors: intIn(r, 3, 12),
			FlowRatio: uniform(r, 0.7, 1.1),
		}
	})
}
