package dashboard

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

const (
	NoisePoints   = 2000
	SuspectPoints = 150
	suspectIDBase = 3000

	// ContagionStep is the spacing of the contagion series; one day of it.
	ContagionStep   = 15
	ContagionPoints = 24 * 60 / ContagionStep
)

func walletAddress(r *rand.Rand) string {
	return fmt.Sprintf("0x%x", intIn(r, 10_000_000_000, 100_000_000_000))
}

// Anomalies draws n flagged wallets. Critical wallets are labelled mules,
// high risk ones smurfs.
func Anomalies(r *rand.Rand, n int) []domain.Anomaly {
	out := make([]domain.Anomaly, 0, n)
	for i := 0; i < n; i++ {
		level := "high"
		if r.Float64() > 0.5 {
			level = "critical"
		}
		a := domain.Anomaly{
			ID:         i,
			Address:    walletAddress(r),
			RiskLevel:  level,
			Confidence: uniform(r, 0.85, 0.9999),
			Amount:     fmt.Sprintf("₿%.1f", uniform(r, 2, 50)),
		}

		m := domain.AnomalyMetrics{
			Role:     "Smurf",
			Pattern:  "DISPERSION (Smurf)",
			Toxicity: uniform(r, 0.8, 0.99),
		}
		if level == "critical" {
			m.Role, m.Pattern = "Mule", "AGGREGATION (Mule)"
		}
		m.FlowRatio = round2(uniform(r, 0.8, 1.8))
		m.BadActors = intIn(r, 3, 12)
		m.VolumeUSD = intIn(r, 100_000, 900_000)
		if r.Float64() > 0.5 {
			m.Tags = []string{"High Velocity", "Structurally Embedded"}
		} else {
			m.Tags = []string{"Layering Detected"}
		}
		a.Metrics = m

		out = append(out, a)
	}
	return out
}

// RiskMap draws the two scatter clusters: a broad low risk noise cloud and
// a tight high risk suspect cluster.
func RiskMap(r *rand.Rand) []domain.RiskPoint {
	out := make([]domain.RiskPoint, 0, NoisePoints+SuspectPoints)
	for i := 0; i < NoisePoints; i++ {
		out = append(out, domain.RiskPoint{
			ID:      i,
			Address: fmt.Sprintf("0x%d", i),
			X:       math.Pow(10, uniform(r, 3, 7)),
			Y:       beta(r, 2, 5),
			Group:   "noise",
		})
	}
	for i := 0; i < SuspectPoints; i++ {
		out = append(out, domain.RiskPoint{
			ID:      suspectIDBase + i,
			Address: fmt.Sprintf("0xSuspect%d", i),
			X:       math.Pow(10, normal(r, 5, 0.5)),
			Y:       0.7 + beta(r, 5, 1)*0.29,
			Group:   "suspect",
		})
	}
	return out
}

// Contagion draws a random walk of newly infected wallets over one day.
func Contagion(r *rand.Rand) []domain.ContagionPoint {
	out := make([]domain.ContagionPoint, 0, ContagionPoints)
	curr := 10.0
	for m := 0; m < 24*60; m += ContagionStep {
		if r.Float64() > 0.5 {
			curr += 0.5
		} else {
			curr -= 0.5
		}
		spike := 0
		if r.Float64() > 0.95 {
			spike = intIn(r, 15, 25)
		}
		out = append(out, domain.ContagionPoint{
			Time:       fmt.Sprintf("%d:%02d", m/60, m%60),
			NewWallets: int(math.Max(5, curr+float64(spike))),
		})
	}
	return out
}

var roles = []string{"Source", "Mule", "Aggregator"}

func GlobalRisk(r *rand.Rand, n int) []domain.GlobalRiskPoint {
	out := make([]domain.GlobalRiskPoint, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.GlobalRiskPoint{
			WalletID:   walletAddress(r),
			DisplayVol: math.Pow(10, uniform(r, 2, 6)),
			RiskScore:  r.Float64(),
			Role:       roles[r.IntN(len(roles))],
		})
	}
	return out
}
