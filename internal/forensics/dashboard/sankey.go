package dashboard

import (
	"fmt"
	"math/rand/v2"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

// Risk colors of the wallet Sankey view.
const (
	ColorHigh   = "#EA3943"
	ColorMedium = "#FFA726"
	ColorLow    = "#16C784"
)

func RiskColor(risk float64) string {
	switch {
	case risk > 0.8:
		return ColorHigh
	case risk > 0.5:
		return ColorMedium
	default:
		return ColorLow
	}
}

func shortWallet(r *rand.Rand) string {
	return fmt.Sprintf("0x%d", intIn(r, 100_000, 1_000_000))
}

// WalletSankey draws source -> target -> destination streams for walletID.
// Each destination takes 10-30% of what is left; a share under 10 and the
// final destination take everything remaining, so the target passes on
// exactly what it received.
func WalletSankey(r *rand.Rand, walletID string) domain.SankeyGraph {
	const targetIdx = 0
	nodes := []domain.SankeyNode{{
		Name:  fmt.Sprintf("TARGET: %s...", prefix(walletID, 6)),
		Color: RiskColor(uniform(r, 0.7, 0.99)),
	}}
	var links []domain.SankeyLink

	inflow := 0
	sources := intIn(r, 2, 4)
	for i := 0; i < sources; i++ {
		color := RiskColor(r.Float64())
		nodes = append(nodes, domain.SankeyNode{Name: shortWallet(r), Color: color})
		v := intIn(r, 200, 800)
		links = append(links, domain.SankeyLink{
			Source: len(nodes) - 1,
			Target: targetIdx,
			Value:  v,
			Color:  color,
		})
		inflow += v
	}

	remaining := inflow
	destinations := intIn(r, 5, 8)
	for i := 0; i < destinations && remaining > 0; i++ {
		color := RiskColor(r.Float64())
		nodes = append(nodes, domain.SankeyNode{Name: shortWallet(r), Color: color})

		v := int(float64(remaining) * uniform(r, 0.1, 0.3))
		if v < 10 || i == destinations-1 {
			v = remaining
		}
		links = append(links, domain.SankeyLink{
			Source: targetIdx,
			Target: len(nodes) - 1,
			Value:  v,
			Color:  color,
		})
		remaining -= v
	}

	return domain.SankeyGraph{Nodes: nodes, Links: links}
}
