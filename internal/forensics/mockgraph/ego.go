package mockgraph

import (
	"fmt"
	"math/rand/v2"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

const (
	colorCenter = "#f59e0b"
	colorMule   = "#ef4444"
	colorLeaf   = "#64748b"
)

// Ego ranges, all inclusive.
const (
	MinMules     = 4
	MaxMules     = 6
	MinLeaves    = 1
	MaxLeaves    = 2
	muleAmountLo = 20.0
	muleAmountHi = 50.0
	leafAmountLo = 2.0
	leafAmountHi = 15.0
)

// Ego builds the ego network around center using r. Links refer to nodes by
// position so they can never dangle.
func Ego(center string, r *rand.Rand) domain.EgoGraph {
	nodes := []domain.EgoNode{{
		ID:    center,
		Group: domain.GroupCenter,
		Val:   50,
		Label: prefix(center, 6),
		Color: colorCenter,
	}}
	var links []domain.EgoLink

	const centerIdx = 0
	mules := intIn(r, MinMules, MaxMules)
	for i := 0; i < mules; i++ {
		muleID := fmt.Sprintf("Mule_%d_%s", i, prefix(center, 4))
		nodes = append(nodes, domain.EgoNode{
			ID:    muleID,
			Group: domain.GroupMid,
			Val:   25,
			Label: muleID,
			Color: colorMule,
		})
		muleIdx := len(nodes) - 1
		links = append(links, domain.EgoLink{
			Source: centerIdx,
			Target: muleIdx,
			Amount: round1(uniform(r, muleAmountLo, muleAmountHi)),
		})

		leaves := intIn(r, MinLeaves, MaxLeaves)
		for j := 0; j < leaves; j++ {
			leafID := fmt.Sprintf("Leaf_%d_%d", i, j)
			nodes = append(nodes, domain.EgoNode{
				ID:    leafID,
				Group: domain.GroupLeaf,
				Val:   10,
				Label: prefix(leafID, 6),
				Color: colorLeaf,
			})
			links = append(links, domain.EgoLink{
				Source: muleIdx,
				Target: len(nodes) - 1,
				Amount: round1(uniform(r, leafAmountLo, leafAmountHi)),
			})
		}
	}

	return domain.EgoGraph{Nodes: nodes, Links: links}
}
