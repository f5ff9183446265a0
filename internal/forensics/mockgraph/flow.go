package mockgraph

import (
	"fmt"
	"math/rand/v2"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

const colorTarget = "#ef4444"

// Flow ranges, all inclusive.
const (
	MinSources   = 2
	MaxSources   = 4
	MinFlowMules = 3
	MaxFlowMules = 6
	inflowLo     = 20
	inflowHi     = 80
	jitter       = 5
)

// Flow builds a source -> target -> mule fund flow around target using r.
// Everything that enters the target leaves it again.
func Flow(target string, r *rand.Rand) domain.FlowGraph {
	var nodes []domain.FlowNode

	sources := intIn(r, MinSources, MaxSources)
	sourceIdx := make([]int, 0, sources)
	for i := 0; i < sources; i++ {
		risky := r.Float64() > 0.6
		name, kind := fmt.Sprintf("Exchange %c", 'A'+i), domain.FlowSafe
		if risky {
			name, kind = fmt.Sprintf("Dark Market %c", 'A'+i), domain.FlowRisky
		}
		nodes = append(nodes, domain.FlowNode{
			ID:   FakeAddress(r),
			Name: name,
			Type: kind,
			Val:  intIn(r, 30, 90),
		})
		sourceIdx = append(sourceIdx, len(nodes)-1)
	}

	targetIdx := len(nodes)
	nodes = append(nodes, domain.FlowNode{
		ID:    target,
		Name:  fmt.Sprintf("TARGET (%s...)", prefix(target, 6)),
		Type:  domain.FlowSuspect,
		Val:   100,
		Color: colorTarget,
	})

	mules := intIn(r, MinFlowMules, MaxFlowMules)
	muleIdx := make([]int, 0, mules)
	for i := 0; i < mules; i++ {
		nodes = append(nodes, domain.FlowNode{
			ID:   FakeAddress(r),
			Name: fmt.Sprintf("Mule %d", i+1),
			Type: domain.FlowMule,
			Val:  intIn(r, 10, 40),
		})
		muleIdx = append(muleIdx, len(nodes)-1)
	}

	links := make([]domain.FlowLink, 0, sources+mules)
	total := 0
	for _, idx := range sourceIdx {
		v := intIn(r, inflowLo, inflowHi)
		links = append(links, domain.FlowLink{
			Source:  idx,
			Target:  targetIdx,
			Value:   v,
			Flagged: r.Float64() > 0.7,
		})
		total += v
	}

	for i, v := range Allocate(total, mules, r) {
		links = append(links, domain.FlowLink{
			Source:  targetIdx,
			Target:  muleIdx[i],
			Value:   v,
			Flagged: true,
		})
	}

	return domain.FlowGraph{Nodes: nodes, Links: links, Target: targetIdx}
}

// Allocate splits total into at most parts integer shares of roughly
// total/parts each, with +/-5 jitter. Every share is at least 1 and the
// shares sum to total exactly; the last share absorbs the remainder. When
// total < parts only total shares of 1 are returned.
func Allocate(total, parts int, r *rand.Rand) []int {
	if total <= 0 || parts <= 0 {
		return nil
	}
	if parts > total {
		parts = total
	}

	shares := make([]int, parts)
	remaining := total
	for i := 0; i < parts-1; i++ {
		v := total/parts + intIn(r, -jitter, jitter)
		// keep one unit for each share still to come
		if limit := remaining - (parts - 1 - i); v > limit {
			v = limit
		}
		if v < 1 {
			v = 1
		}
		shares[i] = v
		remaining -= v
	}
	shares[parts-1] = remaining
	return shares
}
