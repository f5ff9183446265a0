package mockgraph

import (
	"fmt"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
)

// Kind selects which graph Generate builds.
type Kind string

const (
	KindEgo  Kind = "ego"
	KindFlow Kind = "flow"
)

// EgoFor returns the ego network for id, substituting the default entity
// for a blank identifier.
func EgoFor(id string) domain.EgoGraph {
	id = Normalize(id)
	return Ego(id, NewRand(id))
}

// FlowFor returns the fund flow network for id.
func FlowFor(id string) domain.FlowGraph {
	id = Normalize(id)
	return Flow(id, NewRand(id))
}

// Generate dispatches on kind.
func Generate(kind Kind, id string) (any, error) {
	switch kind {
	case KindEgo:
		return EgoFor(id), nil
	case KindFlow:
		return FlowFor(id), nil
	default:
		return nil, fmt.Errorf("generate %q: %w", kind, domain.ErrUnknownGraphKind)
	}
}
