// Package mockgraph builds reproducible synthetic transaction graphs for a
// wallet identifier. Each call owns its random source, so identical
// identifiers always yield identical graphs and unrelated calls never share
// generator state.
package mockgraph

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/forensics/domain"
	"github.com/ethereum/go-ethereum/common"
)

// Normalize substitutes the default entity for a blank identifier.
func Normalize(id string) string {
	if strings.TrimSpace(id) == "" {
		return domain.DefaultEntity
	}
	return id
}

// Seed derives a stable 64-bit seed from an identifier.
func Seed(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}

// NewRand returns a generator private to one graph build for id.
func NewRand(id string) *rand.Rand {
	s := Seed(id)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// intIn draws uniformly from the inclusive range [lo, hi].
func intIn(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// prefix returns at most n leading characters of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FakeAddress draws a checksummed 20-byte wallet address from r.
func FakeAddress(r *rand.Rand) string {
	var b [common.AddressLength]byte
	for i := range b {
		b[i] = byte(r.IntN(256))
	}
	return common.BytesToAddress(b[:]).Hex()
}
