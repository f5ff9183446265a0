package dashboard

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

func intIn(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func beta(r *rand.Rand, a, b float64) float64 {
	return distuv.Beta{Alpha: a, Beta: b, Src: r}.Rand()
}

func normal(r *rand.Rand, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r}.Rand()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
