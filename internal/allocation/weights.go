package allocation

import (
	"math"

	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
)

// WeightFloor is the smallest weight any stat can receive, so a draw always
// has a positive total
const WeightFloor = 1e-4

// AntiDominanceWeights returns 1 / (1 + max(0, v - baseline))^alpha for each
// stat. The baseline is the current minimum when compareToMin is set and the
// real-valued mean otherwise.
func AntiDominanceWeights(current stats.RankVector, alpha float64, compareToMin bool) []float64 {
	baseline := current.Mean()
	if compareToMin {
		baseline = float64(current.Min())
	}

	weights := make([]float64, len(current))
	for i, v := range current {
		over := math.Max(0, float64(v)-baseline)
		weights[i] = floorWeight(1 / math.Pow(1+over, alpha), len(current))
	}
	return weights
}

// SpikeWeights returns (v + 1)^alpha for each stat
func SpikeWeights(current stats.RankVector, alpha float64) []float64 {
	weights := make([]float64, len(current))
	for i, v := range current {
		weights[i] = floorWeight(math.Pow(float64(v)+1, alpha), len(current))
	}
	return weights
}

// floorWeight keeps a weight in [WeightFloor, MaxFloat64/n] so the total of n
// weights stays finite and positive
func floorWeight(w float64, n int) float64 {
	if math.IsNaN(w) || w < WeightFloor {
		return WeightFloor
	}
	ceiling := math.MaxFloat64 / float64(max(n, 1))
	if w > ceiling {
		return ceiling
	}
	return w
}

// Pick draws an index with probability proportional to its weight. Weights
// below WeightFloor (including NaN) count as WeightFloor. It returns -1 for
// an empty slice.
func Pick(weights []float64, src rng.Source) int {
	if len(weights) == 0 {
		return -1
	}
	return pick(weights, src.Float64())
}

// pick selects the first index whose cumulative weight reaches u * total.
// If rounding leaves the target above every cumulative sum the last index is
// returned.
func pick(weights []float64, u float64) int {
	total := 0.0
	for _, w := range weights {
		total += floorWeight(w, len(weights))
	}

	r := u * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += floorWeight(w, len(weights))
		if cumulative >= r {
			return i
		}
	}
	return len(weights) - 1
}
