package allocation

import (
	"math"

	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
)

// Mode is the weighting scheme used to place one point
type Mode int

const (
	// ModeAntiDominance favors stats at or below the baseline
	ModeAntiDominance Mode = iota
	// ModeSpike favors stats that are already high
	ModeSpike
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeSpike:
		return "spike"
	case ModeAntiDominance:
		return "anti_dominance"
	default:
		return "unknown"
	}
}

// Step records how one point was placed
type Step struct {
	Point        int  `json:"point"`
	Mode         Mode `json:"mode"`
	Index        int  `json:"index"`
	SpikeStarted bool `json:"spike_started,omitempty"`
	// SpikeRemaining is the countdown after this point was placed
	SpikeRemaining int `json:"spike_remaining,omitempty"`
}

// RollTotalPoints samples the rank budget. The draw u is raised to the skew,
// so a skew above 1 favors the minimum and below 1 favors the maximum.
// A non-positive or non-finite skew is treated as 1 (uniform), and a
// maximum below the minimum as equal to it.
func RollTotalPoints(cfg *stats.GenerationConfig, src rng.Source) int {
	skew := cfg.TotalPointsSkew
	if math.IsNaN(skew) || math.IsInf(skew, 0) || skew <= 0 {
		skew = 1
	}
	lo, hi := cfg.MinTotalPoints, max(cfg.MaxTotalPoints, cfg.MinTotalPoints)

	skewed := clamp01(math.Pow(src.Float64(), skew))
	return int(math.Round(lerp(float64(lo), float64(hi), skewed)))
}

// Allocate distributes total points over the configured stat set. The result
// has one entry per stat and sums to total. A non-positive total yields an
// all-zero vector and an empty stat set yields nil.
func Allocate(total int, cfg *stats.GenerationConfig, src rng.Source) stats.RankVector {
	ranks, _ := run(total, cfg, src, false)
	return ranks
}

// Trace is Allocate that also returns the per-point step record
func Trace(total int, cfg *stats.GenerationConfig, src rng.Source) (stats.RankVector, []Step) {
	return run(total, cfg, src, true)
}

func run(total int, cfg *stats.GenerationConfig, src rng.Source, record bool) (stats.RankVector, []Step) {
	n := cfg.Stats.Len()
	if n == 0 {
		return nil, nil
	}

	ranks := make(stats.RankVector, n)
	if total <= 0 {
		return ranks, nil
	}

	var steps []Step
	if record {
		steps = make([]Step, 0, total)
	}

	spikeLo := max(cfg.SpikeLengthMin, 0)
	spikeHi := max(cfg.SpikeLengthMax, spikeLo)
	remaining := 0

	for point := 0; point < total; point++ {
		started := false
		if remaining == 0 && src.Float64() < cfg.SpikeStartChance {
			remaining = src.IntRange(spikeLo, spikeHi)
			started = remaining > 0
		}

		mode := ModeAntiDominance
		var weights []float64
		if remaining > 0 {
			mode = ModeSpike
			weights = SpikeWeights(ranks, cfg.SpikeAlpha)
			remaining--
		} else {
			weights = AntiDominanceWeights(ranks, cfg.AntiDominanceAlpha, cfg.CompareToCurrentMin)
		}

		idx := Pick(weights, src)
		ranks[idx]++

		if record {
			steps = append(steps, Step{
				Point:          point,
				Mode:           mode,
				Index:          idx,
				SpikeStarted:   started,
				SpikeRemaining: remaining,
			})
		}
	}

	return ranks, steps
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
