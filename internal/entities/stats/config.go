package stats

import (
	"fmt"
	"math"

	"github.com/dreamshade/recruit-api/internal/errors"
)

// Defaults taken from the shipped recruit and stat assets
const (
	DefaultMinTotalPoints      = 100
	DefaultMaxTotalPoints      = 400
	DefaultTotalPointsSkew     = 2.0
	DefaultAntiDominanceAlpha  = 1.25
	DefaultCompareToCurrentMin = true
	DefaultSpikeStartChance    = 0.01
	DefaultSpikeLengthMin      = 2
	DefaultSpikeLengthMax      = 6
	DefaultSpikeAlpha          = 2.0
	DefaultStartingLevel       = 1

	DefaultMaxRank         = 100
	DefaultMaxLevel        = 50
	DefaultRank1Level1     = 10.0
	DefaultRank1MaxLevel   = 114.0
	DefaultMaxRankLevel1   = 15.0
	DefaultMaxRankMaxLevel = 150.0
)

// GenerationConfig controls how a recruit's rank budget is sampled and spread
// across the stat set. It is treated as an immutable value.
type GenerationConfig struct {
	Stats Set `json:"stats" yaml:"stats" toml:"stats"`

	MinTotalPoints int `json:"min_total_points" yaml:"min_total_points" toml:"min_total_points"`
	MaxTotalPoints int `json:"max_total_points" yaml:"max_total_points" toml:"max_total_points"`
	// TotalPointsSkew > 1 favors totals near the minimum, < 1 near the maximum
	TotalPointsSkew float64 `json:"total_points_skew" yaml:"total_points_skew" toml:"total_points_skew"`

	AntiDominanceAlpha float64 `json:"anti_dominance_alpha" yaml:"anti_dominance_alpha" toml:"anti_dominance_alpha"`
	// CompareToCurrentMin selects the min (true) or the mean (false) as baseline
	CompareToCurrentMin bool `json:"compare_to_current_min" yaml:"compare_to_current_min" toml:"compare_to_current_min"`

	SpikeStartChance float64 `json:"spike_start_chance" yaml:"spike_start_chance" toml:"spike_start_chance"`
	SpikeLengthMin   int     `json:"spike_length_min" yaml:"spike_length_min" toml:"spike_length_min"`
	SpikeLengthMax   int     `json:"spike_length_max" yaml:"spike_length_max" toml:"spike_length_max"`
	SpikeAlpha       float64 `json:"spike_alpha" yaml:"spike_alpha" toml:"spike_alpha"`

	// StartingLevel is handed back to the caller untouched
	StartingLevel int `json:"starting_level" yaml:"starting_level" toml:"starting_level"`
}

// DefaultGenerationConfig returns the shipped generation settings over the
// default stat set
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Stats:               DefaultSet(),
		MinTotalPoints:      DefaultMinTotalPoints,
		MaxTotalPoints:      DefaultMaxTotalPoints,
		TotalPointsSkew:     DefaultTotalPointsSkew,
		AntiDominanceAlpha:  DefaultAntiDominanceAlpha,
		CompareToCurrentMin: DefaultCompareToCurrentMin,
		SpikeStartChance:    DefaultSpikeStartChance,
		SpikeLengthMin:      DefaultSpikeLengthMin,
		SpikeLengthMax:      DefaultSpikeLengthMax,
		SpikeAlpha:          DefaultSpikeAlpha,
		StartingLevel:       DefaultStartingLevel,
	}
}

// Validate reports problems that clamping cannot repair
func (c *GenerationConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Stats.IsEmpty() {
		vb.RequiredField("stats")
	}
	seen := make(map[StatType]bool, c.Stats.Len())
	for _, st := range c.Stats.Types {
		if st == "" {
			vb.Field("stats", "contains an empty stat name")
			continue
		}
		if seen[st] {
			vb.Fieldf("stats", "contains duplicate stat %s", st)
		}
		seen[st] = true
	}

	return vb.Build()
}

// Normalize returns a copy clamped to the valid ranges, plus a description of
// every adjustment made. Designer data errors are repaired, never rejected.
func (c GenerationConfig) Normalize() (GenerationConfig, []string) {
	out := c
	var notes []string

	if out.MinTotalPoints < 0 {
		notes = append(notes, fmt.Sprintf("min_total_points %d raised to 0", out.MinTotalPoints))
		out.MinTotalPoints = 0
	}
	if out.MaxTotalPoints < out.MinTotalPoints {
		notes = append(notes, fmt.Sprintf("max_total_points %d raised to min_total_points %d", out.MaxTotalPoints, out.MinTotalPoints))
		out.MaxTotalPoints = out.MinTotalPoints
	}
	if !isFinite(out.TotalPointsSkew) || out.TotalPointsSkew <= 0 {
		notes = append(notes, fmt.Sprintf("total_points_skew %v replaced with 1 (uniform)", out.TotalPointsSkew))
		out.TotalPointsSkew = 1
	}
	if !isFinite(out.AntiDominanceAlpha) || out.AntiDominanceAlpha < 0 {
		notes = append(notes, fmt.Sprintf("anti_dominance_alpha %v replaced with 0", out.AntiDominanceAlpha))
		out.AntiDominanceAlpha = 0
	}
	switch {
	case math.IsNaN(out.SpikeStartChance) || out.SpikeStartChance < 0:
		notes = append(notes, fmt.Sprintf("spike_start_chance %v replaced with 0", out.SpikeStartChance))
		out.SpikeStartChance = 0
	case out.SpikeStartChance > 1:
		notes = append(notes, fmt.Sprintf("spike_start_chance %v lowered to 1", out.SpikeStartChance))
		out.SpikeStartChance = 1
	}
	if out.SpikeLengthMin < 1 {
		notes = append(notes, fmt.Sprintf("spike_length_min %d raised to 1", out.SpikeLengthMin))
		out.SpikeLengthMin = 1
	}
	if out.SpikeLengthMax < out.SpikeLengthMin {
		notes = append(notes, fmt.Sprintf("spike_length_max %d raised to spike_length_min %d", out.SpikeLengthMax, out.SpikeLengthMin))
		out.SpikeLengthMax = out.SpikeLengthMin
	}
	if !isFinite(out.SpikeAlpha) || out.SpikeAlpha < 1 {
		notes = append(notes, fmt.Sprintf("spike_alpha %v raised to 1", out.SpikeAlpha))
		out.SpikeAlpha = 1
	}
	if out.StartingLevel < 1 {
		notes = append(notes, fmt.Sprintf("starting_level %d raised to 1", out.StartingLevel))
		out.StartingLevel = 1
	}

	return out, notes
}

// CalibrationTable holds the four corner stat values used to interpolate any
// (rank, level) pair. Corner values need not be monotonic.
type CalibrationTable struct {
	MaxRank  int `json:"max_rank" yaml:"max_rank" toml:"max_rank"`
	MaxLevel int `json:"max_level" yaml:"max_level" toml:"max_level"`

	Rank1Level1     float64 `json:"rank1_level1" yaml:"rank1_level1" toml:"rank1_level1"`
	Rank1MaxLevel   float64 `json:"rank1_max_level" yaml:"rank1_max_level" toml:"rank1_max_level"`
	MaxRankLevel1   float64 `json:"max_rank_level1" yaml:"max_rank_level1" toml:"max_rank_level1"`
	MaxRankMaxLevel float64 `json:"max_rank_max_level" yaml:"max_rank_max_level" toml:"max_rank_max_level"`
}

// DefaultCalibrationTable returns the shipped calibration
func DefaultCalibrationTable() CalibrationTable {
	return CalibrationTable{
		MaxRank:         DefaultMaxRank,
		MaxLevel:        DefaultMaxLevel,
		Rank1Level1:     DefaultRank1Level1,
		Rank1MaxLevel:   DefaultRank1MaxLevel,
		MaxRankLevel1:   DefaultMaxRankLevel1,
		MaxRankMaxLevel: DefaultMaxRankMaxLevel,
	}
}

// Normalize returns a copy with MaxRank and MaxLevel of at least 1 and every
// corner finite, plus a description of every adjustment made.
func (c CalibrationTable) Normalize() (CalibrationTable, []string) {
	out := c
	var notes []string

	if out.MaxRank < 1 {
		notes = append(notes, fmt.Sprintf("max_rank %d raised to 1", out.MaxRank))
		out.MaxRank = 1
	}
	if out.MaxLevel < 1 {
		notes = append(notes, fmt.Sprintf("max_level %d raised to 1", out.MaxLevel))
		out.MaxLevel = 1
	}

	corners := []struct {
		name  string
		value *float64
	}{
		{"rank1_level1", &out.Rank1Level1},
		{"rank1_max_level", &out.Rank1MaxLevel},
		{"max_rank_level1", &out.MaxRankLevel1},
		{"max_rank_max_level", &out.MaxRankMaxLevel},
	}
	for _, corner := range corners {
		if !isFinite(*corner.value) {
			notes = append(notes, fmt.Sprintf("%s %v replaced with 0", corner.name, *corner.value))
			*corner.value = 0
		}
	}

	return out, notes
}

// ClampRank limits a rank to [1, MaxRank]
func (c CalibrationTable) ClampRank(rank int) int {
	return clampInt(rank, 1, max(1, c.MaxRank))
}

// ClampLevel limits a level to [1, MaxLevel]
func (c CalibrationTable) ClampLevel(level int) int {
	return clampInt(level, 1, max(1, c.MaxLevel))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
