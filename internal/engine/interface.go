// Package engine is the stat allocation engine. It ties the budget sampler,
// the point allocator and the scaling curve to one random stream.
package engine

import (
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
)

// Engine generates stat ranks and converts them into stat values
type Engine interface {
	// GenerateCharacter rolls a budget, allocates it and pairs the ranks with
	// the configured starting level
	GenerateCharacter(gen *stats.GenerationConfig, cal *stats.CalibrationTable) (*GenerateCharacterOutput, error)
	// EvaluateAll returns the stat value of every stat in the set
	EvaluateAll(input *EvaluateAllInput) (map[stats.StatType]float64, error)

	RollTotalPoints(gen *stats.GenerationConfig) int
	Allocate(total int, gen *stats.GenerationConfig) stats.RankVector
	Evaluate(rank, level int, cal *stats.CalibrationTable) float64

	// WithSource returns an engine bound to a different random stream
	WithSource(src rng.Source) Engine
}
