package engine

import (
	"github.com/dreamshade/recruit-api/internal/allocation"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
	"github.com/dreamshade/recruit-api/internal/scaling"
)

// Names reported by ConfigurationMissing
const (
	ConfigGeneration  = "generation_config"
	ConfigCalibration = "calibration_table"
)

type engine struct {
	src rng.Source
}

// Config holds the engine dependencies
type Config struct {
	// Source must be wrapped with rng.NewLocked if the engine is shared
	// between goroutines
	Source rng.Source
}

// Validate checks the engine dependencies
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("source")
	}
	return vb.Build()
}

// New creates an engine drawing from cfg.Source
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{src: cfg.Source}, nil
}

func (e *engine) WithSource(src rng.Source) Engine {
	if src == nil {
		return e
	}
	return &engine{src: src}
}

func (e *engine) RollTotalPoints(gen *stats.GenerationConfig) int {
	return allocation.RollTotalPoints(gen, e.src)
}

func (e *engine) Allocate(total int, gen *stats.GenerationConfig) stats.RankVector {
	return allocation.Allocate(total, gen, e.src)
}

func (e *engine) Evaluate(rank, level int, cal *stats.CalibrationTable) float64 {
	return scaling.Evaluate(rank, level, cal)
}

func (e *engine) GenerateCharacter(
	gen *stats.GenerationConfig,
	cal *stats.CalibrationTable,
) (*GenerateCharacterOutput, error) {
	if gen == nil {
		return nil, errors.ConfigurationMissing(ConfigGeneration)
	}
	if cal == nil {
		return nil, errors.ConfigurationMissing(ConfigCalibration)
	}
	if gen.Stats.IsEmpty() {
		return nil, errors.InvalidArgument("generation config has no stats")
	}

	total := e.RollTotalPoints(gen)
	ranks := e.Allocate(total, gen)

	return &GenerateCharacterOutput{
		Ranks:       ranks,
		Level:       gen.StartingLevel,
		TotalPoints: total,
	}, nil
}

func (e *engine) EvaluateAll(input *EvaluateAllInput) (map[stats.StatType]float64, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Calibration == nil {
		return nil, errors.ConfigurationMissing(ConfigCalibration)
	}

	values := make(map[stats.StatType]float64, input.Stats.Len())
	for i, st := range input.Stats.Types {
		// stats appended after the ranks were rolled start at rank 1
		rank := 1
		if i < len(input.Ranks) {
			rank = max(input.Ranks[i], 1)
		}
		values[st] = scaling.Evaluate(rank, input.Level, input.Calibration)
	}

	return values, nil
}
