package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
)

type SetTestSuite struct {
	suite.Suite
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetTestSuite))
}

func (s *SetTestSuite) TestDefaultSetOrder() {
	set := stats.DefaultSet()

	s.Equal(1, set.Version)
	s.Equal([]stats.StatType{"STR", "DEF", "VIT", "PTY", "INT", "AGI"}, set.Types)
	s.Equal(2, set.IndexOf(stats.StatVitality))
	s.Equal(-1, set.IndexOf("LCK"))
	s.True(set.Contains(stats.StatAgility))
}

func (s *SetTestSuite) TestNewSet() {
	testCases := []struct {
		name      string
		names     []string
		expected  []stats.StatType
		expectErr bool
	}{
		{
			name:     "normalizes case and whitespace",
			names:    []string{" str", "dex "},
			expected: []stats.StatType{"STR", "DEX"},
		},
		{
			name:      "rejects empty set",
			expectErr: true,
		},
		{
			name:      "rejects blank name",
			names:     []string{"STR", "  "},
			expectErr: true,
		},
		{
			name:      "rejects duplicates",
			names:     []string{"STR", "str"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			set, err := stats.NewSet(2, tc.names...)
			if tc.expectErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, set.Types)
			s.Equal(2, set.Version)
		})
	}
}

func (s *SetTestSuite) TestExtends() {
	v1 := stats.DefaultSet()

	v2 := stats.DefaultSet()
	v2.Version = 2
	v2.Types = append(v2.Types, "LCK")
	s.True(v2.Extends(v1))
	s.False(v1.Extends(v2))

	reordered, err := stats.NewSet(2, "DEF", "STR", "VIT", "PTY", "INT", "AGI")
	s.Require().NoError(err)
	s.False(reordered.Extends(v1))
}

func TestRankVector(t *testing.T) {
	r := stats.RankVector{0, 3, 7, 2}

	assert.Equal(t, 12, r.Sum())
	assert.Equal(t, 0, r.Min())
	assert.InDelta(t, 3.0, r.Mean(), 1e-9)

	clone := r.Clone()
	clone[0] = 99
	assert.Equal(t, 0, r[0])

	assert.Equal(t, stats.RankVector{1, 3, 5, 2}, r.ClampForPersistence(5))
	assert.Equal(t, stats.RankVector{1, 3, 7, 2}, r.ClampForPersistence(0))

	var empty stats.RankVector
	assert.Equal(t, 0, empty.Min())
	assert.Zero(t, empty.Mean())
}

func TestRankVectorByStat(t *testing.T) {
	set := stats.DefaultSet()
	byStat := stats.RankVector{5, 6}.ByStat(set)

	assert.Equal(t, map[stats.StatType]int{"STR": 5, "DEF": 6}, byStat)
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaultsNeedNoAdjustment() {
	gen, notes := stats.DefaultGenerationConfig().Normalize()
	s.Empty(notes)
	s.Equal(stats.DefaultGenerationConfig(), gen)

	cal, notes := stats.DefaultCalibrationTable().Normalize()
	s.Empty(notes)
	s.Equal(stats.DefaultCalibrationTable(), cal)
}

func (s *ConfigTestSuite) TestGenerationNormalize() {
	testCases := []struct {
		name   string
		modify func(*stats.GenerationConfig)
		check  func(stats.GenerationConfig)
	}{
		{
			name: "max below min is raised",
			modify: func(c *stats.GenerationConfig) {
				c.MinTotalPoints = 300
				c.MaxTotalPoints = 200
			},
			check: func(c stats.GenerationConfig) {
				s.Equal(300, c.MaxTotalPoints)
			},
		},
		{
			name:   "non-positive skew becomes uniform",
			modify: func(c *stats.GenerationConfig) { c.TotalPointsSkew = 0 },
			check: func(c stats.GenerationConfig) {
				s.Equal(1.0, c.TotalPointsSkew)
			},
		},
		{
			name:   "nan skew becomes uniform",
			modify: func(c *stats.GenerationConfig) { c.TotalPointsSkew = math.NaN() },
			check: func(c stats.GenerationConfig) {
				s.Equal(1.0, c.TotalPointsSkew)
			},
		},
		{
			name:   "negative alpha is zeroed",
			modify: func(c *stats.GenerationConfig) { c.AntiDominanceAlpha = -2 },
			check: func(c stats.GenerationConfig) {
				s.Zero(c.AntiDominanceAlpha)
			},
		},
		{
			name:   "spike chance above one is capped",
			modify: func(c *stats.GenerationConfig) { c.SpikeStartChance = 1.5 },
			check: func(c stats.GenerationConfig) {
				s.Equal(1.0, c.SpikeStartChance)
			},
		},
		{
			name:   "negative spike chance is zeroed",
			modify: func(c *stats.GenerationConfig) { c.SpikeStartChance = -0.2 },
			check: func(c stats.GenerationConfig) {
				s.Zero(c.SpikeStartChance)
			},
		},
		{
			name: "spike lengths are repaired",
			modify: func(c *stats.GenerationConfig) {
				c.SpikeLengthMin = 0
				c.SpikeLengthMax = -3
			},
			check: func(c stats.GenerationConfig) {
				s.Equal(1, c.SpikeLengthMin)
				s.Equal(1, c.SpikeLengthMax)
			},
		},
		{
			name:   "spike alpha below one is raised",
			modify: func(c *stats.GenerationConfig) { c.SpikeAlpha = 0.5 },
			check: func(c stats.GenerationConfig) {
				s.Equal(1.0, c.SpikeAlpha)
			},
		},
		{
			name:   "starting level is at least one",
			modify: func(c *stats.GenerationConfig) { c.StartingLevel = 0 },
			check: func(c stats.GenerationConfig) {
				s.Equal(1, c.StartingLevel)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := stats.DefaultGenerationConfig()
			tc.modify(&cfg)

			out, notes := cfg.Normalize()
			s.NotEmpty(notes)
			tc.check(out)
		})
	}
}

func (s *ConfigTestSuite) TestNormalizeDoesNotMutateReceiver() {
	cfg := stats.DefaultGenerationConfig()
	cfg.MaxTotalPoints = 10

	_, _ = cfg.Normalize()
	s.Equal(10, cfg.MaxTotalPoints)
}

func (s *ConfigTestSuite) TestGenerationValidate() {
	cfg := stats.DefaultGenerationConfig()
	s.NoError(cfg.Validate())

	cfg.Stats = stats.Set{}
	err := cfg.Validate()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "stats")

	cfg.Stats = stats.Set{Version: 1, Types: []stats.StatType{"STR", "STR"}}
	err = cfg.Validate()
	s.Require().Error(err)
	s.Contains(err.Error(), "duplicate")
}

func (s *ConfigTestSuite) TestCalibrationNormalize() {
	cal := stats.CalibrationTable{
		MaxRank:       0,
		MaxLevel:      -4,
		Rank1Level1:   math.Inf(1),
		MaxRankLevel1: 12,
	}

	out, notes := cal.Normalize()
	s.Len(notes, 3)
	s.Equal(1, out.MaxRank)
	s.Equal(1, out.MaxLevel)
	s.Zero(out.Rank1Level1)
	s.Equal(12.0, out.MaxRankLevel1)
}

func TestCalibrationClamp(t *testing.T) {
	cal := stats.DefaultCalibrationTable()

	require.Equal(t, 1, cal.ClampRank(0))
	require.Equal(t, 100, cal.ClampRank(250))
	require.Equal(t, 37, cal.ClampRank(37))
	require.Equal(t, 1, cal.ClampLevel(-1))
	require.Equal(t, 50, cal.ClampLevel(51))
}
