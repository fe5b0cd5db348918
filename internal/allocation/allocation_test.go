package allocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dreamshade/recruit-api/internal/allocation"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
)

type AllocationTestSuite struct {
	suite.Suite
	cfg stats.GenerationConfig
	src rng.Source
}

func TestAllocationSuite(t *testing.T) {
	suite.Run(t, new(AllocationTestSuite))
}

func (s *AllocationTestSuite) SetupTest() {
	s.cfg = stats.DefaultGenerationConfig()
	s.src = rng.NewSeeded(20240611)
}

func (s *AllocationTestSuite) TestRollTotalPointsWithinRange() {
	for i := 0; i < 5000; i++ {
		total := allocation.RollTotalPoints(&s.cfg, s.src)
		s.GreaterOrEqual(total, s.cfg.MinTotalPoints)
		s.LessOrEqual(total, s.cfg.MaxTotalPoints)
	}
}

func (s *AllocationTestSuite) TestRollTotalPointsFixedDraws() {
	s.cfg.TotalPointsSkew = 2

	// 0.5^2 = 0.25 of the way from 100 to 400
	s.Equal(175, allocation.RollTotalPoints(&s.cfg, rng.NewSequence(0.5)))
	s.Equal(100, allocation.RollTotalPoints(&s.cfg, rng.NewSequence(0)))
}

func (s *AllocationTestSuite) TestRollTotalPointsDegenerateConfig() {
	s.cfg.MinTotalPoints = 250
	s.cfg.MaxTotalPoints = 250
	s.Equal(250, allocation.RollTotalPoints(&s.cfg, s.src))

	s.cfg.MaxTotalPoints = 10
	s.Equal(250, allocation.RollTotalPoints(&s.cfg, s.src))

	// non-positive skew is uniform
	s.cfg.MinTotalPoints = 0
	s.cfg.MaxTotalPoints = 100
	s.cfg.TotalPointsSkew = -3
	s.Equal(50, allocation.RollTotalPoints(&s.cfg, rng.NewSequence(0.5)))
}

func (s *AllocationTestSuite) TestSkewMonotonicity() {
	const draws = 10000
	skews := []float64{0.5, 1, 2, 4}

	means := make([]float64, len(skews))
	for i, skew := range skews {
		cfg := s.cfg
		cfg.TotalPointsSkew = skew
		src := rng.NewSeeded(99)

		sum := 0
		for j := 0; j < draws; j++ {
			sum += allocation.RollTotalPoints(&cfg, src)
		}
		means[i] = float64(sum) / draws
	}

	for i := 1; i < len(means); i++ {
		s.Less(means[i], means[i-1], "skew %v should sample lower than skew %v", skews[i], skews[i-1])
	}
}

func (s *AllocationTestSuite) TestBudgetConservation() {
	configs := map[string]func(*stats.GenerationConfig){
		"defaults": func(*stats.GenerationConfig) {},
		"frequent spikes": func(c *stats.GenerationConfig) {
			c.SpikeStartChance = 0.3
			c.SpikeAlpha = 4
		},
		"mean baseline": func(c *stats.GenerationConfig) {
			c.CompareToCurrentMin = false
			c.AntiDominanceAlpha = 3
		},
		"no bias": func(c *stats.GenerationConfig) {
			c.AntiDominanceAlpha = 0
			c.SpikeStartChance = 0
		},
	}

	for name, modify := range configs {
		s.Run(name, func() {
			cfg := stats.DefaultGenerationConfig()
			modify(&cfg)

			for total := cfg.MinTotalPoints; total <= cfg.MaxTotalPoints; total += 37 {
				ranks := allocation.Allocate(total, &cfg, s.src)
				s.Len(ranks, cfg.Stats.Len())
				s.Equal(total, ranks.Sum())
				for _, r := range ranks {
					s.GreaterOrEqual(r, 0)
				}
			}
		})
	}
}

func (s *AllocationTestSuite) TestAllocateEdgeTotals() {
	s.Equal(stats.RankVector{0, 0, 0, 0, 0, 0}, allocation.Allocate(0, &s.cfg, s.src))
	s.Equal(stats.RankVector{0, 0, 0, 0, 0, 0}, allocation.Allocate(-5, &s.cfg, s.src))

	s.cfg.Stats = stats.Set{}
	s.Nil(allocation.Allocate(10, &s.cfg, s.src))
}

func (s *AllocationTestSuite) TestAllocateSingleStat() {
	set, err := stats.NewSet(1, "STR")
	s.Require().NoError(err)
	s.cfg.Stats = set

	s.Equal(stats.RankVector{42}, allocation.Allocate(42, &s.cfg, s.src))
}

func (s *AllocationTestSuite) TestAllocateIsReproducible() {
	a := allocation.Allocate(300, &s.cfg, rng.NewSeeded(5))
	b := allocation.Allocate(300, &s.cfg, rng.NewSeeded(5))
	s.Equal(a, b)
}

func (s *AllocationTestSuite) TestAntiDominanceTendency() {
	const trials = 10000
	current := stats.RankVector{50, 0, 0, 0, 0, 0}
	weights := allocation.AntiDominanceWeights(current, s.cfg.AntiDominanceAlpha, true)

	counts := make([]int, len(current))
	for i := 0; i < trials; i++ {
		counts[allocation.Pick(weights, s.src)]++
	}

	s.Less(float64(counts[0]), float64(trials)/float64(len(current)))
	s.Less(counts[0], counts[1])
}

func (s *AllocationTestSuite) TestSpikeRunsHaveConfiguredLength() {
	const k = 4
	s.cfg.SpikeStartChance = 1
	s.cfg.SpikeLengthMin = k
	s.cfg.SpikeLengthMax = k

	_, steps := allocation.Trace(40, &s.cfg, s.src)
	s.Require().Len(steps, 40)

	for i, step := range steps {
		s.Equal(allocation.ModeSpike, step.Mode)
		s.Equal(i%k == 0, step.SpikeStarted, "point %d", i)
		s.Equal(k-1-i%k, step.SpikeRemaining, "point %d", i)
	}
}

func (s *AllocationTestSuite) TestSpikeRevertsToAntiDominance() {
	s.cfg.SpikeStartChance = 0.5
	s.cfg.SpikeLengthMin = 3
	s.cfg.SpikeLengthMax = 3

	// bernoulli hit, three picks, bernoulli miss, one pick
	src := rng.NewSequence(0.1, 0, 0, 0, 0.9, 0)
	ranks, steps := allocation.Trace(4, &s.cfg, src)

	s.Require().Len(steps, 4)
	s.Equal(allocation.ModeSpike, steps[0].Mode)
	s.True(steps[0].SpikeStarted)
	s.Equal(allocation.ModeSpike, steps[1].Mode)
	s.Equal(allocation.ModeSpike, steps[2].Mode)
	s.Equal(allocation.ModeAntiDominance, steps[3].Mode)
	s.Equal(4, ranks.Sum())
	s.Equal(6, src.Consumed())
}

func (s *AllocationTestSuite) TestNoSpikesWhenChanceIsZero() {
	s.cfg.SpikeStartChance = 0

	_, steps := allocation.Trace(200, &s.cfg, s.src)
	for _, step := range steps {
		s.Equal(allocation.ModeAntiDominance, step.Mode)
		s.False(step.SpikeStarted)
	}
}

func TestWeights(t *testing.T) {
	current := stats.RankVector{4, 0, 2}

	minBased := allocation.AntiDominanceWeights(current, 1, true)
	assert.InDelta(t, 1.0/5, minBased[0], 1e-12)
	assert.InDelta(t, 1.0, minBased[1], 1e-12)
	assert.InDelta(t, 1.0/3, minBased[2], 1e-12)

	// mean is 2, so only the first stat is above baseline
	meanBased := allocation.AntiDominanceWeights(current, 1, false)
	assert.InDelta(t, 1.0/3, meanBased[0], 1e-12)
	assert.InDelta(t, 1.0, meanBased[1], 1e-12)
	assert.InDelta(t, 1.0, meanBased[2], 1e-12)

	spike := allocation.SpikeWeights(current, 2)
	assert.InDelta(t, 25.0, spike[0], 1e-12)
	assert.InDelta(t, 1.0, spike[1], 1e-12)
	assert.InDelta(t, 9.0, spike[2], 1e-12)
}

func TestWeightsAreFloored(t *testing.T) {
	current := stats.RankVector{1000, 0}

	weights := allocation.AntiDominanceWeights(current, 50, true)
	assert.Equal(t, allocation.WeightFloor, weights[0])
	assert.Equal(t, 1.0, weights[1])
}

func TestPickProportions(t *testing.T) {
	const trials = 20000
	src := rng.NewSeeded(3)

	hits := 0
	for i := 0; i < trials; i++ {
		if allocation.Pick([]float64{1, 3}, src) == 1 {
			hits++
		}
	}
	assert.InDelta(t, 0.75, float64(hits)/trials, 0.02)
}

func TestPickEdges(t *testing.T) {
	assert.Equal(t, -1, allocation.Pick(nil, rng.NewSequence(0.5)))
	assert.Equal(t, 0, allocation.Pick([]float64{0, 0, 0}, rng.NewSequence(0)))
	assert.Equal(t, 2, allocation.Pick([]float64{1, 1, 1}, rng.NewSequence(0.99)))
}
