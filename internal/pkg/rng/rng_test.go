package rng_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dreamshade/recruit-api/internal/pkg/rng"
)

type fixedRoller struct {
	value int
	err   error
	sizes []int
}

func (f *fixedRoller) Roll(size int) (int, error) {
	f.sizes = append(f.sizes, size)
	if f.err != nil {
		return 0, f.err
	}
	return f.value, nil
}

func (f *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := f.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type SourceTestSuite struct {
	suite.Suite
}

func TestSourceSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) TestSeededIsReproducible() {
	a := rng.NewSeeded(42)
	b := rng.NewSeeded(42)

	for i := 0; i < 100; i++ {
		s.Equal(a.Float64(), b.Float64())
		s.Equal(a.IntRange(2, 6), b.IntRange(2, 6))
	}
}

func (s *SourceTestSuite) TestSeededRanges() {
	src := rng.NewSeeded(7)

	for i := 0; i < 1000; i++ {
		u := src.Float64()
		s.GreaterOrEqual(u, 0.0)
		s.Less(u, 1.0)

		n := src.IntRange(2, 6)
		s.GreaterOrEqual(n, 2)
		s.LessOrEqual(n, 6)
	}

	s.Equal(5, src.IntRange(5, 5))
	s.Equal(5, src.IntRange(5, 1))
}

func (s *SourceTestSuite) TestDiceSourceMapsRolls() {
	roller := &fixedRoller{value: 1}
	src := rng.NewDiceSource(roller)

	s.Equal(0.0, src.Float64())
	s.Equal(2, src.IntRange(2, 6))

	roller.value = 5
	s.Equal(6, src.IntRange(2, 6))
	s.Equal(5, roller.sizes[len(roller.sizes)-1])
}

func (s *SourceTestSuite) TestDiceSourceFallsBackOnError() {
	src := rng.NewDiceSource(&fixedRoller{err: errors.New("roller offline")})

	for i := 0; i < 100; i++ {
		u := src.Float64()
		s.GreaterOrEqual(u, 0.0)
		s.Less(u, 1.0)

		n := src.IntRange(1, 3)
		s.GreaterOrEqual(n, 1)
		s.LessOrEqual(n, 3)
	}
}

func (s *SourceTestSuite) TestDefaultSourceRanges() {
	src := rng.Default()
	for i := 0; i < 100; i++ {
		u := src.Float64()
		s.GreaterOrEqual(u, 0.0)
		s.Less(u, 1.0)
	}
}

func (s *SourceTestSuite) TestLockedIsSafeForConcurrentUse() {
	src := rng.NewLocked(rng.NewSeeded(1))
	s.Same(src, rng.NewLocked(src))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = src.Float64()
				_ = src.IntRange(0, 10)
			}
		}()
	}
	wg.Wait()
}

func TestSequence(t *testing.T) {
	seq := rng.NewSequence(0.25, 1.5, -1)

	assert.Equal(t, 0.25, seq.Float64())
	assert.Less(t, seq.Float64(), 1.0)
	assert.Equal(t, 0.0, seq.Float64())
	assert.Equal(t, 0.25, seq.Float64())
	assert.Equal(t, 4, seq.Consumed())

	// 0.25 of [2,6] lands on the second value
	assert.Equal(t, 3, rng.NewSequence(0.25).IntRange(2, 6))
	assert.Equal(t, 0.0, rng.NewSequence().Float64())
}
