package rng

import "math"

// Sequence replays a fixed list of floats, cycling when exhausted. It is
// meant for tests and for reproducing a reported roll.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence returns a source that replays values. Values are clamped into
// [0, 1). An empty sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case math.IsNaN(v) || v < 0:
			v = 0
		case v >= 1:
			v = math.Nextafter(1, 0)
		}
		out[i] = v
	}
	return &Sequence{values: out}
}

// Float64 returns the next value of the sequence
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// IntRange maps the next value onto [lo, hi]
func (s *Sequence) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	u := s.Float64()
	return lo + int(u*float64(hi-lo+1))
}

// Consumed reports how many values have been drawn
func (s *Sequence) Consumed() int {
	return s.pos
}
