// Package rng provides the uniform random sources consumed by stat
// allocation. Every source yields floats in [0, 1) and inclusive integer
// ranges; callers must not assume anything else about the stream.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source is a stream of uniform random values
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntRange returns a value in [lo, hi]. When hi <= lo it returns lo.
	IntRange(lo, hi int) int
}

// seeded is a reproducible PCG stream
type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a reproducible source. Two sources built from the same
// seed produce the same stream.
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seeded) Float64() float64 {
	return s.r.Float64()
}

func (s *seeded) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// diceFaces is the die used to derive floats from a roller
const diceFaces = 1 << 30

// diceSource draws from an rpg-toolkit roller
type diceSource struct {
	roller dice.Roller
}

// NewDiceSource adapts a dice roller. A nil roller uses the toolkit default.
// Roller failures fall back to the process-wide math/rand stream.
func NewDiceSource(roller dice.Roller) Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &diceSource{roller: roller}
}

// Default returns a source backed by the toolkit's default roller
func Default() Source {
	return NewDiceSource(dice.DefaultRoller)
}

func (d *diceSource) Float64() float64 {
	v, err := d.roller.Roll(diceFaces)
	if err != nil || v < 1 || v > diceFaces {
		return rand.Float64()
	}
	return float64(v-1) / diceFaces
}

func (d *diceSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	size := hi - lo + 1
	v, err := d.roller.Roll(size)
	if err != nil || v < 1 || v > size {
		return lo + rand.IntN(size)
	}
	return lo + v - 1
}

// locked serializes access to a shared source
type locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps a source so it can be shared between goroutines. Callers
// that need reproducible streams should give each worker its own source
// instead.
func NewLocked(src Source) Source {
	if l, ok := src.(*locked); ok {
		return l
	}
	return &locked{src: src}
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

func (l *locked) IntRange(lo, hi int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntRange(lo, hi)
}
