// Package stats defines the value types shared by the stat allocation engine:
// the ordered stat set, generation and calibration configuration, and rank
// vectors.
package stats

import (
	"strings"

	"github.com/dreamshade/recruit-api/internal/errors"
)

// StatType identifies a single stat
type StatType string

// Stat identifiers of the default set
const (
	StatStrength     StatType = "STR"
	StatDefense      StatType = "DEF"
	StatVitality     StatType = "VIT"
	StatPiety        StatType = "PTY"
	StatIntelligence StatType = "INT"
	StatAgility      StatType = "AGI"
)

// String returns the stat identifier
func (s StatType) String() string {
	return string(s)
}

// Set is an ordered, versioned list of stats. Rank vectors and persisted
// ranks are index aligned with it, so a new version may append stats but
// must never reorder or remove existing ones.
type Set struct {
	Version int        `json:"version" yaml:"version" toml:"version"`
	Types   []StatType `json:"types" yaml:"types" toml:"types"`
}

// DefaultSet returns the six-stat set the game ships with
func DefaultSet() Set {
	return Set{
		Version: 1,
		Types: []StatType{
			StatStrength,
			StatDefense,
			StatVitality,
			StatPiety,
			StatIntelligence,
			StatAgility,
		},
	}
}

// NewSet builds a set from stat names, rejecting empty and duplicate entries
func NewSet(version int, names ...string) (Set, error) {
	if len(names) == 0 {
		return Set{}, errors.InvalidArgument("stat set must contain at least one stat")
	}

	seen := make(map[StatType]bool, len(names))
	types := make([]StatType, 0, len(names))
	for _, name := range names {
		st := StatType(strings.ToUpper(strings.TrimSpace(name)))
		if st == "" {
			return Set{}, errors.InvalidArgument("stat name cannot be empty")
		}
		if seen[st] {
			return Set{}, errors.InvalidArgumentf("duplicate stat in set: %s", st)
		}
		seen[st] = true
		types = append(types, st)
	}

	return Set{Version: version, Types: types}, nil
}

// Len returns the number of stats in the set
func (s Set) Len() int {
	return len(s.Types)
}

// IsEmpty reports whether the set has no stats
func (s Set) IsEmpty() bool {
	return len(s.Types) == 0
}

// IndexOf returns the position of the stat, or -1 when absent
func (s Set) IndexOf(stat StatType) int {
	for i, t := range s.Types {
		if t == stat {
			return i
		}
	}
	return -1
}

// Contains reports whether the stat belongs to the set
func (s Set) Contains(stat StatType) bool {
	return s.IndexOf(stat) >= 0
}

// Extends reports whether s keeps every stat of prev at the same index.
// Only sets that extend the previous version may replace it.
func (s Set) Extends(prev Set) bool {
	if len(s.Types) < len(prev.Types) {
		return false
	}
	for i, t := range prev.Types {
		if s.Types[i] != t {
			return false
		}
	}
	return true
}
