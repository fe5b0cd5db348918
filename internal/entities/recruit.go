package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/dreamshade/recruit-api/internal/entities/stats"
)

// EntityTypeRecruit is the toolkit entity type of a recruit
const EntityTypeRecruit = "recruit"

// DefaultRecruitName is used when a recruit is created without a name
const DefaultRecruitName = "Recruit"

// StatRank is one persisted rank. Ranks are stored by stat name so records
// survive stats being appended to the set.
type StatRank struct {
	Stat stats.StatType `json:"stat"`
	Rank int            `json:"rank"`
}

// Recruit is a generated character owned by a player
type Recruit struct {
	ID       string   `json:"id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Job      JobClass `json:"job"`
	Level    int      `json:"level"`

	Ranks          []StatRank `json:"ranks"`
	StatSetVersion int        `json:"stat_set_version"`

	// Profile and Seed identify how the ranks were rolled
	Profile string  `json:"profile,omitempty"`
	Seed    *uint64 `json:"seed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var _ core.Entity = (*Recruit)(nil)

// GetID returns the recruit ID
func (r *Recruit) GetID() string {
	return r.ID
}

// GetType returns the toolkit entity type
func (r *Recruit) GetType() string {
	return EntityTypeRecruit
}

// NewRecruit builds a recruit from freshly rolled ranks. The name is trimmed
// and defaulted, the level is at least 1 and every rank is at least 1.
func NewRecruit(name string, job JobClass, level int, ranks stats.RankVector, set stats.Set) *Recruit {
	r := &Recruit{
		Name:           NormalizeName(name),
		Job:            job,
		Level:          max(level, 1),
		StatSetVersion: set.Version,
	}
	r.SetRanks(ranks, set)
	return r
}

// NormalizeName trims a recruit name, falling back to DefaultRecruitName
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultRecruitName
	}
	return name
}

// SetRanks replaces the stored ranks with the vector, aligned to set
func (r *Recruit) SetRanks(ranks stats.RankVector, set stats.Set) {
	r.Ranks = make([]StatRank, 0, set.Len())
	for i, st := range set.Types {
		if i >= len(ranks) {
			break
		}
		r.Ranks = append(r.Ranks, StatRank{Stat: st, Rank: max(ranks[i], 1)})
	}
}

// RankOf returns the rank of a stat, or 1 when the record has none
func (r *Recruit) RankOf(stat stats.StatType) int {
	for _, sr := range r.Ranks {
		if sr.Stat == stat {
			return max(sr.Rank, 1)
		}
	}
	return 1
}

// SetRank stores a rank of at least 1 for the stat
func (r *Recruit) SetRank(stat stats.StatType, rank int) {
	rank = max(rank, 1)
	for i := range r.Ranks {
		if r.Ranks[i].Stat == stat {
			r.Ranks[i].Rank = rank
			return
		}
	}
	r.Ranks = append(r.Ranks, StatRank{Stat: stat, Rank: rank})
}

// RankVector re-aligns the stored ranks with set
func (r *Recruit) RankVector(set stats.Set) stats.RankVector {
	out := make(stats.RankVector, set.Len())
	for i, st := range set.Types {
		out[i] = r.RankOf(st)
	}
	return out
}

// TotalRank sums the stored ranks
func (r *Recruit) TotalRank() int {
	total := 0
	for _, sr := range r.Ranks {
		total += sr.Rank
	}
	return total
}
