// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
)

// RecruitBuilder provides a fluent interface for building test recruits
type RecruitBuilder struct {
	recruit *entities.Recruit
	set     stats.Set
}

// NewRecruitBuilder creates a new builder with minimal defaults
func NewRecruitBuilder() *RecruitBuilder {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &RecruitBuilder{
		set: stats.DefaultSet(),
		recruit: &entities.Recruit{
			ID:             "recruit-test-123",
			PlayerID:       "player-test-123",
			Name:           entities.DefaultRecruitName,
			Job:            entities.JobWarrior,
			Level:          1,
			StatSetVersion: 1,
			Profile:        "default",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}

// WithID sets the recruit ID
func (b *RecruitBuilder) WithID(id string) *RecruitBuilder {
	b.recruit.ID = id
	return b
}

// WithPlayerID sets the owning player
func (b *RecruitBuilder) WithPlayerID(playerID string) *RecruitBuilder {
	b.recruit.PlayerID = playerID
	return b
}

// WithName sets the name as given, without normalization
func (b *RecruitBuilder) WithName(name string) *RecruitBuilder {
	b.recruit.Name = name
	return b
}

// WithJob sets the job classes
func (b *RecruitBuilder) WithJob(job entities.JobClass) *RecruitBuilder {
	b.recruit.Job = job
	return b
}

// WithLevel sets the level
func (b *RecruitBuilder) WithLevel(level int) *RecruitBuilder {
	b.recruit.Level = level
	return b
}

// WithStatSet changes the set later WithRanks calls align to
func (b *RecruitBuilder) WithStatSet(set stats.Set) *RecruitBuilder {
	b.set = set
	b.recruit.StatSetVersion = set.Version
	return b
}

// WithRanks stores ranks aligned to the builder's stat set
func (b *RecruitBuilder) WithRanks(ranks ...int) *RecruitBuilder {
	b.recruit.SetRanks(stats.RankVector(ranks), b.set)
	return b
}

// WithSeed records the seed the ranks were rolled with
func (b *RecruitBuilder) WithSeed(seed uint64) *RecruitBuilder {
	b.recruit.Seed = &seed
	return b
}

// WithCreatedAt sets both timestamps
func (b *RecruitBuilder) WithCreatedAt(t time.Time) *RecruitBuilder {
	b.recruit.CreatedAt = t
	b.recruit.UpdatedAt = t
	return b
}

// Build returns a copy of the recruit
func (b *RecruitBuilder) Build() *entities.Recruit {
	r := *b.recruit
	r.Ranks = append([]entities.StatRank(nil), b.recruit.Ranks...)
	return &r
}
