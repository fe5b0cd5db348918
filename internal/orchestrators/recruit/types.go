package recruit

import (
	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
)

// MaxBatchSize caps GenerateBatch
const MaxBatchSize = 50

// GenerateRecruitInput describes a recruit to roll
type GenerateRecruitInput struct {
	PlayerID string
	Name     string
	Job      entities.JobClass
	// Profile names a catalog entry, empty means the default profile
	Profile string
	// Seed makes the roll reproducible when set
	Seed *uint64
	// Persist stores the recruit on the player's roster
	Persist bool
}

// GenerateRecruitOutput is a rolled recruit with its stat values
type GenerateRecruitOutput struct {
	Recruit *entities.Recruit
	// TotalPoints is the rolled budget before clamping
	TotalPoints int
	Stats       []*StatValue
}

// GenerateBatchInput describes a batch of recruits rolled from one profile.
// With a seed, recruit i uses Seed+i.
type GenerateBatchInput struct {
	PlayerID string
	Name     string
	Job      entities.JobClass
	Profile  string
	Seed     *uint64
	Count    int
	Persist  bool
}

// GenerateBatchOutput holds the batch in roll order
type GenerateBatchOutput struct {
	Results []*GenerateRecruitOutput
}

// GetRecruitInput defines the input for fetching a recruit
type GetRecruitInput struct {
	RecruitID string
}

// GetRecruitOutput defines the output for fetching a recruit
type GetRecruitOutput struct {
	Recruit *entities.Recruit
}

// ListRecruitsInput defines the input for listing a roster
type ListRecruitsInput struct {
	PlayerID string
}

// ListRecruitsOutput defines the output for listing a roster
type ListRecruitsOutput struct {
	Recruits []*entities.Recruit
}

// DeleteRecruitInput defines the input for deleting a recruit
type DeleteRecruitInput struct {
	RecruitID string
}

// DeleteRecruitOutput defines the output for deleting a recruit
type DeleteRecruitOutput struct{}

// GetRecruitStatsInput defines the input for evaluating a stored recruit
type GetRecruitStatsInput struct {
	RecruitID string
}

// GetRecruitStatsOutput holds the recruit and its stat values at its level
type GetRecruitStatsOutput struct {
	Recruit *entities.Recruit
	Stats   []*StatValue
}

// SetRankInput defines the input for changing one stat rank
type SetRankInput struct {
	RecruitID string
	Stat      string
	Rank      int
}

// SetRankOutput defines the output of SetRank
type SetRankOutput struct {
	Recruit *entities.Recruit
	Stats   []*StatValue
}

// SetLevelInput defines the input for changing a recruit's level
type SetLevelInput struct {
	RecruitID string
	Level     int
}

// SetLevelOutput defines the output of SetLevel
type SetLevelOutput struct {
	Recruit *entities.Recruit
	Stats   []*StatValue
}

// StatValue is one stat of a recruit, in stat set order
type StatValue struct {
	Stat  stats.StatType
	Rank  int
	Value float64
}
