package testutils

import (
	"time"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
)

// Fixture values shared by tests
const (
	TestPlayerID    = "player_test_001"
	TestRecruitID   = "recruit_test_001"
	TestRecruitName = "Aerin"
)

// TestTime is the instant returned by fixed test clocks
var TestTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// CreateTestRecruit returns a level 1 warrior with ranks 10..60 over the
// default stat set
func CreateTestRecruit(playerID string) *entities.Recruit {
	r := entities.NewRecruit(
		TestRecruitName,
		entities.JobWarrior,
		1,
		stats.RankVector{10, 20, 30, 40, 50, 60},
		stats.DefaultSet(),
	)
	r.ID = TestRecruitID
	r.PlayerID = playerID
	r.Profile = "default"
	return r
}
