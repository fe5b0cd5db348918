package v1alpha1

import "time"

// Recruit is the wire form of a stored or freshly rolled recruit
type Recruit struct {
	ID             string      `json:"id"`
	PlayerID       string      `json:"player_id,omitempty"`
	Name           string      `json:"name"`
	Job            string      `json:"job"`
	Level          int32       `json:"level"`
	Ranks          []*StatRank `json:"ranks"`
	StatSetVersion int32       `json:"stat_set_version"`
	Profile        string      `json:"profile,omitempty"`
	Seed           *uint64     `json:"seed,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// StatRank is one persisted rank
type StatRank struct {
	Stat string `json:"stat"`
	Rank int32  `json:"rank"`
}

// StatValue is a stat's rank and its value at the recruit's level
type StatValue struct {
	Stat  string  `json:"stat"`
	Rank  int32   `json:"rank"`
	Value float64 `json:"value"`
}

// GenerateRecruitRequest rolls one recruit
type GenerateRecruitRequest struct {
	PlayerID string  `json:"player_id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Job      string  `json:"job,omitempty"`
	Profile  string  `json:"profile,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
	Persist  bool    `json:"persist,omitempty"`
}

// GenerateRecruitResponse carries the rolled recruit
type GenerateRecruitResponse struct {
	Recruit     *Recruit     `json:"recruit"`
	TotalPoints int32        `json:"total_points"`
	Stats       []*StatValue `json:"stats"`
}

// GenerateBatchRequest rolls several recruits from one profile
type GenerateBatchRequest struct {
	PlayerID string  `json:"player_id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Job      string  `json:"job,omitempty"`
	Profile  string  `json:"profile,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
	Count    int32   `json:"count"`
	Persist  bool    `json:"persist,omitempty"`
}

// GenerateBatchResponse carries the batch in roll order
type GenerateBatchResponse struct {
	Results []*GenerateRecruitResponse `json:"results"`
}

// GetRecruitRequest fetches a recruit
type GetRecruitRequest struct {
	RecruitID string `json:"recruit_id"`
}

// GetRecruitResponse carries the recruit
type GetRecruitResponse struct {
	Recruit *Recruit `json:"recruit"`
}

// ListRecruitsRequest lists a player's roster
type ListRecruitsRequest struct {
	PlayerID string `json:"player_id"`
}

// ListRecruitsResponse carries the roster, oldest first
type ListRecruitsResponse struct {
	Recruits []*Recruit `json:"recruits"`
}

// DeleteRecruitRequest removes a recruit
type DeleteRecruitRequest struct {
	RecruitID string `json:"recruit_id"`
}

// DeleteRecruitResponse confirms the deletion
type DeleteRecruitResponse struct {
	Message string `json:"message"`
}

// GetRecruitStatsRequest evaluates a stored recruit
type GetRecruitStatsRequest struct {
	RecruitID string `json:"recruit_id"`
}

// GetRecruitStatsResponse carries the recruit and its stat values
type GetRecruitStatsResponse struct {
	Recruit *Recruit     `json:"recruit"`
	Stats   []*StatValue `json:"stats"`
}

// SetRankRequest changes one stat rank
type SetRankRequest struct {
	RecruitID string `json:"recruit_id"`
	Stat      string `json:"stat"`
	Rank      int32  `json:"rank"`
}

// SetRankResponse carries the updated recruit
type SetRankResponse struct {
	Recruit *Recruit     `json:"recruit"`
	Stats   []*StatValue `json:"stats"`
}

// SetLevelRequest changes a recruit's level
type SetLevelRequest struct {
	RecruitID string `json:"recruit_id"`
	Level     int32  `json:"level"`
}

// SetLevelResponse carries the updated recruit
type SetLevelResponse struct {
	Recruit *Recruit     `json:"recruit"`
	Stats   []*StatValue `json:"stats"`
}
