package engine

import "github.com/dreamshade/recruit-api/internal/entities/stats"

// GenerateCharacterOutput is a freshly generated rank vector. Entries may be
// zero; callers clamp before persisting.
type GenerateCharacterOutput struct {
	Ranks       stats.RankVector
	Level       int
	TotalPoints int
}

// EvaluateAllInput holds the ranks to evaluate and the set they align with
type EvaluateAllInput struct {
	Ranks       stats.RankVector
	Level       int
	Calibration *stats.CalibrationTable
	Stats       stats.Set
}
