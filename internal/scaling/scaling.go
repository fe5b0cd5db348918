// Package scaling converts a (rank, level) pair into a stat value by bilinear
// interpolation over the four corners of a calibration table.
package scaling

import "github.com/dreamshade/recruit-api/internal/entities/stats"

// Evaluate returns the stat value for rank and level. Both are clamped into
// the table's range first. A table with a single rank or level interpolates
// along the other axis only. Corner values are used as given, monotonic or
// not.
func Evaluate(rank, level int, cal *stats.CalibrationTable) float64 {
	maxRank := max(cal.MaxRank, 1)
	maxLevel := max(cal.MaxLevel, 1)

	rank = min(max(rank, 1), maxRank)
	level = min(max(level, 1), maxLevel)

	tL := factor(level, maxLevel)
	minStat := Lerp(cal.Rank1Level1, cal.Rank1MaxLevel, tL)
	maxStat := Lerp(cal.MaxRankLevel1, cal.MaxRankMaxLevel, tL)

	return Lerp(minStat, maxStat, factor(rank, maxRank))
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// factor maps v in [1, top] onto [0, 1]
func factor(v, top int) float64 {
	if top <= 1 {
		return 0
	}
	return float64(v-1) / float64(top-1)
}
