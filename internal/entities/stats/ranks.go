package stats

// RankVector holds one allocated rank per stat, index aligned with a Set.
// Entries produced by allocation are >= 0; a 0 is a valid allocation result
// but never a valid persisted rank.
type RankVector []int

// Sum returns the total number of points in the vector
func (r RankVector) Sum() int {
	total := 0
	for _, v := range r {
		total += v
	}
	return total
}

// Clone returns an independent copy
func (r RankVector) Clone() RankVector {
	if r == nil {
		return nil
	}
	out := make(RankVector, len(r))
	copy(out, r)
	return out
}

// Min returns the smallest entry, or 0 for an empty vector
func (r RankVector) Min() int {
	if len(r) == 0 {
		return 0
	}
	m := r[0]
	for _, v := range r[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Mean returns the real-valued average, or 0 for an empty vector
func (r RankVector) Mean() float64 {
	if len(r) == 0 {
		return 0
	}
	return float64(r.Sum()) / float64(len(r))
}

// ClampForPersistence returns a copy with every entry in [1, maxRank].
// A maxRank below 1 only applies the lower bound.
func (r RankVector) ClampForPersistence(maxRank int) RankVector {
	out := r.Clone()
	for i, v := range out {
		if v < 1 {
			v = 1
		}
		if maxRank >= 1 && v > maxRank {
			v = maxRank
		}
		out[i] = v
	}
	return out
}

// ByStat pairs each entry with its stat. Entries beyond the set are dropped
// and stats beyond the vector are omitted.
func (r RankVector) ByStat(set Set) map[StatType]int {
	out := make(map[StatType]int, len(set.Types))
	for i, st := range set.Types {
		if i >= len(r) {
			break
		}
		out[st] = r[i]
	}
	return out
}
