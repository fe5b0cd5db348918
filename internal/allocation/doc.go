// Package allocation samples a recruit's rank budget and spreads it across
// the stat set one point at a time.
//
// Points are normally placed in anti-dominance mode, where a stat that is
// already ahead of the baseline (the current minimum or mean) becomes less
// likely to receive more. Rarely a spike starts, and for a few points the bias
// inverts so that high stats are favored, which allows extreme specialists.
//
// All functions are pure apart from the random source they are handed. The
// spike countdown lives only for the duration of one Allocate call.
package allocation
