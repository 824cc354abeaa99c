package topsis

import "sort"

// Ranks assigns a dense ranking to the given scores: rank 1 goes to the
// highest score, rank len(scores) to the lowest, with no gaps or duplicates.
// The returned slice is positionally aligned with scores, so ranks[i] is the
// rank of row i in its original table position.
//
// Ties are broken deterministically by original row order: when two rows
// carry the same score, the one that appeared first in the input keeps the
// better rank. The stable sort makes repeated runs over identical input
// produce identical rankings.
func Ranks(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}
