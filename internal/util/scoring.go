package util

import "github.com/sahilm/fuzzy"

// RankMatches returns indices into candidates ordered by fuzzy match score,
// at most n of them (all when n <= 0). An empty input keeps every candidate
// in its original order.
func RankMatches(input string, candidates []string, n int) []int {
	if input == "" {
		out := make([]int, len(candidates))
		for i := range candidates {
			out[i] = i
		}
		return clip(out, n)
	}
	matches := fuzzy.Find(input, candidates)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}
	return clip(out, n)
}

func clip(idx []int, n int) []int {
	if n > 0 && len(idx) > n {
		return idx[:n]
	}
	return idx
}
