package tracker

import "sort"

// SelectWeakest orders stats by ascending success ratio, breaking ties by
// character, and returns at most n characters. Stats without attempts are
// ignored.
func SelectWeakest(stats []Stat, n int) []string {
	out := []string{}
	if n <= 0 {
		return out
	}
	candidates := make([]Stat, 0, len(stats))
	for _, s := range stats {
		if s.Attempts > 0 {
			candidates = append(candidates, s)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		// Compare successes_i/attempts_i with successes_j/attempts_j exactly.
		li := candidates[i].Successes * candidates[j].Attempts
		lj := candidates[j].Successes * candidates[i].Attempts
		if li == lj {
			return candidates[i].Character < candidates[j].Character
		}
		return li < lj
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	for _, c := range candidates[:n] {
		out = append(out, c.Character)
	}
	return out
}
