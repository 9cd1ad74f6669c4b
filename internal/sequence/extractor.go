package sequence

import (
	"sort"

	"clipstitch/internal/media"
)

// Extract returns the primary-chapter files of the given clip set: the
// longest run of strictly consecutive sequence keys, in ascending key order.
// When several runs tie on length the one with the smallest starting key
// wins, since it covers the earliest recordings. A nil or empty input yields
// an empty result.
func Extract(files []media.File) []media.File {
	if len(files) == 0 {
		return nil
	}

	sorted := make([]media.File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	// Any gap other than exactly 1 ends a run; duplicates count as a gap of
	// zero and split runs rather than erroring.
	best := 0
	bestLen := 0
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Key == sorted[i-1].Key+1 {
			continue
		}
		if i-start > bestLen {
			best = start
			bestLen = i - start
		}
		start = i
	}

	run := make([]media.File, bestLen)
	copy(run, sorted[best:best+bestLen])
	return run
}
