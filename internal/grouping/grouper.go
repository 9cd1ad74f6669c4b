package grouping

import (
	"sort"

	"clipstitch/internal/media"
	"clipstitch/internal/sequence"
)

// Group is the set of clips believed to belong to one recording. Key is the
// base name of the recording's primary chapter; Clips holds absolute paths in
// lexical order, which matches the camera's chapter play order even when
// filesystem timestamps are too coarse to order the chapters themselves.
type Group struct {
	Key   string
	Clips []string
}

// Groups scans dir and clusters chapter files into recordings. The result is
// sorted lexically by key. A directory with no multi-chapter recordings
// yields an empty slice, not an error.
func Groups(dir string) ([]Group, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}
	return build(files), nil
}

func build(files []media.File) []Group {
	primary := sequence.Extract(files)
	if len(primary) == 0 {
		return nil
	}

	byTime := make([]media.File, len(files))
	copy(byTime, files)
	sort.Slice(byTime, func(i, j int) bool {
		if byTime[i].ModTime.Equal(byTime[j].ModTime) {
			return byTime[i].Name < byTime[j].Name
		}
		return byTime[i].ModTime.Before(byTime[j].ModTime)
	})

	primaryNames := make(map[string]struct{}, len(primary))
	for _, f := range primary {
		primaryNames[f.Name] = struct{}{}
	}

	// Indices into byTime of the files that are not primary chapters, i.e.
	// second and later chapters of split recordings. byTime is already
	// ordered, so the indices come out sorted.
	var rest []int
	for i, f := range byTime {
		if _, ok := primaryNames[f.Name]; !ok {
			rest = append(rest, i)
		}
	}

	groups := make(map[string]Group)
	keys := make([]string, 0, len(rest))
	for start := 0; start < len(rest); {
		end := start + 1
		for end < len(rest) && rest[end] == rest[end-1]+1 {
			end++
		}
		// Pull in the primary chapter immediately preceding the block in
		// time order. A block starting at index zero has no leading
		// primary; it stays as-is rather than wrapping around.
		lo := rest[start] - 1
		if lo < 0 {
			lo = 0
		}
		slice := byTime[lo : rest[end-1]+1]

		key := slice[0].Base()
		if _, seen := groups[key]; !seen {
			clips := make([]string, 0, len(slice))
			for _, f := range slice {
				clips = append(clips, f.Path)
			}
			sort.Strings(clips)
			groups[key] = Group{Key: key, Clips: clips}
			keys = append(keys, key)
		}
		start = end
	}

	sort.Strings(keys)
	out := make([]Group, 0, len(keys))
	for _, key := range keys {
		out = append(out, groups[key])
	}
	return out
}
