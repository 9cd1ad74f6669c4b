package media

import (
	"path/filepath"
	"strings"
	"time"
)

// File is one clip observed during a directory scan. It is read once and
// never mutated; grouping works on copies of the scan snapshot.
type File struct {
	Name    string // base name within the scanned directory
	Path    string // absolute path
	Key     int    // sequence key parsed from the digit field
	ModTime time.Time
}

// Base returns the file name without its extension. Merge groups are keyed
// by the base name of their primary chapter.
func (f File) Base() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}
