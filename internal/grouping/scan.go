package grouping

import (
	"fmt"
	"os"
	"path/filepath"

	"clipstitch/internal/media"
)

// Scan lists dir and returns every regular file matching the camera naming
// convention. Subdirectories, foreign extensions, and unparsable names are
// skipped silently; only the listing itself can fail.
func Scan(dir string) ([]media.File, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve scan path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}

	files := make([]media.File, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		key, ok := media.ParseName(name)
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// The entry vanished between listing and stat; treat it like
			// any other malformed entry.
			continue
		}
		files = append(files, media.File{
			Name:    name,
			Path:    filepath.Join(abs, name),
			Key:     key,
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}
