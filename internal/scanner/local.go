package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local lists the files of one directory, non-recursively. Subdirectories
// are skipped: a sequence never spans directories.
type Local struct {
	dir string
}

// Compile-time check that Local implements Lister.
var _ Lister = (*Local)(nil)

// NewLocal creates a lister over dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// List returns the directory's file paths in directory order.
func (l *Local) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", l.dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		paths = append(paths, filepath.Join(l.dir, entry.Name()))
	}
	return paths, nil
}

// Close is a no-op for local listings.
func (l *Local) Close() error { return nil }
