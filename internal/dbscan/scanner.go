// Package dbscan discovers database handle names in a scaffolded project.
//
// Handles are top-level constants following the `export const <name>Db = ...`
// convention inside src/databases. The scanner re-reads the folder on every
// call so freshly written connection files are visible to the very next
// check without any cache invalidation.
package dbscan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// databasesDir is the scanned subtree, relative to the project root.
const databasesDir = "src/databases"

// dbConstRe matches exported database handle declarations.
var dbConstRe = regexp.MustCompile(`(?m)^\s*export\s+const\s+(\w+Db)\s*=`)

// Scanner walks the database folder and extracts handle names.
type Scanner struct {
	logger *slog.Logger
}

// New creates a scanner with a discarded logger.
func New() *Scanner {
	return &Scanner{logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the structured logger.
func (s *Scanner) WithLogger(logger *slog.Logger) *Scanner {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// DatabaseNames returns the sorted, de-duplicated handle names found under
// <projectRoot>/src/databases. A missing folder yields an empty result.
// Filesystem errors degrade: whatever was readable is still returned,
// alongside the first error encountered.
func (s *Scanner) DatabaseNames(projectRoot string) ([]string, error) {
	root := filepath.Join(projectRoot, filepath.FromSlash(databasesDir))
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	seen := make(map[string]bool)
	var firstErr error

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("database scan skipping entry", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".ts") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("database scan skipping file", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			return nil
		}
		for _, m := range dbConstRe.FindAllSubmatch(content, -1) {
			seen[string(m[1])] = true
		}
		return nil
	})
	if walkErr != nil && firstErr == nil {
		firstErr = walkErr
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	if firstErr != nil {
		return names, fmt.Errorf("scan %s: %w", root, firstErr)
	}
	return names, nil
}
