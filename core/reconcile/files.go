package reconcile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Candidate is a workbook found during enumeration.
type Candidate struct {
	Path      string
	Directory string
}

// FindFiles lists files matching pattern directly inside each directory.
// Missing directories are ignored, lock files are dropped and a path reachable
// through two directories is returned once. Results are sorted by path.
func FindFiles(directories []string, pattern, lockPrefix string) ([]Candidate, error) {
	if pattern == "" {
		pattern = "*"
	}

	seen := make(map[string]struct{})
	var out []Candidate
	for _, dir := range directories {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid scan pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			if lockPrefix != "" && strings.HasPrefix(filepath.Base(m), lockPrefix) {
				continue
			}
			if fi, err := os.Stat(m); err != nil || fi.IsDir() {
				continue
			}
			abs, err := filepath.Abs(m)
			if err != nil {
				abs = m
			}
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}
			out = append(out, Candidate{Path: m, Directory: dir})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out, nil
}
