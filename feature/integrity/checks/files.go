package checks

import (
	"os"
)

// FileReport lists the local paths the registry reads from.
type FileReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// CheckFiles reports which of the given files or directories exist.
// Empty paths are ignored.
func CheckFiles(paths []string) FileReport {
	report := FileReport{Present: []string{}, Missing: []string{}}
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}

		if _, err := os.Stat(p); err != nil {
			report.Missing = append(report.Missing, p)
		} else {
			report.Present = append(report.Present, p)
		}
	}
	return report
}
