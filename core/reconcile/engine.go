package reconcile

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"asset-registry/core/spreadsheet"
)

// now is swapped in tests.
var now = time.Now

// Scan runs one full reconciliation and returns its result.
// The stored index is loaded once and shared by every file. A file that fails
// to parse is recorded and skipped; an index load failure or a cancelled
// context aborts the run.
func Scan(ctx context.Context, spec *Spec) (*ScanResult, error) {
	started := now()

	// Loading
	dbIndex, err := spec.Adapter.LoadDBIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s index: %w", spec.Adapter.Name(), err)
	}

	// ScanningFiles
	candidates, err := FindFiles(spec.Directories, spec.Pattern, spec.LockPrefix)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		RunID:      spec.RunID,
		Files:      []FileReport{},
		FileErrors: []FileError{},
	}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report, qualified, err := scanFile(c, spec, dbIndex)
		if err != nil {
			result.FileErrors = append(result.FileErrors, FileError{File: c.Path, Error: err.Error()})
			continue
		}
		if !qualified {
			result.FilesSkipped++
			continue
		}
		result.FilesScanned++

		if report.HasDifferences() {
			result.Files = append(result.Files, report)
		}
	}

	result.Status = StatusOK
	if len(result.Files) > 0 {
		result.Status = StatusWarning
	}
	finished := now()
	result.LastScan = finished.UTC()
	result.Duration = finished.Sub(started)

	return result, nil
}

// DiffTable classifies every row of one sheet against the stored index.
// Only the first row for a given key is considered.
func DiffTable(table *spreadsheet.Table, dbIndex map[string]DBItem, adapter Adapter) FileReport {
	report := FileReport{
		TotalRows:   len(table.Rows),
		NewRows:     []map[string]string{},
		ChangedRows: []ChangedRow{},
		MissingRows: []map[string]string{},
	}

	seen := make(map[string]struct{}, len(table.Rows))
	for _, row := range table.Rows {
		key := adapter.ExtractSheetKey(row)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		item, stored := dbIndex[key]
		if !stored {
			report.NewRows = append(report.NewRows, captureRow(table.Columns, row))
			continue
		}
		if changes := adapter.CompareFields(item, row); len(changes) > 0 {
			report.ChangedRows = append(report.ChangedRows, ChangedRow{Key: key, Changes: changes})
		}
	}

	missing := make([]string, 0)
	for key := range dbIndex {
		if _, ok := seen[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	for _, key := range missing {
		report.MissingRows = append(report.MissingRows, adapter.DescribeMissing(dbIndex[key]))
	}

	return report
}

// captureRow copies every column of a sheet row, absent cells as "".
func captureRow(columns []string, row spreadsheet.Row) map[string]string {
	out := make(map[string]string, len(columns))
	for _, col := range columns {
		out[col] = row.Get(col)
	}
	return out
}

// scanFile reads and diffs one workbook. A panic while handling the file is
// returned as its error so the remaining files are still scanned.
func scanFile(c Candidate, spec *Spec, dbIndex map[string]DBItem) (report FileReport, qualified bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			report, qualified = FileReport{}, false
			err = fmt.Errorf("panic while processing %s: %v", filepath.Base(c.Path), r)
		}
	}()

	table, err := spreadsheet.ReadFile(c.Path, spreadsheet.Options{HeaderRow: spec.HeaderRow, Sheet: spec.Sheet})
	if err != nil {
		return report, false, err
	}
	if !spec.Adapter.Qualifies(table.Columns) {
		return report, false, nil
	}

	// Diffing
	report = DiffTable(table, dbIndex, spec.Adapter)
	report.File = c.Path
	report.Filename = filepath.Base(c.Path)
	report.Directory = c.Directory
	report.summarize()

	return report, true, nil
}
