package reconcile

import (
	"fmt"
	"time"
)

// DBItem represents a stored entity.
// Adapters define the concrete type.
type DBItem any

// Status is the overall outcome of a scan.
type Status string

const (
	// StatusOK means no scanned file differs from the registry.
	StatusOK Status = "ok"
	// StatusWarning means at least one file reported differences.
	StatusWarning Status = "warning"
)

// FieldChange is a single differing field of a changed row.
type FieldChange struct {
	// Column is the spreadsheet header of the field.
	Column string `json:"column"`

	// Sheet is the value found in the spreadsheet.
	Sheet string `json:"sheet"`

	// Stored is the value held by the registry.
	Stored string `json:"stored"`
}

// ChangedRow is a stored entity whose sheet row differs in at least one field.
type ChangedRow struct {
	Key     string        `json:"key"`
	Changes []FieldChange `json:"changes"`
}

// Flatten renders the row as a single record for display, with each changed
// column twice: "<Column> (Excel)" and "<Column> (DB)".
func (c ChangedRow) Flatten(keyColumn string) map[string]string {
	out := make(map[string]string, 1+2*len(c.Changes))
	out[keyColumn] = c.Key
	for _, ch := range c.Changes {
		out[ch.Column+" (Excel)"] = ch.Sheet
		out[ch.Column+" (DB)"] = ch.Stored
	}
	return out
}

// FileReport is the diff of one spreadsheet against the registry.
type FileReport struct {
	// File is the path of the workbook as found during enumeration.
	File string `json:"file"`

	// Filename is the base name of the workbook.
	Filename string `json:"filename"`

	// Directory is the scan directory the workbook was found in.
	Directory string `json:"directory"`

	// TotalRows counts the non-empty data rows of the sheet.
	TotalRows int `json:"total_rows"`

	// NewRows holds complete sheet rows whose key is not stored.
	NewRows []map[string]string `json:"new_rows"`

	// ChangedRows holds stored keys whose fields differ.
	ChangedRows []ChangedRow `json:"changed_rows"`

	// MissingRows summarises stored items absent from the sheet.
	MissingRows []map[string]string `json:"missing_rows"`

	// Message is a one-line human summary.
	Message string `json:"message"`
}

// HasDifferences reports whether the file has anything to show.
func (r *FileReport) HasDifferences() bool {
	return len(r.NewRows) > 0 || len(r.ChangedRows) > 0 || len(r.MissingRows) > 0
}

func (r *FileReport) summarize() {
	r.Message = fmt.Sprintf("%d new, %d changed, %d missing in '%s'",
		len(r.NewRows), len(r.ChangedRows), len(r.MissingRows), r.Filename)
}

// FileError records a workbook that could not be read.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// ScanResult is the immutable outcome of one scan run.
type ScanResult struct {
	// RunID identifies the run in logs and mirrors.
	RunID string `json:"run_id"`

	// Files lists only the workbooks with differences, sorted by path.
	Files []FileReport `json:"files"`

	Status   Status        `json:"status"`
	LastScan time.Time     `json:"last_scan"`
	Duration time.Duration `json:"duration"`

	// FilesScanned counts workbooks that qualified and were diffed.
	FilesScanned int `json:"files_scanned"`

	// FilesSkipped counts workbooks that did not look like an asset export.
	FilesSkipped int `json:"files_skipped"`

	// FileErrors lists workbooks that failed to parse.
	FileErrors []FileError `json:"file_errors"`
}

// Spec defines the configuration for a scan.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// Directories are searched non-recursively, in order.
	Directories []string

	// Pattern is the glob matched against file names (e.g. "*.xlsx").
	Pattern string

	// LockPrefix marks editor lock files that must be ignored (e.g. "~$").
	LockPrefix string

	// HeaderRow is the zero-based row holding the column headers.
	HeaderRow int

	// Sheet selects the worksheet. Empty reads the first one.
	Sheet string

	// RunID is stamped onto the result. Empty leaves it blank.
	RunID string
}
