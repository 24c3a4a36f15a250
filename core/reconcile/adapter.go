package reconcile

import (
	"context"

	"asset-registry/core/spreadsheet"
)

// Adapter defines the model-specific half of a reconciliation.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "inventory").
	Name() string

	// LoadDBIndex loads every stored item keyed by entity key.
	// Implementations should read a fresh snapshot on each call.
	LoadDBIndex(ctx context.Context) (map[string]DBItem, error)

	// Qualifies reports whether a sheet with these trimmed headers is one this
	// adapter understands. Sheets that do not qualify are skipped, not failed.
	Qualifies(columns []string) bool

	// ExtractSheetKey returns the entity key of a sheet row, or "" to skip the row.
	ExtractSheetKey(row spreadsheet.Row) string

	// CompareFields returns every compared field that differs between the
	// stored item and the sheet row. Both are guaranteed to be present.
	CompareFields(item DBItem, row spreadsheet.Row) []FieldChange

	// DescribeMissing summarises a stored item that the sheet no longer lists.
	DescribeMissing(item DBItem) map[string]string
}
