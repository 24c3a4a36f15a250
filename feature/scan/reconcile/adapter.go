package reconcile

import (
	"context"

	"asset-registry/core/reconcile"
	"asset-registry/core/spreadsheet"
	"asset-registry/core/utils"
	"asset-registry/feature/registry/models"
)

// signatureColumns identify an inventory workbook. Two of three are enough.
var signatureColumns = []string{models.ColumnCode, models.ColumnName, models.ColumnSerial}

const minSignatureColumns = 2

// Source lists the stored inventory. *registry.Store satisfies it.
type Source interface {
	GetAllInventory(ctx context.Context, search string) ([]models.InventoryRecord, error)
}

// InventoryAdapter implements the reconcile.Adapter interface for inventory records.
type InventoryAdapter struct {
	source Source
}

// NewAdapter creates a new inventory adapter.
func NewAdapter(source Source) *InventoryAdapter {
	return &InventoryAdapter{source: source}
}

// Name returns the unique name of this adapter.
func (a *InventoryAdapter) Name() string {
	return "inventory"
}

// LoadDBIndex loads every stored record keyed by code.
func (a *InventoryAdapter) LoadDBIndex(ctx context.Context) (map[string]reconcile.DBItem, error) {
	recs, err := a.source.GetAllInventory(ctx, "")
	if err != nil {
		return nil, err
	}

	index := make(map[string]reconcile.DBItem, len(recs))
	for i := range recs {
		index[recs[i].Kode] = &recs[i]
	}
	return index, nil
}

// Qualifies reports whether enough signature columns are present.
func (a *InventoryAdapter) Qualifies(columns []string) bool {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	n := 0
	for _, c := range signatureColumns {
		if _, ok := present[c]; ok {
			n++
		}
	}
	return n >= minSignatureColumns
}

// ExtractSheetKey returns the cleaned code of a row.
func (a *InventoryAdapter) ExtractSheetKey(row spreadsheet.Row) string {
	return utils.Clean(row.Get(models.ColumnCode))
}

// CompareFields compares every tracked field. A column the sheet lacks reads
// as empty, so stored values it cannot confirm are reported.
func (a *InventoryAdapter) CompareFields(item reconcile.DBItem, row spreadsheet.Row) []reconcile.FieldChange {
	rec := item.(*models.InventoryRecord)

	var changes []reconcile.FieldChange
	for _, f := range models.ComparedFields() {
		raw := row.Get(f.Column)

		sheet := utils.Clean(raw)
		if f.Kind == models.KindDate {
			sheet = models.NormalizeDate(raw)
		}
		stored := f.Get(rec)

		if !reconcile.ValuesEqual(sheet, stored) {
			changes = append(changes, reconcile.FieldChange{Column: f.Column, Sheet: sheet, Stored: stored})
		}
	}
	return changes
}

// DescribeMissing summarises a stored record for the missing list.
func (a *InventoryAdapter) DescribeMissing(item reconcile.DBItem) map[string]string {
	rec := item.(*models.InventoryRecord)

	out := make(map[string]string, len(models.MissingSummaryColumns))
	for _, col := range models.MissingSummaryColumns {
		if f, ok := models.FieldByColumn(col); ok {
			out[col] = f.Get(rec)
		}
	}
	return out
}
