package registry

import (
	"context"
	"fmt"
	"strings"

	"asset-registry/core/spreadsheet"
	"asset-registry/feature/registry/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IngestStats summarises an import.
type IngestStats struct {
	AssetsAdded    int      `json:"assets_added"`
	InventoryAdded int      `json:"inventory_added"`
	Errors         []string `json:"errors"`
}

// IngestFile reads a workbook and ingests its rows.
func (s *Store) IngestFile(ctx context.Context, path string, opts spreadsheet.Options) (*IngestStats, error) {
	table, err := spreadsheet.ReadFile(path, opts)
	if err != nil {
		return nil, err
	}
	return s.IngestFromSource(ctx, table.Rows)
}

// IngestFromSource imports sheet rows with insert-if-absent semantics.
//
// The first pass adds a definition for the first occurrence of every asset
// name; the second adds a record for every row with a code. Existing names and
// codes are left untouched and only real inserts are counted. A bad row is
// reported in Errors and does not stop the import.
func (s *Store) IngestFromSource(ctx context.Context, rows []spreadsheet.Row) (*IngestStats, error) {
	stats := &IngestStats{Errors: []string{}}

	parsed := make([]*models.InventoryRecord, len(rows))
	parseErrs := make([]error, len(rows))
	for i, row := range rows {
		parsed[i], parseErrs[i] = models.ParseRecord(row.Get)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := make(map[string]struct{})
		for i, row := range rows {
			name := strings.TrimSpace(row.Get(models.ColumnName))
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			if parseErrs[i] != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("Asset '%s': %v", name, parseErrs[i]))
				continue
			}

			def := models.DefinitionFrom(parsed[i])
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&def)
			if res.Error != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("Asset '%s': %v", name, res.Error))
				continue
			}
			if res.RowsAffected > 0 {
				stats.AssetsAdded++
			}
			seen[name] = struct{}{}
		}

		for i, row := range rows {
			code := strings.TrimSpace(row.Get(models.ColumnCode))
			if code == "" {
				continue
			}
			if parseErrs[i] != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("Inventory '%s': %v", code, parseErrs[i]))
				continue
			}

			rec := parsed[i]
			if err := s.prepare(rec); err != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("Inventory '%s': %v", code, err))
				continue
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rec)
			if res.Error != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("Inventory '%s': %v", code, res.Error))
				continue
			}
			if res.RowsAffected > 0 {
				stats.InventoryAdded++
			}
		}
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
