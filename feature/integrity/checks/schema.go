package checks

import (
	"fmt"

	"asset-registry/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing live tables with their models.
type SchemaReport struct {
	Driver  string                         `json:"driver"`
	Matched bool                           `json:"matched"`
	Tables  map[string]database.SchemaDiff `json:"tables"`
	Errors  []string                       `json:"errors"`
}

// CheckSchema compares every model with its live table.
// A table that cannot be inspected is reported in Errors and fails the match.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]database.SchemaDiff, len(models)),
		Errors:  []string{},
	}

	for _, model := range models {
		diff, err := database.CompareModel(db, model)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", diff.Table, err))
			report.Matched = false
			continue
		}
		report.Tables[diff.Table] = diff
		if !diff.OK() {
			report.Matched = false
		}
	}

	return report, nil
}
