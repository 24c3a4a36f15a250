package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields no columns on sqlite.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string `gorm:"column:dflt_value"`
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			info := ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Default: col.DefaultVal,
				Null:    "YES",
			}
			if col.Notnull == 1 {
				info.Null = "NO"
			}
			if col.Pk > 0 {
				info.Key = "PRI"
			}
			columns = append(columns, info)
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// SchemaDiff lists how a table deviates from the columns a model expects.
type SchemaDiff struct {
	Table   string   `json:"table"`
	Exists  bool     `json:"exists"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// OK reports whether the table matches the model.
func (d SchemaDiff) OK() bool {
	return d.Exists && len(d.Missing) == 0
}

// CompareModel checks the live table of a gorm model against its fields.
// Extra columns are reported but do not fail the comparison.
func CompareModel(db *gorm.DB, model any) (SchemaDiff, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return SchemaDiff{}, fmt.Errorf("failed to parse model: %w", err)
	}
	diff := SchemaDiff{Table: stmt.Schema.Table, Missing: []string{}, Extra: []string{}}

	columns, err := GetTableColumns(db, diff.Table)
	if err != nil {
		return diff, err
	}
	if len(columns) == 0 {
		diff.Missing = append(diff.Missing, stmt.Schema.DBNames...)
		return diff, nil
	}
	diff.Exists = true

	live := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		live[c.Field] = struct{}{}
	}
	expected := make(map[string]struct{}, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		expected[strings.ToLower(name)] = struct{}{}
		if _, ok := live[strings.ToLower(name)]; !ok {
			diff.Missing = append(diff.Missing, name)
		}
	}
	for _, c := range columns {
		if _, ok := expected[c.Field]; !ok {
			diff.Extra = append(diff.Extra, c.Field)
		}
	}
	return diff, nil
}
