// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to open the registry database. The default
// driver is sqlite (a single file, opened in WAL mode with a busy timeout so a
// background scan can read while interactive requests write). MySQL is
// available for shared deployments.
//
// # Connect
//
// Connect builds the dialector from Config and applies the shared gorm
// settings: silent logging and translated errors, so that a uniqueness
// violation is reported as gorm.ErrDuplicatedKey regardless of driver. Open
// applies the same settings to a caller-supplied dialector, which is how tests
// run the store over sqlmock.
//
// # Schema Inspection
//
// GetTableColumns reads the live column list of a table (PRAGMA table_info on
// sqlite, SHOW COLUMNS on MySQL). CompareModel checks a gorm model against the
// live table and is used by the integrity feature.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	diff, err := database.CompareModel(db, &models.InventoryRecord{})
package database
