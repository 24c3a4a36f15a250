// Package config provides configuration management for the asset registry.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section, so every key can be overridden through SECTION_KEY variables
// (for example SCAN_INTERVAL=30m or DATABASE_DRIVER=mysql).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and shutdown timeout
//   - Database: sqlite file or MySQL connection details
//   - Storage: MinIO credentials and bucket for backups and exports
//   - Log: logging level and format
//   - Cache: optional Redis mirror of the latest scan
//   - Scan: scanned directories, file pattern and interval
//   - Backup: cron schedule, directory and retention
//   - Spreadsheet: import source, export template and sheet layout
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Scan.Interval)
package config
