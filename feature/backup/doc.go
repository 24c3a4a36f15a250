// Package backup keeps dated copies of the registry database.
//
// A run writes backups/assets_auto_YYYYMMDD_HHMMSS.db with VACUUM INTO, uploads
// it under the backups/ prefix when object storage is enabled, then deletes
// local files and uploaded objects older than the retention period (seven days
// by default). The daily run is scheduled at 01:00.
//
// Only the sqlite driver is supported; MySQL deployments are expected to use
// the server's own tooling.
package backup
