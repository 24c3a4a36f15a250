// Package integrity provides infrastructure health checks for the registry.
//
// Unlike the scan feature, which compares spreadsheet content with stored
// inventory, this package validates what the registry runs on.
//
// # Checks Provided
//
//   - Structure: the backup and export folders exist in the storage bucket.
//   - Server: the live registry tables carry every column the models expect.
//   - Files: the import source, the export template and the scan directories exist locally.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs schema check.
//   - GET /integrity/files : Runs local files check.
//
// When object storage is disabled the structure check reports "disabled".
package integrity
