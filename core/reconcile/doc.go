// Package reconcile compares spreadsheet snapshots against the persisted
// registry and classifies every difference.
//
// A scan loads the stored items once, enumerates candidate workbooks in a set
// of directories and diffs each qualifying sheet independently:
//   - New: a sheet row whose key is not stored
//   - Changed: a stored key whose compared fields differ from the sheet row
//   - Missing: a stored key that no row of the sheet mentions
//
// # Architecture
//
// 1. Engine: Scan walks Idle -> Loading -> ScanningFiles -> Diffing and returns
//    an immutable ScanResult. A file that cannot be read is recorded in
//    FileErrors and the scan moves on; only a failure to load the stored index
//    aborts the run.
//
// 2. Adapter: Model-specific logic for loading the stored index, recognising a
//    sheet, extracting row keys and comparing fields.
//
// 3. Publisher: Holds the latest complete ScanResult behind an atomic pointer so
//    readers see either the previous result or the new one, never a mix.
//
// # Equality
//
// ValuesEqual treats "nan" and blanks as empty, compares numerically
// when both sides parse as decimals (17700000 equals 17700000.0) and falls back
// to trimmed string comparison otherwise.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:     scan.NewRegistryAdapter(store),
//	    Directories: []string{".", "data"},
//	    Pattern:     "*.xlsx",
//	    LockPrefix:  "~$",
//	    HeaderRow:   5,
//	}
//
//	result, err := reconcile.Scan(ctx, spec)
//	if err == nil {
//	    publisher.Publish(result)
//	}
package reconcile
