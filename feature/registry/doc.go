// Package registry implements the asset catalog and inventory registry.
//
// It owns the two persisted entities (asset definitions and inventory records)
// and every workflow that writes them.
//
// # Store
//
// Store is the only component that touches the registry tables. Lookups that
// find nothing return nil without error. Inserts fail with a DuplicateKeyError
// when the name or code is taken; the creation timestamp and the quantity of
// one are always applied by the store, never taken from the caller.
//
// # Import
//
// IngestFromSource loads spreadsheet rows with insert-if-absent semantics:
// the first row of each asset name registers its definition, every row with a
// code registers an item, and nothing that already exists is overwritten.
// Failures are collected per row as "Asset '<name>': ..." or
// "Inventory '<code>': ..." and never abort the import.
//
// # Bulk Creation
//
// BulkCreator turns a base code, an optional base serial and a quantity into a
// run of items, incrementing the trailing number of each. Missing field values
// come from a DefaultChain: the asset's most recent item, then its definition,
// then fixed literals. Each insert commits on its own, so a conflict part way
// leaves the earlier items in place and is reported as a BulkInsertError.
//
// # Export
//
// Exporter writes the inventory in the layout the import reads, reproducing
// the template workbook's title rows above a styled header.
//
// # HTTP Endpoints
//
//   - GET /assets, GET /assets/search?q=, GET /assets/:name, POST /assets
//   - GET /inventory?q=, GET /inventory/:code, POST /inventory, DELETE /inventory/:code
//   - POST /inventory/bulk, GET /inventory/suggest?asset=, GET /inventory/export
//   - POST /import
package registry
