// Package models defines the persisted registry entities and the field table
// that maps them to spreadsheet columns.
//
// AssetDefinition is the master catalog entry, keyed by asset name.
// InventoryRecord is one serialized item, keyed by its code and pointing at
// its definition by name (no cascading).
//
// Fields is the single ordered table of the thirty spreadsheet columns. Import
// parses rows through it, export renders rows through it, and the reconciler
// uses the entries marked Compare to detect changed rows.
package models
