// Package reconcile adapts inventory records to the generic reconciliation engine.
//
// Rows are matched by code. A workbook qualifies when it has at least two of the
// Kode, Nama Aset and Serial Number columns. Every tracked field the workbook
// has a column for is compared with numeric-aware equality; dates are reduced
// to YYYY-MM-DD first.
package reconcile
