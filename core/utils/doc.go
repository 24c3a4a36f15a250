// Package utils provides common utility functions for the asset-registry application.
// It includes helpers for turning raw spreadsheet cells and nullable database
// columns into comparable strings and typed values.
package utils
