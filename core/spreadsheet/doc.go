// Package spreadsheet reads and writes the tabular exports exchanged with the
// external inventory process.
//
// The exports carry a fixed number of non-data rows (a title block) above the
// real column header. Read skips those rows, trims the header names and
// returns each data row as a column-keyed map of raw cell text. Write produces
// the same layout: optional preamble rows, a styled header row, the data rows,
// an autofilter over the table and auto-sized columns.
//
// It wraps github.com/xuri/excelize/v2.
//
// # Usage
//
//	table, err := spreadsheet.ReadFile("data/gabungan.xlsx", spreadsheet.Options{HeaderRow: 5})
//	for _, row := range table.Rows {
//	    fmt.Println(row.Get("Kode"))
//	}
package spreadsheet
