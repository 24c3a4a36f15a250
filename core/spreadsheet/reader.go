package spreadsheet

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "asset-registry/core/errors"

	"github.com/xuri/excelize/v2"
)

// DefaultHeaderRow is the number of title rows above the column header.
const DefaultHeaderRow = 5

// Options controls how a workbook is read.
type Options struct {
	// HeaderRow is the zero-based index of the column header row.
	HeaderRow int
	// Sheet is the worksheet to read. Empty selects the first sheet.
	Sheet string
}

// Row is a single data row keyed by trimmed column name.
type Row map[string]string

// Get returns the raw value for a column, or "" if the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Table is a parsed worksheet.
type Table struct {
	// Columns are the trimmed header names in sheet order.
	Columns []string
	// Rows are the non-empty data rows below the header.
	Rows []Row
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// ReadFile opens and parses the workbook at path.
func ReadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := Read(f, opts)
	if err != nil {
		var pe *apperrors.ParseError
		if apperrors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	return table, nil
}

// Read parses a workbook from r.
func Read(r io.Reader, opts Options) (*Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewParseError("workbook", err)
	}
	defer wb.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParseError("workbook", fmt.Errorf("no worksheets"))
		}
		sheet = sheets[0]
	}

	// Raw values keep numbers free of display formatting such as thousands separators
	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParseError("workbook", err)
	}
	if len(rows) <= opts.HeaderRow {
		return nil, apperrors.NewParseError("workbook", fmt.Errorf("header row %d not found (sheet has %d rows)", opts.HeaderRow, len(rows)))
	}

	header := rows[opts.HeaderRow]
	columns := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		columns[i] = name
	}

	table := &Table{Columns: columns}
	for _, raw := range rows[opts.HeaderRow+1:] {
		if isBlank(raw) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if _, seen := row[col]; seen {
				continue
			}
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// ReadPreamble returns the first n rows of the first sheet of a template workbook.
// A missing template yields nil without error.
func ReadPreamble(path string, n int) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParseError(path, err)
	}

	preamble := make([][]string, n)
	for i := 0; i < n && i < len(rows); i++ {
		preamble[i] = rows[i]
	}
	return preamble, nil
}

// SerialToDate converts an Excel date serial such as "45296" to "2024-01-05".
func SerialToDate(s string) (string, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

func isBlank(raw []string) bool {
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
