package spreadsheet

import (
	"fmt"
	"io"
	"unicode/utf8"

	"asset-registry/core/utils"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheetName = "Sheet1"
	maxColumnWidth   = 50
	headerFill       = "#D7E4BC"
)

// Sheet describes a worksheet to be written.
type Sheet struct {
	// Name of the worksheet, defaults to "Sheet1".
	Name string
	// Preamble rows are written verbatim above the header.
	Preamble [][]string
	// Columns is the header row.
	Columns []string
	// Rows hold the cell values in column order.
	Rows [][]any
}

// Write renders the sheet as an xlsx workbook into w.
func Write(w io.Writer, s Sheet) error {
	wb := excelize.NewFile()
	defer wb.Close()

	name := s.Name
	if name == "" {
		name = defaultSheetName
	}
	if name != defaultSheetName {
		if err := wb.SetSheetName(defaultSheetName, name); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	for i, row := range s.Preamble {
		for j, v := range row {
			if v == "" {
				continue
			}
			if err := wb.SetCellValue(name, cell(j+1, i+1), v); err != nil {
				return err
			}
		}
	}

	headerRow := len(s.Preamble) + 1
	if len(s.Columns) > 0 {
		style, err := wb.NewStyle(headerStyle())
		if err != nil {
			return fmt.Errorf("failed to create header style: %w", err)
		}
		for j, col := range s.Columns {
			if err := wb.SetCellValue(name, cell(j+1, headerRow), col); err != nil {
				return err
			}
		}
		if err := wb.SetCellStyle(name, cell(1, headerRow), cell(len(s.Columns), headerRow), style); err != nil {
			return err
		}
	}

	for i := range s.Rows {
		row := s.Rows[i]
		if err := wb.SetSheetRow(name, cell(1, headerRow+1+i), &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if len(s.Columns) > 0 {
		ref := cell(1, headerRow) + ":" + cell(len(s.Columns), headerRow+len(s.Rows))
		if err := wb.AutoFilter(name, ref, nil); err != nil {
			return fmt.Errorf("failed to set autofilter: %w", err)
		}
	}

	for j, width := range columnWidths(s.Columns, s.Rows) {
		col, _ := excelize.ColumnNumberToName(j + 1)
		if err := wb.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}

	_, err := wb.WriteTo(w)
	return err
}

func headerStyle() *excelize.Style {
	border := func(side string) excelize.Border {
		return excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border:    []excelize.Border{border("left"), border("top"), border("right"), border("bottom")},
	}
}

// columnWidths sizes each column to its longest value plus padding, capped.
func columnWidths(columns []string, rows [][]any) []float64 {
	widths := make([]float64, len(columns))
	for j, col := range columns {
		longest := utf8.RuneCountInString(col)
		for _, row := range rows {
			if j >= len(row) {
				continue
			}
			if n := utf8.RuneCountInString(utils.ToString(row[j])); n > longest {
				longest = n
			}
		}
		width := longest + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		widths[j] = float64(width)
	}
	return widths
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
