package spreadsheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "asset-registry/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func preamble() [][]string {
	return [][]string{
		{"PT Example"},
		{"Asset Register"},
		{},
		{"Periode", "2024"},
		{},
	}
}

func TestWriteThenRead(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Sheet{
		Preamble: preamble(),
		Columns:  []string{"Kode", "Nama Aset", "Harga Pembelian"},
		Rows: [][]any{
			{"A001", "Laptop", 17700000.0},
			{"A002", "Laptop", nil},
		},
	})
	require.NoError(t, err)

	table, err := Read(bytes.NewReader(buf.Bytes()), Options{HeaderRow: DefaultHeaderRow})
	require.NoError(t, err)

	assert.Equal(t, []string{"Kode", "Nama Aset", "Harga Pembelian"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "A001", table.Rows[0].Get("Kode"))
	assert.Equal(t, "17700000", table.Rows[0].Get("Harga Pembelian"))
	assert.Equal(t, "", table.Rows[1].Get("Harga Pembelian"))
	assert.True(t, table.Has("Nama Aset"))
	assert.False(t, table.Has("Serial Number"))
}

func TestRead_TrimsHeadersAndSkipsBlankRows(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()
	require.NoError(t, wb.SetSheetRow("Sheet1", "A1", &[]any{"  Kode ", "", "Nama Aset"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A2", &[]any{"A001", "x", "Laptop"}))
	require.NoError(t, wb.SetSheetRow("Sheet1", "A4", &[]any{"A002"}))

	var buf bytes.Buffer
	_, err := wb.WriteTo(&buf)
	require.NoError(t, err)

	table, err := Read(&buf, Options{HeaderRow: 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"Kode", "Unnamed: 1", "Nama Aset"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Laptop", table.Rows[0].Get("Nama Aset"))
	assert.Equal(t, "A002", table.Rows[1].Get("Kode"))
	assert.Equal(t, "", table.Rows[1].Get("Nama Aset"))
}

func TestRead_Errors(t *testing.T) {
	t.Run("not a workbook", func(t *testing.T) {
		_, err := Read(strings.NewReader("kode,nama\n"), Options{})
		assert.ErrorIs(t, err, apperrors.ErrMalformedFile)
	})

	t.Run("header row beyond sheet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, Sheet{Columns: []string{"Kode"}}))

		_, err := Read(&buf, Options{HeaderRow: DefaultHeaderRow})
		assert.ErrorIs(t, err, apperrors.ErrMalformedFile)
	})

	t.Run("file path is attached", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

		_, err := ReadFile(path, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.xlsx")
	})
}

func TestReadPreamble(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing template", func(t *testing.T) {
		rows, err := ReadPreamble(filepath.Join(dir, "none.xlsx"), 5)
		require.NoError(t, err)
		assert.Nil(t, rows)
	})

	t.Run("copies leading rows", func(t *testing.T) {
		path := filepath.Join(dir, "template.xlsx")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, Write(f, Sheet{Preamble: preamble(), Columns: []string{"Kode"}}))
		require.NoError(t, f.Close())

		rows, err := ReadPreamble(path, 5)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, []string{"PT Example"}, rows[0])
		assert.Equal(t, []string{"Periode", "2024"}, rows[3])
	})
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths(
		[]string{"Kode", "Keterangan"},
		[][]any{{"A0001", strings.Repeat("x", 80)}},
	)
	assert.Equal(t, []float64{7, 50}, widths)
}

func TestSerialToDate(t *testing.T) {
	got, ok := SerialToDate("45296")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-05", got)

	_, ok = SerialToDate("2024-01-05")
	assert.False(t, ok)
}
