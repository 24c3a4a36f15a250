package reconcile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	core "asset-registry/core/reconcile"
	"asset-registry/core/spreadsheet"
	"asset-registry/core/utils"
	"asset-registry/feature/registry/models"
	"asset-registry/feature/scan/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	recs []models.InventoryRecord
	err  error
}

func (f *fakeSource) GetAllInventory(ctx context.Context, search string) ([]models.InventoryRecord, error) {
	return f.recs, f.err
}

func stored() []models.InventoryRecord {
	return []models.InventoryRecord{
		{Kode: "A001", NamaAset: "Laptop", SerialNumber: "SN1", User: "budi", LokasiAset: "JKT", Quantity: utils.Int(1), HargaPembelian: utils.Float(1500000), TanggalPO: "2024-01-05"},
		{Kode: "A002", NamaAset: "Laptop", SerialNumber: "SN2", User: "sari", Quantity: utils.Int(1)},
		{Kode: "A003", NamaAset: "Monitor", SerialNumber: "SN3", User: "andi", LokasiAset: "SBY", Quantity: utils.Int(1)},
	}
}

func TestQualifies(t *testing.T) {
	a := reconcile.NewAdapter(&fakeSource{})

	tests := []struct {
		columns []string
		want    bool
	}{
		{[]string{"Kode", "Nama Aset", "Serial Number"}, true},
		{[]string{"Kode", "Serial Number", "Brand"}, true},
		{[]string{"Nama Aset", "Serial Number"}, true},
		{[]string{"Kode", "Brand", "User"}, false},
		{[]string{"kode", "nama aset"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Qualifies(tt.columns), "%v", tt.columns)
	}
}

func TestLoadDBIndex(t *testing.T) {
	a := reconcile.NewAdapter(&fakeSource{recs: stored()})

	index, err := a.LoadDBIndex(context.Background())
	require.NoError(t, err)
	require.Len(t, index, 3)
	assert.Equal(t, "sari", index["A002"].(*models.InventoryRecord).User)

	boom := errors.New("db down")
	_, err = reconcile.NewAdapter(&fakeSource{err: boom}).LoadDBIndex(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCompareFields(t *testing.T) {
	a := reconcile.NewAdapter(&fakeSource{})
	rec := &stored()[0]

	t.Run("Equal after normalisation", func(t *testing.T) {
		row := spreadsheet.Row{
			"Kode":            "A001",
			"User":            " budi ",
			"Quantity":        "1.0",
			"Harga Pembelian": "1500000.00",
			"Tanggal PO":      "45296",
			"Lokasi Aset":     "JKT",
			"Keterangan":      "nan",
		}
		assert.Empty(t, a.CompareFields(rec, row))
	})

	t.Run("Reports each differing column", func(t *testing.T) {
		row := spreadsheet.Row{
			"Kode":        "A001",
			"User":        "rudi",
			"Lokasi Aset": "",
			"Tanggal PO":  "2024-02-01 00:00:00",
		}
		row["Quantity"] = "1"
		row["Harga Pembelian"] = "1500000"
		changes := a.CompareFields(rec, row)
		assert.Equal(t, []core.FieldChange{
			{Column: "Tanggal PO", Sheet: "2024-02-01", Stored: "2024-01-05"},
			{Column: "User", Sheet: "rudi", Stored: "budi"},
			{Column: "Lokasi Aset", Sheet: "", Stored: "JKT"},
		}, changes)
	})

	t.Run("Absent columns read as empty", func(t *testing.T) {
		row := spreadsheet.Row{"Kode": "A001", "Nama Aset": "Laptop"}
		assert.Equal(t, []core.FieldChange{
			{Column: "Tanggal PO", Sheet: "", Stored: "2024-01-05"},
			{Column: "Quantity", Sheet: "", Stored: "1"},
			{Column: "Harga Pembelian", Sheet: "", Stored: "1500000"},
			{Column: "User", Sheet: "", Stored: "budi"},
			{Column: "Lokasi Aset", Sheet: "", Stored: "JKT"},
		}, a.CompareFields(rec, row))
	})

	t.Run("Key and name columns are not compared", func(t *testing.T) {
		row := spreadsheet.Row{
			"Kode": "A001", "Serial Number": "OTHER", "Nama Aset": "Desktop", "Last SO Date": "2020-01-01",
			"Tanggal PO": "2024-01-05", "Quantity": "1", "Harga Pembelian": "1500000", "User": "budi", "Lokasi Aset": "JKT",
		}
		assert.Empty(t, a.CompareFields(rec, row))
	})
}

func TestDescribeMissing(t *testing.T) {
	a := reconcile.NewAdapter(&fakeSource{})
	rec := &stored()[2]

	assert.Equal(t, map[string]string{
		"Kode":          "A003",
		"Nama Aset":     "Monitor",
		"Serial Number": "SN3",
		"User":          "andi",
		"Lokasi Aset":   "SBY",
	}, a.DescribeMissing(rec))
}

func writeSheet(t *testing.T, dir, name string, recs ...models.InventoryRecord) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	rows := make([][]any, len(recs))
	for i := range recs {
		rows[i] = recs[i].Row()
	}
	require.NoError(t, spreadsheet.Write(f, spreadsheet.Sheet{
		Preamble: make([][]string, spreadsheet.DefaultHeaderRow),
		Columns:  models.Columns(),
		Rows:     rows,
	}))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	recs := stored()
	spec := &core.Spec{
		Adapter:     reconcile.NewAdapter(&fakeSource{recs: stored()}),
		Directories: []string{dir},
		Pattern:     "*.xlsx",
		LockPrefix:  "~$",
		HeaderRow:   spreadsheet.DefaultHeaderRow,
	}

	t.Run("Unchanged workbook is ok", func(t *testing.T) {
		writeSheet(t, dir, "gabungan.xlsx", recs...)

		for i := 0; i < 2; i++ {
			result, err := core.Scan(context.Background(), spec)
			require.NoError(t, err)
			assert.Equal(t, core.StatusOK, result.Status)
			assert.Empty(t, result.Files)
			assert.Equal(t, 1, result.FilesScanned)
		}
	})

	t.Run("Differences are classified", func(t *testing.T) {
		edited := stored()
		edited[1].User = "tono"
		extra := models.InventoryRecord{Kode: "A004", NamaAset: "Printer", Quantity: utils.Int(1)}
		writeSheet(t, dir, "gabungan.xlsx", edited[0], edited[1], extra)

		result, err := core.Scan(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, core.StatusWarning, result.Status)
		require.Len(t, result.Files, 1)

		report := result.Files[0]
		assert.Equal(t, "1 new, 1 changed, 1 missing in 'gabungan.xlsx'", report.Message)
		assert.Equal(t, "A004", report.NewRows[0]["Kode"])
		assert.Equal(t, "A002", report.ChangedRows[0].Key)
		assert.Equal(t, "A003", report.MissingRows[0]["Kode"])
	})
}
