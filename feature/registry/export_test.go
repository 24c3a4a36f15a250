package registry

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"asset-registry/core/spreadsheet"
	"asset-registry/feature/registry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.xlsx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	err = spreadsheet.Write(f, spreadsheet.Sheet{
		Name:     "Sheet1",
		Preamble: [][]string{{"PT CONTOH"}, {"Daftar Aset"}, {}, {"Periode", "2024"}, {}},
		Columns:  models.Columns(),
	})
	require.NoError(t, err)
	return path
}

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.InsertInventory(ctx, item("B002", "Monitor")))
	laptop := item("A001", "Laptop")
	laptop.User = "budi"
	laptop.Kerahasiaan = floatPtr(2)
	require.NoError(t, s.InsertInventory(ctx, laptop))

	t.Run("With template", func(t *testing.T) {
		cfg := Config{Template: writeTemplate(t), Sheet: "Sheet1", HeaderRow: 5}
		var buf bytes.Buffer

		n, err := NewExporter(s, cfg, zap.NewNop()).Export(ctx, &buf, "")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		out := filepath.Join(t.TempDir(), "out.xlsx")
		require.NoError(t, os.WriteFile(out, buf.Bytes(), 0o644))

		preamble, err := spreadsheet.ReadPreamble(out, 5)
		require.NoError(t, err)
		require.Len(t, preamble, 5)
		assert.Equal(t, "PT CONTOH", preamble[0][0])
		assert.Equal(t, []string{"Periode", "2024"}, preamble[3])

		table, err := spreadsheet.Read(bytes.NewReader(buf.Bytes()), spreadsheet.Options{HeaderRow: 5})
		require.NoError(t, err)
		assert.Equal(t, models.Columns(), table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "A001", table.Rows[0].Get("Kode"))
		assert.Equal(t, "budi", table.Rows[0].Get("User"))
		assert.Equal(t, "2", table.Rows[0].Get("Kerahasiaan"))
		assert.Equal(t, "B002", table.Rows[1].Get("Kode"))
	})

	t.Run("Without template", func(t *testing.T) {
		cfg := Config{Template: filepath.Join(t.TempDir(), "missing.xlsx"), Sheet: "Sheet1", HeaderRow: 5}
		var buf bytes.Buffer

		n, err := NewExporter(s, cfg, zap.NewNop()).Export(ctx, &buf, "monitor")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		table, err := spreadsheet.Read(bytes.NewReader(buf.Bytes()), spreadsheet.Options{HeaderRow: 0})
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "B002", table.Rows[0].Get("Kode"))
	})
}

func TestExporter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	rec := item("BTPN/0124/4.0055 NB", "Laptop")
	rec.SerialNumber = "0124"
	rec.HargaPembelian = floatPtr(15000000)
	rec.TanggalPO = "2023-11-30"
	require.NoError(t, s.InsertInventory(ctx, rec))

	cfg := Config{Template: writeTemplate(t), Sheet: "Sheet1", HeaderRow: 5}
	var buf bytes.Buffer
	_, err := NewExporter(s, cfg, zap.NewNop()).Export(ctx, &buf, "")
	require.NoError(t, err)

	target := newTestStore(t)
	table, err := spreadsheet.Read(bytes.NewReader(buf.Bytes()), spreadsheet.Options{HeaderRow: 5})
	require.NoError(t, err)
	stats, err := target.IngestFromSource(ctx, table.Rows)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.InventoryAdded)

	got, err := target.GetInventory(ctx, rec.Kode)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0124", got.SerialNumber)
	assert.Equal(t, 15000000.0, *got.HargaPembelian)
	assert.Equal(t, "2023-11-30", got.TanggalPO)
}
