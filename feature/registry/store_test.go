package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"asset-registry/core/database"
	apperrors "asset-registry/core/errors"
	"asset-registry/core/utils"
	"asset-registry/feature/registry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated sqlite store whose clock advances a second per call.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: filepath.Join(t.TempDir(), "assets.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	s := NewStore(db)
	clock := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func item(code, asset string) *models.InventoryRecord {
	return &models.InventoryRecord{Kode: code, NamaAset: asset}
}

func TestStore_InsertExistsDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, code := range []string{"A001", "BTPNINFJKT/0124/4.0055 NB"} {
		exists, err := s.CodeExists(ctx, code)
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, s.InsertInventory(ctx, item(code, "Laptop")))

		exists, err = s.CodeExists(ctx, code)
		require.NoError(t, err)
		assert.True(t, exists)

		removed, err := s.DeleteInventory(ctx, code)
		require.NoError(t, err)
		assert.True(t, removed)

		exists, err = s.CodeExists(ctx, code)
		require.NoError(t, err)
		assert.False(t, exists)
	}

	removed, err := s.DeleteInventory(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_InsertInventory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("Stamps timestamp and quantity", func(t *testing.T) {
		rec := item("A001", "Laptop")
		rec.Quantity = utils.Int(5)
		rec.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

		require.NoError(t, s.InsertInventory(ctx, rec))

		got, err := s.GetInventory(ctx, "A001")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 1, *got.Quantity)
		assert.Equal(t, 2024, got.CreatedAt.Year())
	})

	t.Run("Duplicate code", func(t *testing.T) {
		err := s.InsertInventory(ctx, item("A001", "Laptop"))
		assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
		assert.EqualError(t, err, "Inventory 'A001' already exists")
	})

	t.Run("Validation lists every violation", func(t *testing.T) {
		rec := &models.InventoryRecord{Kerahasiaan: utils.Float(0), Nilai: utils.Float(5.5)}
		err := s.InsertInventory(ctx, rec)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Violations, 4)
	})

	t.Run("Scores on the bounds are accepted", func(t *testing.T) {
		rec := item("A002", "Laptop")
		rec.Kerahasiaan = utils.Float(1)
		rec.Nilai = utils.Float(5)
		assert.NoError(t, s.InsertInventory(ctx, rec))
	})
}

func TestStore_Assets(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 12; i >= 1; i-- {
		require.NoError(t, s.InsertAsset(ctx, &models.AssetDefinition{NamaAset: fmt.Sprintf("Laptop %02d", i)}))
	}
	require.NoError(t, s.InsertAsset(ctx, &models.AssetDefinition{NamaAset: "Monitor", Brand: "LG"}))

	err := s.InsertAsset(ctx, &models.AssetDefinition{NamaAset: "Monitor"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)

	err = s.InsertAsset(ctx, &models.AssetDefinition{NamaAset: "  "})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	all, err := s.GetAllAssets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 13)
	assert.Equal(t, "Laptop 01", all[0].NamaAset)
	assert.Equal(t, "Monitor", all[12].NamaAset)

	found, err := s.SearchAssets(ctx, "laptop")
	require.NoError(t, err)
	assert.Len(t, found, 10)

	def, err := s.GetAssetByName(ctx, "Monitor")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "LG", def.Brand)

	def, err = s.GetAssetByName(ctx, "Printer")
	assert.NoError(t, err)
	assert.Nil(t, def)
}

func TestStore_TemplateAndLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.InsertInventory(ctx, item("0224", "Laptop")))
	last := item("0124", "Laptop")
	last.User = "budi"
	require.NoError(t, s.InsertInventory(ctx, last))
	require.NoError(t, s.InsertInventory(ctx, item("0999", "Monitor")))

	latest, err := s.GetLatestItem(ctx, "Laptop")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "0224", latest.Kode)

	template, err := s.GetInventoryTemplate(ctx, "Laptop")
	require.NoError(t, err)
	require.NotNil(t, template)
	assert.Equal(t, "0124", template.Kode)
	assert.Equal(t, "budi", template.User)

	none, err := s.GetInventoryTemplate(ctx, "Printer")
	assert.NoError(t, err)
	assert.Nil(t, none)

	none, err = s.GetLatestItem(ctx, "Printer")
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestStore_GetAllInventory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := item("JKT-001", "Laptop")
	a.User = "Budi"
	b := item("SBY-001", "Monitor")
	b.Client = "Bank Mandiri"
	c := item("SBY-002", "Printer")
	for _, r := range []*models.InventoryRecord{c, a, b} {
		require.NoError(t, s.InsertInventory(ctx, r))
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"JKT-001", "SBY-001", "SBY-002"}},
		{"sby", []string{"SBY-001", "SBY-002"}},
		{"budi", []string{"JKT-001"}},
		{"MANDIRI", []string{"SBY-001"}},
		{"print", []string{"SBY-002"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			recs, err := s.GetAllInventory(ctx, tt.search)
			require.NoError(t, err)
			codes := []string{}
			for _, r := range recs {
				codes = append(codes, r.Kode)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestStore_SerialExists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	rec := item("A001", "Laptop")
	rec.SerialNumber = "SN-100"
	require.NoError(t, s.InsertInventory(ctx, rec))

	exists, err := s.SerialExists(ctx, "SN-100")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.SerialExists(ctx, "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_DeleteKeepsDefinition(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.InsertAsset(ctx, &models.AssetDefinition{NamaAset: "Laptop"}))
	require.NoError(t, s.InsertInventory(ctx, item("A001", "Laptop")))

	_, err := s.DeleteInventory(ctx, "A001")
	require.NoError(t, err)

	def, err := s.GetAssetByName(ctx, "Laptop")
	require.NoError(t, err)
	assert.NotNil(t, def)
}

func TestStore_UpsertAssetAndInventory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("Registers new asset", func(t *testing.T) {
		def := &models.AssetDefinition{NamaAset: "Laptop", Brand: "Dell", OSDefault: "Windows 11"}
		rec := item("A001", "Laptop")

		require.NoError(t, s.UpsertAssetAndInventory(ctx, def, rec))

		got, err := s.GetAssetByName(ctx, "Laptop")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Dell", got.Brand)
	})

	t.Run("Inherits classification from existing asset", func(t *testing.T) {
		rec := item("A002", "Laptop")
		rec.Spesifikasi = "16GB"

		require.NoError(t, s.UpsertAssetAndInventory(ctx, &models.AssetDefinition{NamaAset: "Laptop"}, rec))

		got, err := s.GetInventory(ctx, "A002")
		require.NoError(t, err)
		assert.Equal(t, "Dell", got.Brand)
		assert.Equal(t, "Windows 11", got.OS)
		assert.Equal(t, "16GB", got.Spesifikasi)
	})

	t.Run("Rolls back the new asset when the item fails", func(t *testing.T) {
		err := s.UpsertAssetAndInventory(ctx, &models.AssetDefinition{NamaAset: "Tablet"}, item("A001", "Tablet"))
		assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)

		got, err := s.GetAssetByName(ctx, "Tablet")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
