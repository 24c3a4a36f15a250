package registry

import (
	"context"
	"errors"
	"testing"

	"asset-registry/core/database"
	apperrors "asset-registry/core/errors"
	"asset-registry/feature/registry/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

// newMockStore runs the store on the MySQL dialect over sqlmock.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	mock.ExpectPing()
	db, err := database.Open(mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true}), 1)
	require.NoError(t, err)
	return NewStore(db), mock
}

func TestStore_MySQLDuplicateKey(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `dim_assets`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'Laptop' for key 'PRIMARY'"})
	mock.ExpectRollback()

	err := s.InsertAsset(context.Background(), &models.AssetDefinition{NamaAset: "Laptop"})

	var dup *apperrors.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Asset", dup.Entity)
	assert.Equal(t, "Laptop", dup.Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MySQLQueryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	t.Run("GetAssetByName", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT \\* FROM `dim_assets`").WillReturnError(boom)

		def, err := s.GetAssetByName(ctx, "Laptop")
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, def)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CodeExists", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `fact_inventory`").WillReturnError(boom)

		_, err := s.CodeExists(ctx, "A001")
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertInventory", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `fact_inventory`").WillReturnError(boom)
		mock.ExpectRollback()

		err := s.InsertInventory(ctx, &models.InventoryRecord{Kode: "A001", NamaAset: "Laptop"})
		assert.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, apperrors.ErrDuplicateKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAllInventory quotes the user column", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery("LOWER\\(`user`\\) LIKE").
			WillReturnRows(sqlmock.NewRows([]string{"kode", "nama_aset"}).AddRow("A001", "Laptop"))

		recs, err := s.GetAllInventory(ctx, "budi")
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "A001", recs[0].Kode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
