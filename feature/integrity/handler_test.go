package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"asset-registry/core/database"
	"asset-registry/core/storage/mocks"
	"asset-registry/feature/registry/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: filepath.Join(t.TempDir(), "assets.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.AutoMigrate(&models.AssetDefinition{}, &models.InventoryRecord{}))
	return db
}

func setupTestApp(t *testing.T, withStorage bool) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	var mockClient *mocks.Client
	svc := NewService(nil, "test-bucket", setupTestDB(t), Options{
		Folders: []string{"backups/", "exports/"},
		Paths:   []string{filepath.Join(t.TempDir(), "gabungan.xlsx")},
	}, zap.NewNop())
	if withStorage {
		mockClient = new(mocks.Client)
		svc.client = mockClient
	}
	feature := NewFeature(svc)
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func emptyListing(m *mocks.Client) {
	m.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	m.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
}

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestLoader(t *testing.T) {
	feature := NewFeature(NewService(nil, "test-bucket", setupTestDB(t), Options{}, zap.NewNop()))
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	assert.False(t, NewFeature(NewService(nil, "", nil, Options{}, zap.NewNop())).IsEnabled())
}

func TestHandleStructureCheck(t *testing.T) {
	t.Run("Checked", func(t *testing.T) {
		app, mockClient := setupTestApp(t, true)
		emptyListing(mockClient)

		status, body := decode(t, app, "/integrity/structure")
		assert.Equal(t, 200, status)
		assert.Equal(t, "checked", body["status"])
		assert.Equal(t, []any{"backups", "exports"}, body["missing"])
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fixed", func(t *testing.T) {
		app, mockClient := setupTestApp(t, true)
		emptyListing(mockClient)
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		status, body := decode(t, app, "/integrity/structure?fix=true")
		assert.Equal(t, 200, status)
		assert.Equal(t, "fixed", body["status"])
		mockClient.AssertNumberOfCalls(t, "PutObject", 2)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		app, mockClient := setupTestApp(t, true)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

		status, body := decode(t, app, "/integrity/structure")
		assert.Equal(t, 500, status)
		assert.Contains(t, body["error"], "does not exist")
	})

	t.Run("Disabled", func(t *testing.T) {
		app, _ := setupTestApp(t, false)

		status, body := decode(t, app, "/integrity/structure")
		assert.Equal(t, 200, status)
		assert.Equal(t, "disabled", body["status"])
	})
}

func TestHandleServerCheck(t *testing.T) {
	app, _ := setupTestApp(t, false)

	status, body := decode(t, app, "/integrity/server")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "sqlite", body["driver"])
}

func TestHandleFilesCheck(t *testing.T) {
	app, _ := setupTestApp(t, false)

	status, body := decode(t, app, "/integrity/files")
	assert.Equal(t, 200, status)
	assert.Len(t, body["missing"], 1)
	assert.Empty(t, body["present"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, true)
	emptyListing(mockClient)

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Contains(t, body, "structure")
	assert.Contains(t, body, "server")
	assert.Contains(t, body, "files")

	structure := body["structure"].(map[string]any)
	assert.Equal(t, "ok", structure["status"])
	server := body["server"].(map[string]any)
	assert.Equal(t, true, server["matched"])
}
