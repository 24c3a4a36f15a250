package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"

	apperrors "asset-registry/core/errors"
	"asset-registry/core/spreadsheet"
	"asset-registry/core/storage"
	"asset-registry/feature/registry/models"

	"go.uber.org/zap"
)

// Service exposes registry operations to the HTTP handler and the CLI.
type Service struct {
	store    *Store
	bulk     *BulkCreator
	exporter *Exporter
	client   storage.Client
	bucket   string
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a registry service. client may be nil when object
// storage is disabled.
func NewService(store *Store, cfg Config, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		bulk:     NewBulkCreator(store),
		exporter: NewExporter(store, cfg, logger),
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
	}
}

// Store returns the underlying store.
func (s *Service) Store() *Store {
	return s.store
}

// ListAssets returns every definition.
func (s *Service) ListAssets(ctx context.Context) ([]models.AssetDefinition, error) {
	return s.store.GetAllAssets(ctx)
}

// SearchAssets returns definitions whose name contains partial.
func (s *Service) SearchAssets(ctx context.Context, partial string) ([]models.AssetDefinition, error) {
	return s.store.SearchAssets(ctx, partial)
}

// GetAsset returns a definition or nil.
func (s *Service) GetAsset(ctx context.Context, name string) (*models.AssetDefinition, error) {
	return s.store.GetAssetByName(ctx, name)
}

// CreateAsset adds a definition.
func (s *Service) CreateAsset(ctx context.Context, def *models.AssetDefinition) error {
	return s.store.InsertAsset(ctx, def)
}

// ListInventory returns every record, optionally filtered.
func (s *Service) ListInventory(ctx context.Context, search string) ([]models.InventoryRecord, error) {
	return s.store.GetAllInventory(ctx, search)
}

// GetInventory returns a record or nil.
func (s *Service) GetInventory(ctx context.Context, code string) (*models.InventoryRecord, error) {
	return s.store.GetInventory(ctx, code)
}

// CreateInventory adds one record, registering its asset on first use.
func (s *Service) CreateInventory(ctx context.Context, rec *models.InventoryRecord) error {
	def := models.DefinitionFrom(rec)
	return s.store.UpsertAssetAndInventory(ctx, &def, rec)
}

// BulkCreate runs the bulk workflow.
func (s *Service) BulkCreate(ctx context.Context, req BulkRequest) (*BulkResult, error) {
	res, err := s.bulk.Create(ctx, req)
	if err == nil {
		s.logger.Info("Bulk inventory created",
			zap.String("asset", req.AssetName), zap.Int("count", len(res.Codes)))
	}
	return res, err
}

// Suggest returns a prefilled form for an asset.
func (s *Service) Suggest(ctx context.Context, assetName string) (*Suggestion, error) {
	return s.bulk.Suggest(ctx, assetName)
}

// DeleteInventory removes a record and reports whether it existed.
func (s *Service) DeleteInventory(ctx context.Context, code string) (bool, error) {
	return s.store.DeleteInventory(ctx, code)
}

// Import ingests a workbook. An empty path uses the configured source.
func (s *Service) Import(ctx context.Context, file string) (*IngestStats, error) {
	if file == "" {
		file = s.cfg.Source
	}
	if _, err := os.Stat(file); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("cannot open %s: %v", file, err))
	}
	stats, err := s.store.IngestFile(ctx, file, spreadsheet.Options{HeaderRow: s.cfg.HeaderRow})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Import finished",
		zap.String("file", file),
		zap.Int("assets_added", stats.AssetsAdded),
		zap.Int("inventory_added", stats.InventoryAdded),
		zap.Int("errors", len(stats.Errors)))
	return stats, nil
}

// Export writes the matching records as a workbook.
func (s *Service) Export(ctx context.Context, w io.Writer, search string) (int, error) {
	return s.exporter.Export(ctx, w, search)
}

// ExportToStorage renders the export and uploads it under the export prefix.
// It returns the object key.
func (s *Service) ExportToStorage(ctx context.Context, search string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("object storage is disabled")
	}

	var buf bytes.Buffer
	n, err := s.exporter.Export(ctx, &buf, search)
	if err != nil {
		return "", err
	}

	key := path.Join(s.cfg.ExportPrefix, fmt.Sprintf("inventory_registry_%s.xlsx", s.store.now().UTC().Format("20060102_150405")))
	if err := storage.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return "", err
	}
	if err := storage.Upload(ctx, s.client, s.bucket, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), ExportContentType); err != nil {
		return "", err
	}

	s.logger.Info("Export uploaded", zap.String("key", key), zap.Int("records", n))
	return key, nil
}
