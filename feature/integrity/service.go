package integrity

import (
	"context"
	"errors"

	"asset-registry/core/storage"
	"asset-registry/feature/integrity/checks"
	"asset-registry/feature/registry/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by bucket checks when no object storage is configured.
var ErrStorageDisabled = errors.New("object storage is disabled")

// Options lists what the checks look for.
type Options struct {
	// Folders are the bucket prefixes backups and exports are written under.
	Folders []string
	// Paths are local files and directories the registry reads from.
	Paths []string
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil.
func NewService(client storage.Client, bucket string, db *gorm.DB, opts Options, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		opts:   opts,
		logger: logger,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.opts.Folders)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckServer compares the registry tables with the models.
func (s *Service) CheckServer() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, &models.AssetDefinition{}, &models.InventoryRecord{})
}

// CheckFiles reports which configured local paths exist.
func (s *Service) CheckFiles() checks.FileReport {
	return checks.CheckFiles(s.opts.Paths)
}
