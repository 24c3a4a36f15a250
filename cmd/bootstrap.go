package cmd

import (
	"context"
	"fmt"

	"asset-registry/core/cache"
	"asset-registry/core/config"
	"asset-registry/core/database"
	"asset-registry/core/logger"
	"asset-registry/core/storage"
	"asset-registry/feature/registry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is what every command needs before it can do work.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  *registry.Store
}

// bootstrap loads configuration, builds the logger and opens the migrated registry database.
func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := registry.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &env{cfg: cfg, logger: l, db: db, store: store}, nil
}

func (e *env) close() {
	_ = database.Close(e.db)
	_ = e.logger.Sync()
}

// storageClient returns the object storage client, or nil when storage is disabled.
func (e *env) storageClient(ctx context.Context) (storage.Client, error) {
	if !e.cfg.Storage.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, client, e.cfg.Storage.Bucket); err != nil {
		return nil, err
	}
	return client, nil
}

// cacheClient returns the Redis client, or nil when the cache is disabled.
func (e *env) cacheClient(ctx context.Context) (*cache.Client, error) {
	return cache.NewClient(ctx, e.cfg.Cache)
}

// registryService wires the registry with optional storage. A storage failure only warns.
func (e *env) registryService(ctx context.Context) *registry.Service {
	client, err := e.storageClient(ctx)
	if err != nil {
		e.logger.Warn("Object storage unavailable", zap.Error(err))
		client = nil
	}
	return registry.NewService(e.store, e.cfg.Spreadsheet, client, e.cfg.Storage.Bucket, e.logger)
}
