package backup

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"asset-registry/core/scheduler"
	"asset-registry/core/storage"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	filePrefix = "assets_auto_"
	fileSuffix = ".db"
	stampFmt   = "20060102_150405"

	contentType = "application/vnd.sqlite3"
)

// Result describes one backup run.
type Result struct {
	File     string   `json:"file"`
	Size     int64    `json:"size"`
	Key      string   `json:"key,omitempty"`
	Pruned   []string `json:"pruned"`
	Uploaded bool     `json:"uploaded"`
}

// Entry is a local backup file.
type Entry struct {
	File     string    `json:"file"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Service snapshots the registry database and prunes old snapshots.
type Service struct {
	db     *gorm.DB
	cfg    Config
	client storage.Client
	bucket string
	logger *zap.Logger
	cron   *cron.Cron
	now    func() time.Time
}

// NewService creates a backup service. client may be nil when object storage
// is disabled.
func NewService(db *gorm.DB, cfg Config, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		cfg:    cfg,
		client: client,
		bucket: bucket,
		logger: logger,
		cron:   scheduler.New(logger),
		now:    time.Now,
	}
}

// Start schedules the recurring backup.
func (s *Service) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("Scheduled backup disabled")
		return nil
	}
	if err := scheduler.Validate(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.cfg.Schedule, err)
	}
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if _, err := s.Run(context.Background()); err != nil {
			s.logger.Error("Scheduled backup failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup: %w", err)
	}
	s.cron.Start()
	s.logger.Info("Backup scheduled", zap.String("schedule", s.cfg.Schedule), zap.String("dir", s.cfg.Dir))
	return nil
}

// Stop waits for a running backup to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

// Run writes a consistent copy of the database, uploads it when configured and
// removes backups older than the retention period. Pruning failures are logged
// and do not fail the run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	if name := s.db.Dialector.Name(); name != "sqlite" {
		return nil, fmt.Errorf("backups are not supported for the %s driver", name)
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}

	now := s.now()
	file := filepath.Join(s.cfg.Dir, filePrefix+now.Format(stampFmt)+fileSuffix)

	// VACUUM INTO copies one consistent snapshot and fails if the file exists
	stmt := fmt.Sprintf("VACUUM INTO '%s'", strings.ReplaceAll(file, "'", "''"))
	if err := s.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		return nil, fmt.Errorf("failed to write backup %s: %w", file, err)
	}
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}

	result := &Result{File: file, Size: info.Size(), Pruned: []string{}}
	l := s.logger.With(zap.String("file", file))

	if s.uploading() {
		key := path.Join(s.cfg.Prefix, filepath.Base(file))
		if err := s.upload(ctx, file, key, info.Size()); err != nil {
			return result, err
		}
		result.Key = key
		result.Uploaded = true
	}

	cutoff := now.Add(-time.Duration(s.cfg.RetentionDays) * 24 * time.Hour)
	pruned, err := s.pruneLocal(cutoff)
	if err != nil {
		l.Warn("Failed to prune local backups", zap.Error(err))
	}
	result.Pruned = append(result.Pruned, pruned...)

	if s.uploading() {
		pruned, err := s.pruneRemote(ctx, cutoff)
		if err != nil {
			l.Warn("Failed to prune uploaded backups", zap.Error(err))
		}
		result.Pruned = append(result.Pruned, pruned...)
	}

	l.Info("Backup finished",
		zap.Int64("size", result.Size),
		zap.Bool("uploaded", result.Uploaded),
		zap.Int("pruned", len(result.Pruned)))
	return result, nil
}

// List returns the local backups, newest first.
func (s *Service) List() ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(s.cfg.Dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{File: m, Size: info.Size(), Modified: info.ModTime()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].File > entries[j].File })
	return entries, nil
}

func (s *Service) uploading() bool {
	return s.cfg.Upload && s.client != nil
}

func (s *Service) upload(ctx context.Context, file, key string, size int64) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := storage.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return err
	}
	return storage.Upload(ctx, s.client, s.bucket, key, f, size, contentType)
}

// pruneLocal removes backup files last modified before cutoff.
func (s *Service) pruneLocal(cutoff time.Time) ([]string, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, e := range entries {
		if !e.Modified.Before(cutoff) {
			continue
		}
		if err := os.Remove(e.File); err != nil {
			return removed, err
		}
		removed = append(removed, e.File)
	}
	return removed, nil
}

// pruneRemote removes uploaded backups last modified before cutoff.
func (s *Service) pruneRemote(ctx context.Context, cutoff time.Time) ([]string, error) {
	objects, err := storage.List(ctx, s.client, s.bucket, s.cfg.Prefix)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, o := range objects {
		base := path.Base(o.Key)
		if !strings.HasPrefix(base, filePrefix) || !strings.HasSuffix(base, fileSuffix) {
			continue
		}
		if o.LastModified.Before(cutoff) {
			stale = append(stale, o.Key)
		}
	}
	if err := storage.Remove(ctx, s.client, s.bucket, stale); err != nil {
		return nil, err
	}
	return stale, nil
}
