package scan

import (
	"context"
	"fmt"
	"sync"

	"asset-registry/core/reconcile"
	"asset-registry/core/scheduler"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ScanScheduler owns the recurring scan and the on-demand trigger.
// It is created once at startup and shared by the HTTP handler and the CLI.
type ScanScheduler struct {
	spec      reconcile.Spec
	cfg       Config
	publisher *reconcile.Publisher
	mirror    Mirror
	metrics   *Metrics
	logger    *zap.Logger

	cron   *cron.Cron
	group  singleflight.Group
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	// scan is swapped in tests.
	scan func(ctx context.Context, spec *reconcile.Spec) (*reconcile.ScanResult, error)
}

// NewScheduler creates a scheduler for adapter. mirror and metrics may be nil.
func NewScheduler(cfg Config, adapter reconcile.Adapter, mirror Mirror, metrics *Metrics, logger *zap.Logger) *ScanScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &ScanScheduler{
		spec: reconcile.Spec{
			Adapter:     adapter,
			Directories: cfg.Directories,
			Pattern:     cfg.Pattern,
			LockPrefix:  cfg.LockPrefix,
			HeaderRow:   cfg.HeaderRow,
		},
		cfg:       cfg,
		publisher: reconcile.NewPublisher(),
		mirror:    mirror,
		metrics:   metrics,
		logger:    logger,
		cron:      scheduler.New(logger),
		ctx:       ctx,
		cancel:    cancel,
		scan:      reconcile.Scan,
	}
}

// Start schedules the recurring scan. It does nothing when scanning is disabled.
func (s *ScanScheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("Recurring scan disabled")
		return nil
	}
	if s.cfg.Interval <= 0 {
		return fmt.Errorf("scan interval must be positive, got %s", s.cfg.Interval)
	}

	if _, err := s.cron.AddFunc("@every "+s.cfg.Interval.String(), s.runScheduled); err != nil {
		return fmt.Errorf("failed to schedule scan: %w", err)
	}
	s.cron.Start()

	if s.cfg.RunOnStart {
		go s.runScheduled()
	}

	s.logger.Info("Recurring scan scheduled",
		zap.Duration("interval", s.cfg.Interval),
		zap.Strings("directories", s.cfg.Directories))
	return nil
}

// Stop cancels a running scan and waits for scheduled jobs to return.
func (s *ScanScheduler) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.cron.Stop().Done()
	})
}

// RunNow scans immediately. Concurrent callers share a single run and its
// result. A caller whose ctx ends stops waiting; the run itself continues
// until the scheduler stops.
func (s *ScanScheduler) RunNow(ctx context.Context) (*reconcile.ScanResult, error) {
	ch := s.group.DoChan("scan", func() (any, error) {
		return s.run(s.ctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*reconcile.ScanResult), nil
	}
}

// Latest returns the last published result, or nil before the first scan.
func (s *ScanScheduler) Latest() *reconcile.ScanResult {
	return s.publisher.Latest()
}

// Mirrored returns the result held by the mirror, which may come from another
// process. It is nil when no mirror is configured.
func (s *ScanScheduler) Mirrored(ctx context.Context) (*reconcile.ScanResult, error) {
	if s.mirror == nil {
		return nil, nil
	}
	return s.mirror.Load(ctx)
}

// safeScan turns a panic into an error. singleflight re-raises panics from
// the shared call, which would take the process down.
func (s *ScanScheduler) safeScan(ctx context.Context, spec *reconcile.Spec) (result *reconcile.ScanResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("scan panicked: %v", r)
		}
	}()
	return s.scan(ctx, spec)
}

func (s *ScanScheduler) runScheduled() {
	_, _ = s.RunNow(s.ctx)
}

// run performs one scan and publishes it. A failed run publishes nothing,
// so the previous result stays visible.
func (s *ScanScheduler) run(ctx context.Context) (*reconcile.ScanResult, error) {
	spec := s.spec
	spec.RunID = uuid.NewString()
	l := s.logger.With(zap.String("run_id", spec.RunID))

	l.Info("Scan started")
	result, err := s.safeScan(ctx, &spec)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ObserveFailure()
		}
		l.Error("Scan failed", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish(result)
	if s.metrics != nil {
		s.metrics.ObserveResult(result)
	}
	if s.mirror != nil {
		if err := s.mirror.Store(ctx, result); err != nil {
			l.Warn("Failed to mirror scan result", zap.Error(err))
		}
	}

	for _, fe := range result.FileErrors {
		l.Warn("Workbook skipped", zap.String("file", fe.File), zap.String("error", fe.Error))
	}
	l.Info("Scan finished",
		zap.String("status", string(result.Status)),
		zap.Int("files", result.FilesScanned),
		zap.Int("with_differences", len(result.Files)),
		zap.Duration("duration", result.Duration))

	return result, nil
}
