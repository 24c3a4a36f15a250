package scan

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	scheduler *ScanScheduler
	handler   *Handler
}

// NewFeature creates the scan feature around a shared scheduler.
func NewFeature(scheduler *ScanScheduler, logger *zap.Logger) *Feature {
	return &Feature{scheduler: scheduler, handler: NewHandler(scheduler, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "scan"
}

// IsEnabled checks if the feature is enabled.
// On-demand scans stay available when the recurring scan is off.
func (f *Feature) IsEnabled() bool {
	return f.scheduler != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Scheduler returns the feature's scheduler.
func (f *Feature) Scheduler() *ScanScheduler {
	return f.scheduler
}
