package scan

import (
	"strconv"

	"asset-registry/core/logger"
	"asset-registry/core/reconcile"
	"asset-registry/feature/registry/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for scan results.
type Handler struct {
	scheduler *ScanScheduler
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(scheduler *ScanScheduler, logger *zap.Logger) *Handler {
	return &Handler{scheduler: scheduler, logger: logger}
}

// RegisterRoutes registers the scan routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/scan", h.HandleLatest)
	app.Post("/scan", h.HandleRun)
}

// flatFile is a file report with changed rows rendered side by side.
type flatFile struct {
	reconcile.FileReport
	ChangedRows []map[string]string `json:"changed_rows"`
}

// HandleLatest returns the last published scan.
// @Summary Latest Scan
// @Description Returns the last complete scan. Before the first scan the status is ok with no files.
// @Tags scan
// @Produce json
// @Param flat query bool false "Render changed rows as '<Column> (Excel)' / '<Column> (DB)' pairs"
// @Success 200 {object} reconcile.ScanResult
// @Router /scan [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	result := h.scheduler.Latest()
	if result == nil {
		mirrored, err := h.scheduler.Mirrored(c.Context())
		if err != nil {
			logger.WithRayID(h.logger, c).Warn("Failed to read mirrored scan", zap.Error(err))
		}
		result = mirrored
	}
	if result == nil {
		return c.JSON(fiber.Map{"status": reconcile.StatusOK, "files": []any{}, "last_scan": nil})
	}

	if flat, _ := strconv.ParseBool(c.Query("flat")); flat {
		return c.JSON(flatten(result))
	}
	return c.JSON(result)
}

// HandleRun runs a scan now and returns its result.
// @Summary Run Scan
// @Description Scans immediately. Concurrent requests share one run.
// @Tags scan
// @Produce json
// @Success 200 {object} reconcile.ScanResult
// @Failure 500 {object} map[string]string "Scan failed"
// @Router /scan [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	result, err := h.scheduler.RunNow(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("On-demand scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func flatten(result *reconcile.ScanResult) fiber.Map {
	files := make([]flatFile, len(result.Files))
	for i, f := range result.Files {
		rows := make([]map[string]string, len(f.ChangedRows))
		for j, cr := range f.ChangedRows {
			rows[j] = cr.Flatten(models.ColumnCode)
		}
		files[i] = flatFile{FileReport: f, ChangedRows: rows}
	}
	return fiber.Map{
		"run_id":        result.RunID,
		"status":        result.Status,
		"last_scan":     result.LastScan,
		"duration":      result.Duration,
		"files_scanned": result.FilesScanned,
		"files_skipped": result.FilesSkipped,
		"file_errors":   result.FileErrors,
		"files":         files,
	}
}
