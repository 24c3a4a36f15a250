package backup

import (
	"asset-registry/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/backup", h.HandleList)
	app.Post("/backup", h.HandleRun)
}

// HandleRun takes a backup now.
// @Summary Run Backup
// @Description Snapshots the database, uploads it when configured and prunes expired backups.
// @Tags backup
// @Produce json
// @Success 200 {object} Result
// @Failure 500 {object} map[string]string "Backup failed"
// @Router /backup [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	res, err := h.service.Run(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Backup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// HandleList lists local backups.
// @Summary List Backups
// @Tags backup
// @Produce json
// @Success 200 {array} Entry
// @Router /backup [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}
