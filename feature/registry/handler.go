package registry

import (
	"bytes"
	"errors"
	"strconv"

	"asset-registry/core/logger"
	"asset-registry/core/server"
	"asset-registry/feature/registry/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the registry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	assets := app.Group("/assets")
	assets.Get("/", h.HandleListAssets)
	assets.Get("/search", h.HandleSearchAssets)
	assets.Get("/:name", h.HandleGetAsset)
	assets.Post("/", h.HandleCreateAsset)

	inv := app.Group("/inventory")
	inv.Get("/", h.HandleListInventory)
	inv.Get("/suggest", h.HandleSuggest)
	inv.Get("/export", h.HandleExport)
	inv.Post("/bulk", h.HandleBulkCreate)
	inv.Get("/:code", h.HandleGetInventory)
	inv.Post("/", h.HandleCreateInventory)
	inv.Delete("/:code", h.HandleDeleteInventory)

	app.Post("/import", h.HandleImport)
}

// HandleListAssets lists every asset definition.
// @Summary List Assets
// @Description List every asset definition ordered by name.
// @Tags assets
// @Produce json
// @Success 200 {array} models.AssetDefinition
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets [get]
func (h *Handler) HandleListAssets(c *fiber.Ctx) error {
	defs, err := h.service.ListAssets(c.Context())
	if err != nil {
		return h.fail(c, "List assets failed", err)
	}
	return c.JSON(defs)
}

// HandleSearchAssets returns up to ten assets whose name contains q.
// @Summary Search Assets
// @Tags assets
// @Produce json
// @Param q query string true "Partial asset name"
// @Success 200 {array} models.AssetDefinition
// @Router /assets/search [get]
func (h *Handler) HandleSearchAssets(c *fiber.Ctx) error {
	defs, err := h.service.SearchAssets(c.Context(), c.Query("q"))
	if err != nil {
		return h.fail(c, "Search assets failed", err)
	}
	return c.JSON(defs)
}

// HandleGetAsset returns one asset definition.
// @Summary Get Asset
// @Tags assets
// @Produce json
// @Param name path string true "Asset name"
// @Success 200 {object} models.AssetDefinition
// @Failure 404 {object} map[string]string "Not Found"
// @Router /assets/{name} [get]
func (h *Handler) HandleGetAsset(c *fiber.Ctx) error {
	name, err := unescape(c.Params("name"))
	if err != nil {
		return server.RespondError(c, err)
	}
	def, err := h.service.GetAsset(c.Context(), name)
	if err != nil {
		return h.fail(c, "Get asset failed", err)
	}
	if def == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset not found"})
	}
	return c.JSON(def)
}

// HandleCreateAsset adds an asset definition.
// @Summary Create Asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body models.AssetDefinition true "Asset definition"
// @Success 201 {object} models.AssetDefinition
// @Failure 400 {object} map[string]any "Validation Error"
// @Failure 409 {object} map[string]string "Duplicate"
// @Router /assets [post]
func (h *Handler) HandleCreateAsset(c *fiber.Ctx) error {
	var def models.AssetDefinition
	if err := c.BodyParser(&def); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.CreateAsset(c.Context(), &def); err != nil {
		return h.fail(c, "Create asset failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(def)
}

// HandleListInventory lists inventory, optionally filtered by q.
// @Summary List Inventory
// @Description Search matches code, asset name, user or client.
// @Tags inventory
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.InventoryRecord
// @Router /inventory [get]
func (h *Handler) HandleListInventory(c *fiber.Ctx) error {
	recs, err := h.service.ListInventory(c.Context(), c.Query("q"))
	if err != nil {
		return h.fail(c, "List inventory failed", err)
	}
	return c.JSON(recs)
}

// HandleGetInventory returns one record.
// @Summary Get Inventory Record
// @Tags inventory
// @Produce json
// @Param code path string true "Item code (URL-encoded)"
// @Success 200 {object} models.InventoryRecord
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{code} [get]
func (h *Handler) HandleGetInventory(c *fiber.Ctx) error {
	code, err := unescape(c.Params("code"))
	if err != nil {
		return server.RespondError(c, err)
	}
	rec, err := h.service.GetInventory(c.Context(), code)
	if err != nil {
		return h.fail(c, "Get inventory failed", err)
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "inventory not found"})
	}
	return c.JSON(rec)
}

// HandleCreateInventory adds a single record.
// @Summary Create Inventory Record
// @Tags inventory
// @Accept json
// @Produce json
// @Param record body models.InventoryRecord true "Inventory record"
// @Success 201 {object} models.InventoryRecord
// @Failure 400 {object} map[string]any "Validation Error"
// @Failure 409 {object} map[string]string "Duplicate"
// @Router /inventory [post]
func (h *Handler) HandleCreateInventory(c *fiber.Ctx) error {
	var rec models.InventoryRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.CreateInventory(c.Context(), &rec); err != nil {
		return h.fail(c, "Create inventory failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleBulkCreate creates a sequence of records.
// @Summary Bulk Create Inventory
// @Description Creates quantity records from a base code, incrementing code and serial.
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body BulkRequest true "Bulk request"
// @Success 201 {object} BulkResult
// @Failure 400 {object} map[string]any "Validation Error"
// @Failure 409 {object} map[string]any "Stopped part way"
// @Router /inventory/bulk [post]
func (h *Handler) HandleBulkCreate(c *fiber.Ctx) error {
	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := h.service.BulkCreate(c.Context(), req)
	var partial *BulkInsertError
	if errors.As(err, &partial) {
		logger.WithRayID(h.service.logger, c).Warn("Bulk create stopped", zap.String("code", partial.Code), zap.Error(partial.Err))
		return c.Status(server.StatusFor(partial.Err)).JSON(fiber.Map{
			"error":   err.Error(),
			"created": partial.Created,
			"failed":  partial.Code,
		})
	}
	if err != nil {
		return h.fail(c, "Bulk create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleSuggest returns the next code, serial and defaults for an asset.
// @Summary Suggest Bulk Form
// @Tags inventory
// @Produce json
// @Param asset query string true "Asset name"
// @Success 200 {object} Suggestion
// @Router /inventory/suggest [get]
func (h *Handler) HandleSuggest(c *fiber.Ctx) error {
	asset := c.Query("asset")
	if asset == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "asset is required"})
	}
	s, err := h.service.Suggest(c.Context(), asset)
	if err != nil {
		return h.fail(c, "Suggest failed", err)
	}
	return c.JSON(s)
}

// HandleDeleteInventory removes a record.
// @Summary Delete Inventory Record
// @Tags inventory
// @Param code path string true "Item code (URL-encoded)"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{code} [delete]
func (h *Handler) HandleDeleteInventory(c *fiber.Ctx) error {
	code, err := unescape(c.Params("code"))
	if err != nil {
		return server.RespondError(c, err)
	}
	removed, err := h.service.DeleteInventory(c.Context(), code)
	if err != nil {
		return h.fail(c, "Delete inventory failed", err)
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "inventory not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExport downloads the inventory as a workbook, or uploads it when upload=true.
// @Summary Export Inventory
// @Tags inventory
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Search term"
// @Param upload query bool false "Upload to object storage instead of downloading"
// @Success 200 {file} file
// @Router /inventory/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	search := c.Query("q")
	if upload, _ := strconv.ParseBool(c.Query("upload")); upload {
		key, err := h.service.ExportToStorage(c.Context(), search)
		if err != nil {
			return h.fail(c, "Export upload failed", err)
		}
		return c.JSON(fiber.Map{"key": key})
	}

	var buf bytes.Buffer
	if _, err := h.service.Export(c.Context(), &buf, search); err != nil {
		return h.fail(c, "Export failed", err)
	}
	c.Set(fiber.HeaderContentType, ExportContentType)
	c.Attachment("inventory_registry.xlsx")
	return c.Send(buf.Bytes())
}

type importRequest struct {
	File string `json:"file"`
}

// HandleImport ingests a workbook from the server's filesystem.
// @Summary Import Workbook
// @Description Ingests the given file, or the configured source when empty.
// @Tags import
// @Accept json
// @Produce json
// @Param request body importRequest false "File to import"
// @Success 200 {object} IngestStats
// @Failure 422 {object} map[string]string "Unreadable workbook"
// @Router /import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	var req importRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	stats, err := h.service.Import(c.Context(), req.File)
	if err != nil {
		return h.fail(c, "Import failed", err)
	}
	return c.JSON(stats)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if server.StatusFor(err) >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Info(msg, zap.Error(err))
	}
	return server.RespondError(c, err)
}
