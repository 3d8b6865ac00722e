package catalog

import (
	"errors"

	"catalog-engine/core/logger"
	"catalog-engine/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the unified catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleCatalog)
	group.Get("/categories", h.HandleCategories)
}

// HandleCatalog returns the unified catalog for the requested filters.
// @Summary Get Unified Catalog
// @Description Returns the merged, validated clothing catalog assembled from all configured sources.
// @Tags catalog
// @Accept json
// @Produce json
// @Param category query string false "Category token or 'all'" default(all)
// @Param gender query string false "M, F or U" default(U)
// @Param search query string false "Case-insensitive name filter"
// @Param strict query bool false "Drop low-confidence classifications"
// @Param forceRefresh query bool false "Bypass the cache lookup"
// @Success 200 {object} models.Response "Unified catalog"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 502 {object} map[string]string "All sources failed"
// @Router /catalog [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	var req models.Request
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l := logger.WithRayID(h.logger, c)

	resp, err := h.service.Catalog(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAllSourcesFailed) {
			l.Error("Catalog request failed: no source answered")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
		l.Warn("Catalog request rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(resp)
}

// HandleCategories returns per-category item counts.
// @Summary List Catalog Categories
// @Description Returns the categories present in the unified catalog with item counts.
// @Tags catalog
// @Accept json
// @Produce json
// @Param gender query string false "M, F or U" default(U)
// @Success 200 {array} models.CategoryCount "Category counts"
// @Failure 502 {object} map[string]string "All sources failed"
// @Router /catalog/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	gender := models.Gender(c.Query("gender", string(models.GenderUnisex)))

	l := logger.WithRayID(h.logger, c)

	counts, err := h.service.Categories(c.Context(), gender)
	if err != nil {
		l.Error("Categories request failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(counts)
}
