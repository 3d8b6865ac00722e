package status

import (
	"catalog-engine/core/logger"
	"catalog-engine/feature/status/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.ProbeResult{}
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/", h.HandleStatus)
	group.Get("/sources", h.HandleSourcesCheck)
}

// HandleStatus runs every available health check.
// @Summary Run All Health Checks
// @Description Probes upstream source endpoints, verifies the manifest snapshot and the cache table schema.
// @Tags status
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running health checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	report["sources"] = h.service.CheckSources(ctx)

	if h.service.HasStorage() {
		if found, err := h.service.CheckSnapshot(ctx); err != nil {
			report["snapshot"] = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			report["snapshot"] = map[string]interface{}{"status": "ok", "present": found}
		}
	} else {
		report["snapshot"] = map[string]interface{}{"status": "disabled"}
	}

	if h.service.HasDatabase() {
		if schema, err := h.service.CheckCacheSchema(); err != nil {
			report["cache_schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			report["cache_schema"] = schema
		}
	} else {
		report["cache_schema"] = map[string]interface{}{"status": "disabled"}
	}

	return c.JSON(report)
}

// HandleSourcesCheck probes the upstream source endpoints.
// @Summary Check Source Reachability
// @Description Probes every configured upstream endpoint with a HEAD request and reports reachability per source family.
// @Tags status
// @Accept json
// @Produce json
// @Success 200 {array} checks.ProbeResult "Probe Results"
// @Router /status/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	results := h.service.CheckSources(c.Context())

	reachable := 0
	for _, r := range results {
		if r.Reachable {
			reachable++
		}
	}
	l.Info("Source probe completed",
		zap.Int("probed", len(results)),
		zap.Int("reachable", reachable))

	return c.JSON(results)
}
