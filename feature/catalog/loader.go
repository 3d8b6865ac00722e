package catalog

import (
	"catalog-engine/core/cache"
	"catalog-engine/feature/catalog/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog feature over the given sources and
// cache backend.
func NewFeature(sources []source.Source, c *cache.Cache, logger *zap.Logger) *Feature {
	svc := NewService(sources, c, nil, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the pipeline for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}
