package status

import (
	"context"
	"net/http"
	"time"

	"catalog-engine/core/storage"
	"catalog-engine/feature/status/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the health checks.
type Service struct {
	probes         []checks.Probe
	client         *http.Client
	store          storage.Client
	bucket         string
	snapshotObject string
	db             *gorm.DB
	logger         *zap.Logger
}

// NewService creates a new status service. db may be nil when running
// without a persistent cache; store may be nil when running without
// object storage.
func NewService(probes []checks.Probe, store storage.Client, bucket, snapshotObject string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		probes:         probes,
		client:         &http.Client{Timeout: 5 * time.Second},
		store:          store,
		bucket:         bucket,
		snapshotObject: snapshotObject,
		db:             db,
		logger:         logger,
	}
}

// CheckSources probes every configured upstream endpoint.
func (s *Service) CheckSources(ctx context.Context) []checks.ProbeResult {
	return checks.ProbeSources(ctx, s.client, s.probes)
}

// CheckSnapshot reports whether the manifest snapshot exists.
func (s *Service) CheckSnapshot(ctx context.Context) (bool, error) {
	return checks.CheckSnapshot(ctx, s.store, s.bucket, s.snapshotObject)
}

// CheckCacheSchema verifies the persistent cache table.
func (s *Service) CheckCacheSchema() (*checks.SchemaReport, error) {
	return checks.CheckCacheSchema(s.db)
}

// HasStorage reports whether object storage is configured.
func (s *Service) HasStorage() bool { return s.store != nil }

// HasDatabase reports whether a database connection is configured.
func (s *Service) HasDatabase() bool { return s.db != nil }
