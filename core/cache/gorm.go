package cache

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// apiCache is the persistent cache row. The table mirrors the opaque
// (key, value, expiresAt) contract: single-key upsert, no further
// transactional semantics.
type apiCache struct {
	CacheKey  string    `gorm:"column:cache_key;primaryKey;size:64"`
	Data      []byte    `gorm:"column:data;type:longtext"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
}

func (apiCache) TableName() string { return "api_cache" }

// GormStore persists cache entries in a relational table so catalog
// snapshots survive restarts.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a database connection. It migrates the cache
// table on first use.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&apiCache{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (*Entry, error) {
	var row apiCache
	err := s.db.WithContext(ctx).First(&row, "cache_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Entry{Key: row.CacheKey, Value: row.Data, ExpiresAt: row.ExpiresAt}, nil
}

func (s *GormStore) Put(ctx context.Context, entry Entry) error {
	row := apiCache{CacheKey: entry.Key, Data: entry.Value, ExpiresAt: entry.ExpiresAt}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&apiCache{}, "cache_key = ?", key).Error
}
