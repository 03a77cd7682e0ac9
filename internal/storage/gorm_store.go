package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dream/internal/models"
)

// GormStore is a KV backed by the kv_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on an already migrated database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get loads the blob stored under key.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set inserts or replaces the blob stored under key.
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	now := time.Now().UTC()
	entry := models.KVEntry{Key: key, Value: value, CreatedAt: now, UpdatedAt: now}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
