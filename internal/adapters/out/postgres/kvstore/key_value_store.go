// Package kvstore implements the whole-value key-value port on PostgreSQL.
// Each key is one row; a write replaces the row's value in a single upsert,
// which keeps the backing's last-write-wins semantics.
package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryDTO represents one stored key-value pair.
type EntryDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}

// TableName overrides GORM's default naming convention.
func (EntryDTO) TableName() string {
	return "kv_entries"
}

// GormKeyValueStore implements the key-value port using GORM.
type GormKeyValueStore struct {
	db *gorm.DB
}

// NewGormKeyValueStore creates a store backed by the given database handle.
func NewGormKeyValueStore(db *gorm.DB) *GormKeyValueStore {
	return &GormKeyValueStore{db: db}
}

// Get retrieves the value stored under key. A missing row is reported via
// the boolean, not as an error.
func (s *GormKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var dto EntryDTO
	if err := s.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return dto.Value, true, nil
}

// Set replaces the whole value stored under key, inserting the row when it
// does not exist yet.
func (s *GormKeyValueStore) Set(ctx context.Context, key string, value string) error {
	dto := EntryDTO{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}
