package kv

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Backend is the raw string-keyed persistence surface behind typed stores.
// Implementations substitute for the browser's local storage: a sqlite
// table in production, an in-memory map in tests.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// GormBackend persists entries through the shared GORM connection.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend binds the backend to the provided DB handle.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Get fetches the value stored under key.
func (b *GormBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := b.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set writes value under key, replacing any previous value. Last writer
// wins at whole-value granularity.
func (b *GormBackend) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}

// Delete removes the entry under key entirely. Deleting a missing key is a
// no-op.
func (b *GormBackend) Delete(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error
}
