package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is the backing table for the GORM backend. AutoMigrate it at
// startup alongside the rest of the schema.
type KVRecord struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

type gormBackend struct {
	db *gorm.DB
}

// NewGormBackend stores blobs in a kv_records table.
func NewGormBackend(db *gorm.DB) Backend {
	return &gormBackend{db: db}
}

func (b *gormBackend) Get(key string) ([]byte, error) {
	var rec KVRecord
	if err := b.db.First(&rec, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (b *gormBackend) Put(key string, value []byte) error {
	rec := KVRecord{Key: key, Value: value}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (b *gormBackend) Del(key string) error {
	err := b.db.Delete(&KVRecord{}, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
