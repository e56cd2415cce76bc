package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"household-ledger/internal/models"
	"household-ledger/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLBackend keeps snapshots in the snapshots table. With a non-empty
// encryption key the payload is sealed with AES-GCM before it is written.
type SQLBackend struct {
	DB         *gorm.DB
	EncryptKey string
}

func NewSQLBackend(db *gorm.DB, encryptKey string) *SQLBackend {
	return &SQLBackend{DB: db, EncryptKey: encryptKey}
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var rec models.SnapshotRecord
	err := b.DB.WithContext(ctx).Where("snapshot_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot %q: %w", key, err)
	}

	if !rec.Encrypted {
		return rec.Data, nil
	}
	if b.EncryptKey == "" {
		return nil, fmt.Errorf("snapshot %q is encrypted but no key is configured", key)
	}
	plain, err := util.DecryptAES(b.EncryptKey, rec.Data)
	if err != nil {
		return nil, fmt.Errorf("decrypt snapshot %q: %w", key, err)
	}
	return plain, nil
}

func (b *SQLBackend) Put(ctx context.Context, key string, data []byte) error {
	rec := models.SnapshotRecord{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	if b.EncryptKey != "" {
		enc, err := util.EncryptAES(b.EncryptKey, data)
		if err != nil {
			return fmt.Errorf("encrypt snapshot %q: %w", key, err)
		}
		rec.Data = enc
		rec.Encrypted = true
	}

	err := b.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "encrypted", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Delete(ctx context.Context, key string) error {
	if err := b.DB.WithContext(ctx).Where("snapshot_key = ?", key).Delete(&models.SnapshotRecord{}).Error; err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}
