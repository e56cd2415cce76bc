// Package backup writes encrypted copies of the full export document to disk
// and restores them through the store's import path.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"household-ledger/internal/logger"
	"household-ledger/internal/models"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("backup: not found")

// Service 负责备份文件及其数据库记录
type Service struct {
	DB         *gorm.DB
	Store      *store.Store
	EncryptKey string
	Dir        string
	log        logger.Logger
}

func NewService(db *gorm.DB, st *store.Store, encryptKey, dir string) *Service {
	return &Service{
		DB:         db,
		Store:      st,
		EncryptKey: encryptKey,
		Dir:        dir,
		log:        logger.Backup(),
	}
}

// Create 生成当前全部数据的加密备份文件
func (s *Service) Create(ctx context.Context, note string) (*models.Backup, error) {
	raw, err := json.MarshalIndent(s.Store.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	enc, err := util.EncryptAES(s.EncryptKey, raw)
	if err != nil {
		return nil, fmt.Errorf("encrypt backup: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	// uuid + 日期作为文件名
	id := uuid.New().String()
	fileName := fmt.Sprintf("backup-%s-%s.bin", time.Now().Format("20060102"), id)
	filePath := filepath.Join(s.Dir, fileName)

	if err := os.WriteFile(filePath, enc, 0o600); err != nil {
		return nil, fmt.Errorf("write backup file: %w", err)
	}

	b := models.Backup{
		ID:       id,
		FileName: fileName,
		FilePath: filePath,
		Size:     int64(len(enc)),
		Note:     note,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		_ = os.Remove(filePath)
		return nil, fmt.Errorf("save backup record: %w", err)
	}

	s.log.Info().Str("id", id).Int64("size", b.Size).Msg("backup created")
	return &b, nil
}

// List 按时间倒序列出备份
func (s *Service) List(ctx context.Context) ([]models.Backup, error) {
	var list []models.Backup
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Backup, error) {
	var b models.Backup
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query backup: %w", err)
	}
	return &b, nil
}

// Read returns the decrypted export document of a backup.
func (s *Service) Read(ctx context.Context, id string) ([]byte, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	encData, err := os.ReadFile(b.FilePath)
	if err != nil {
		return nil, fmt.Errorf("read backup file: %w", err)
	}
	raw, err := util.DecryptAES(s.EncryptKey, encData)
	if err != nil {
		return nil, fmt.Errorf("decrypt backup file: %w", err)
	}
	return raw, nil
}

// Restore 用备份内容整体替换当前数据
func (s *Service) Restore(ctx context.Context, id string) error {
	raw, err := s.Read(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.Import(ctx, raw); err != nil {
		return fmt.Errorf("restore backup %s: %w", id, err)
	}
	s.log.Info().Str("id", id).Msg("backup restored")
	return nil
}

// Delete 先删文件，再删记录
func (s *Service) Delete(ctx context.Context, id string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := os.Remove(b.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove backup file: %w", err)
	}
	if err := s.DB.WithContext(ctx).Delete(b).Error; err != nil {
		return fmt.Errorf("delete backup record: %w", err)
	}
	return nil
}
