package models

import "time"

// SnapshotVersion is written into every persisted snapshot and export.
const SnapshotVersion = 1

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Household holds the non-financial collections.
type Household struct {
	Tasks     []Task         `json:"tarefas"`
	Lists     []ShoppingList `json:"listas"`
	Items     []ShoppingItem `json:"itens"`
	Events    []Event        `json:"eventos"`
	Reminders []Reminder     `json:"lembretes"`
}

// Finance holds transactions, categories and goals.
type Finance struct {
	Transactions []Transaction `json:"transacoes"`
	Categories   []Category    `json:"categorias"`
	Goals        []Goal        `json:"metas"`
}

// HouseholdSnapshot is the persisted form of Household.
type HouseholdSnapshot struct {
	Version int `json:"version"`
	Household
}

type FinanceSnapshot struct {
	Version int `json:"version"`
	Finance
}

type ThemeSnapshot struct {
	Version int   `json:"version"`
	Theme   Theme `json:"theme"`
}

// ExportDocument 完整导出文件格式
type ExportDocument struct {
	Version     int           `json:"version"`
	GeneratedAt time.Time     `json:"generated_at"`
	App         Household     `json:"app"`
	Finance     Finance       `json:"finance"`
	Theme       ThemeSnapshot `json:"theme"`
}

// SnapshotRecord stores one persisted domain under its key.
type SnapshotRecord struct {
	Key       string `gorm:"primaryKey;size:64;column:snapshot_key"`
	Data      []byte `gorm:"not null"`
	Encrypted bool   `gorm:"not null;default:false"`
	UpdatedAt time.Time
}

func (SnapshotRecord) TableName() string { return "snapshots" }

// Backup 加密备份文件的元数据
type Backup struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FilePath  string    `gorm:"size:1024;not null" json:"-"`
	Size      int64     `json:"size"`
	Note      string    `gorm:"size:255" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
