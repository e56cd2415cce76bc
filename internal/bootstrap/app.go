// Package bootstrap wires configuration, storage and services into an App
// shared by the server and the maintenance commands.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"household-ledger/internal/backup"
	"household-ledger/internal/config"
	"household-ledger/internal/database"
	"household-ledger/internal/logger"
	"household-ledger/internal/remote"
	"household-ledger/internal/router"
	"household-ledger/internal/storage"
	"household-ledger/internal/store"
	"household-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Store   *store.Store
	Backups *backup.Service
	// Remote is nil unless remote.project_id is set.
	Remote *remote.Client
}

func NewApp(cfg *config.Config) *App {
	return &App{Config: cfg}
}

// Initialize opens the database and loads the three snapshots. A remote
// client that fails to connect is logged and left nil.
func (a *App) Initialize(ctx context.Context) error {
	cfg := a.Config
	if err := logger.InitLogging(cfg.Log.File, cfg.Log.Level); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	a.DB = db

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	backend := storage.NewSQLBackend(db, cfg.Security.EncryptionKey)
	a.Store = store.New(backend, store.WithKeys(store.Keys{
		App:     cfg.Storage.AppKey,
		Finance: cfg.Storage.FinanceKey,
		Theme:   cfg.Storage.ThemeKey,
	}))
	if err := a.Store.Open(ctx); err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	a.Backups = backup.NewService(db, a.Store, cfg.Security.EncryptionKey, cfg.Backup.Dir)

	if cfg.Remote.ProjectID != "" {
		client, err := remote.NewClient(ctx, cfg.Remote.ProjectID, cfg.Remote.HouseholdID)
		if err != nil {
			logger.ErrorLog(ctx, "failed to initialize remote client: %v", err)
		} else {
			a.Remote = client
		}
	}

	if cfg.AuthEnabled() && cfg.Auth.JWTSecret == "" {
		secret, err := util.RandomString(48)
		if err != nil {
			return fmt.Errorf("generate jwt secret: %w", err)
		}
		cfg.Auth.JWTSecret = secret
		logger.WarnLog(ctx, "auth.jwt_secret is empty, tokens will not survive a restart")
	}

	logger.InfoLog(ctx, "application initialized, database %s", cfg.Database.Path)
	return nil
}

// Router builds the HTTP API on top of the initialized services.
func (a *App) Router() *gin.Engine {
	return router.SetupRouter(a.Config, router.Deps{
		Store:   a.Store,
		Backups: a.Backups,
		Remote:  a.Remote,
	})
}

func (a *App) Close() error {
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.Remote != nil {
		errs = append(errs, a.Remote.Close())
	}
	errs = append(errs, database.Close(a.DB))
	return errors.Join(errs...)
}
