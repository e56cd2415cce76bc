package router

import (
	"net/http"

	"household-ledger/internal/backup"
	"household-ledger/internal/config"
	"household-ledger/internal/handler"
	"household-ledger/internal/middleware"
	"household-ledger/internal/remote"
	"household-ledger/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the services the API is built on. Remote may be nil.
type Deps struct {
	Store   *store.Store
	Backups *backup.Service
	Remote  *remote.Client
	Now     handler.Clock
}

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ====== API ======
	api := r.Group("/api")

	// 口令换 token（不需要鉴权）
	authHandler := handler.NewAuthHandler(cfg.Auth.PassphraseHash, cfg.Auth.JWTSecret, cfg.Auth.ExpireHours)
	api.POST("/auth/token", authHandler.IssueToken)

	// 未设置口令时全部开放
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret, cfg.AuthEnabled()))

	dashboardHandler := handler.NewDashboardHandler(deps.Store, deps.Now)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	taskHandler := handler.NewTaskHandler(deps.Store, deps.Now)
	protected.GET("/tasks", taskHandler.ListTasks)
	protected.POST("/tasks", taskHandler.CreateTask)
	protected.PUT("/tasks/:id", taskHandler.UpdateTask)
	protected.DELETE("/tasks/:id", taskHandler.DeleteTask)
	protected.POST("/tasks/:id/toggle", taskHandler.ToggleTask)
	protected.POST("/tasks/:id/income", taskHandler.RecordIncome)

	shoppingHandler := handler.NewShoppingHandler(deps.Store)
	protected.GET("/shopping/lists", shoppingHandler.ListLists)
	protected.POST("/shopping/lists", shoppingHandler.CreateList)
	protected.PUT("/shopping/lists/:id", shoppingHandler.RenameList)
	protected.DELETE("/shopping/lists/:id", shoppingHandler.DeleteList)
	protected.POST("/shopping/lists/:id/duplicate", shoppingHandler.DuplicateList)
	protected.GET("/shopping/lists/:id/items", shoppingHandler.ListItems)
	protected.POST("/shopping/lists/:id/items", shoppingHandler.CreateItem)
	protected.PUT("/shopping/items/:id", shoppingHandler.UpdateItem)
	protected.POST("/shopping/items/:id/toggle", shoppingHandler.ToggleItem)
	protected.POST("/shopping/items/:id/purchase", shoppingHandler.PurchaseItem)
	protected.DELETE("/shopping/items/:id", shoppingHandler.DeleteItem)

	agendaHandler := handler.NewAgendaHandler(deps.Store, deps.Now)
	protected.GET("/events", agendaHandler.ListEvents)
	protected.POST("/events", agendaHandler.CreateEvent)
	protected.PUT("/events/:id", agendaHandler.UpdateEvent)
	protected.DELETE("/events/:id", agendaHandler.DeleteEvent)
	protected.GET("/reminders", agendaHandler.ListReminders)
	protected.POST("/reminders", agendaHandler.CreateReminder)
	protected.PUT("/reminders/:id", agendaHandler.UpdateReminder)
	protected.DELETE("/reminders/:id", agendaHandler.DeleteReminder)

	financeHandler := handler.NewFinanceHandler(deps.Store, deps.Now)
	protected.GET("/finance/summary", financeHandler.GetSummary)
	protected.GET("/finance/transactions", financeHandler.ListTransactions)
	protected.POST("/finance/transactions", financeHandler.CreateTransaction)
	protected.PUT("/finance/transactions/:id", financeHandler.UpdateTransaction)
	protected.DELETE("/finance/transactions/:id", financeHandler.DeleteTransaction)
	protected.GET("/finance/categories", financeHandler.ListCategories)
	protected.POST("/finance/categories", financeHandler.CreateCategory)
	protected.PUT("/finance/categories/:id", financeHandler.UpdateCategory)
	protected.DELETE("/finance/categories/:id", financeHandler.DeleteCategory)
	protected.GET("/finance/goals", financeHandler.ListGoals)
	protected.POST("/finance/goals", financeHandler.CreateGoal)
	protected.PUT("/finance/goals/:id", financeHandler.UpdateGoal)
	protected.POST("/finance/goals/:id/progress", financeHandler.UpdateGoalProgress)
	protected.POST("/finance/goals/:id/status", financeHandler.SetGoalStatus)
	protected.DELETE("/finance/goals/:id", financeHandler.DeleteGoal)

	importExportHandler := handler.NewImportExportHandler(deps.Store, deps.Now)
	protected.GET("/export/csv", importExportHandler.ExportCSV)
	protected.GET("/export/xlsx", importExportHandler.ExportXLSX)

	settingsHandler := handler.NewSettingsHandler(deps.Store, deps.Now)
	protected.GET("/settings/export", settingsHandler.Export)
	protected.POST("/settings/import", settingsHandler.Import)
	protected.POST("/settings/reset", settingsHandler.Reset)
	protected.GET("/settings/theme", settingsHandler.GetTheme)
	protected.PUT("/settings/theme", settingsHandler.SetTheme)
	protected.POST("/settings/theme/toggle", settingsHandler.ToggleTheme)

	if deps.Backups != nil {
		backupHandler := handler.NewBackupHandler(deps.Backups)
		protected.POST("/backups", backupHandler.CreateBackup)
		protected.GET("/backups", backupHandler.ListBackups)
		protected.GET("/backups/:id/download", backupHandler.DownloadBackup)
		protected.POST("/backups/:id/restore", backupHandler.RestoreBackup)
		protected.DELETE("/backups/:id", backupHandler.DeleteBackup)
	}

	remoteHandler := handler.NewRemoteHandler(deps.Remote)
	protected.GET("/remote/tasks", remoteHandler.ListTasks)
	protected.POST("/remote/tasks", remoteHandler.CreateTask)
	protected.PUT("/remote/tasks/:id", remoteHandler.UpdateTask)
	protected.DELETE("/remote/tasks/:id", remoteHandler.DeleteTask)
	protected.GET("/remote/items", remoteHandler.ListItems)
	protected.POST("/remote/items", remoteHandler.CreateItem)
	protected.PUT("/remote/items/:id", remoteHandler.UpdateItem)
	protected.DELETE("/remote/items/:id", remoteHandler.DeleteItem)

	return r
}
