package container

import (
	"context"

	"github.com/gin-gonic/gin"

	"sheetdesk/adapters/excel"
	"sheetdesk/adapters/memory"
	"sheetdesk/internal"
	"sheetdesk/internal/api"
	"sheetdesk/internal/config"
	"sheetdesk/internal/metrics"
	"sheetdesk/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Repositories (data access layer)
	UserRepo ports.UserRepository

	// Spreadsheet parsing
	WorkbookReader ports.WorkbookReader

	// HTTP
	Server *api.Server
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	gin.SetMode(cfg.Server.GinMode)

	c := &Container{
		Config: cfg,
		Logger: internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level), cfg.Log.File),
	}

	c.initRepositories()
	c.initReaders()
	c.initServer()

	c.Logger.Debug("[Container] initialized (gin mode %s, upload cap %d bytes)", cfg.Server.GinMode, cfg.Upload.MaxBytes)
	return c, nil
}

// initRepositories creates the in-memory credential registry. It starts empty on every boot.
func (c *Container) initRepositories() {
	c.UserRepo = memory.NewUserRepository()
	metrics.SetRegisteredUsers(0)
}

func (c *Container) initReaders() {
	c.WorkbookReader = excel.NewReader(c.Logger)
}

func (c *Container) initServer() {
	metricsPath := ""
	if c.Config.Metrics.Enabled {
		metricsPath = c.Config.Metrics.Path
	}

	c.Server = api.NewServer(api.Options{
		Users:          c.UserRepo,
		Reader:         c.WorkbookReader,
		Logger:         c.Logger,
		MaxUploadBytes: c.Config.Upload.MaxBytes,
		MetricsPath:    metricsPath,
	})
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.Info("[Container] shutting down")
	// stdout cannot be synced on some platforms; that is not worth failing shutdown over
	_ = c.Logger.Sync()
	return ctx.Err()
}
