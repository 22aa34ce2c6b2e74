package app

import (
	"fmt"
	"log/slog"

	"github.com/parkhaven/userdir/internal/directory/service"
	"github.com/parkhaven/userdir/internal/directory/store"
	"github.com/parkhaven/userdir/internal/directory/store/drivers/sqlite"
	"github.com/parkhaven/userdir/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the store and the services together with an explicit
// lifecycle: the store connection is opened (and migrated) in New and
// released in Close. Services receive the store by injection; there is no
// package-level store handle anywhere.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	Users     *service.UsersService
	Addresses *service.AddressesService
}

// New creates an Application with an open, migrated store and all services
// initialized. The caller owns the returned Application and must Close it.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "userdir",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	app.db = db
	app.Users = &service.UsersService{Store: db}
	app.Addresses = &service.AddressesService{Store: db}

	app.logger.Info("store ready", "database", cfg.DatabaseFile)
	return app, nil
}

// Logger exposes the application logger for the CLI entrypoint.
func (app *Application) Logger() *slog.Logger { return app.logger }

// Close releases the store connection. Call once at shutdown.
func (app *Application) Close() error { return app.db.Close() }
