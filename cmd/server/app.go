package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pulsard/pulsard-api/internal/config"
	"github.com/pulsard/pulsard-api/internal/events"
	"github.com/pulsard/pulsard-api/internal/platform/memstore"
	"github.com/pulsard/pulsard-api/internal/platform/postgres"
	"github.com/pulsard/pulsard-api/internal/service"
	"github.com/pulsard/pulsard-api/internal/service/auth"
	"github.com/pulsard/pulsard-api/internal/service/identity"
	"github.com/pulsard/pulsard-api/internal/store"
	"github.com/pulsard/pulsard-api/internal/task"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db        *sql.DB // nil when running on the in-memory store
	userStore store.UserStore
	tokens    auth.TokenAuthority
	resolver  *identity.Resolver
	bus       *events.Bus

	userService *service.UserService
	taskService *service.TaskService
}

// newApplication builds the dependency graph: stores, token authority,
// identity resolver, event bus, and the services on top of them.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
	}

	if cfg.Database.URL != "" {
		db, err := setupDatabase(cfg, log)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, log); err != nil {
			return nil, err
		}
		app.db = db
		app.userStore = postgres.NewUserStore(db)
	} else {
		log.Warn("no database configured, using in-memory user store")
		app.userStore = memstore.NewUserStore()
	}

	tokens, err := auth.NewTokenAuthority(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token authority: %w", err)
	}
	app.tokens = tokens

	app.resolver = identity.NewResolver(tokens, app.userStore, log)
	app.bus = events.NewBus(cfg.Events.SubscriberBuffer, log)

	registry := task.NewRegistry()
	app.taskService = service.NewTaskService(registry, app.bus, log)
	app.userService = service.NewUserService(app.userStore, tokens, auth.NewBcryptVerifier(), log)

	return app, nil
}

// cleanup releases the application's long-lived resources during shutdown:
// the event bus is drained first so every open subscription terminates,
// then the database connection is closed.
func (app *application) cleanup() {
	app.bus.Close()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
