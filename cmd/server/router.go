package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pulsard/pulsard-api/internal/api"
	apiMiddleware "github.com/pulsard/pulsard-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware. Identity resolution runs on every request and never
// rejects: handlers see an anonymous identity when no valid credential
// was presented.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	identityMiddleware := apiMiddleware.NewIdentityMiddleware(
		app.resolver,
		apiMiddleware.FirstOf(
			apiMiddleware.FromCookie(apiMiddleware.TokenCookieName),
			apiMiddleware.FromBearerHeader(),
		),
	)

	authHandler := api.NewAuthHandler(app.userService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	scanHandler := api.NewScanHandler(app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(identityMiddleware.Resolve)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/users", userHandler.List)

		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/subscribe", taskHandler.Subscribe)

		r.Post("/scan", scanHandler.Scan)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
