package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. db may be nil
// when the activity ledger is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.DocumentService, env Env) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/readyz", Readiness(db, env))

	app.Post("/upload", Upload(svc, env))

	api := app.Group("/api")
	api.Get("/health", Health(env))
	api.Get("/stats", Stats(svc, env))
	api.Get("/activity", ListActivity(svc, env))
	api.Post("/ask", Ask(svc, env))
}
