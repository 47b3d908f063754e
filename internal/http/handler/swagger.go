package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"docqa/docs"
)

// RegisterSwagger mounts the Swagger UI at /swagger. The document info is set
// once here; an empty host makes the UI call whichever host served it.
func RegisterSwagger(app *fiber.App, host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = nil

	app.Get("/swagger/*", swagger.HandlerDefault)
}
