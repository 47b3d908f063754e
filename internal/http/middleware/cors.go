package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"docqa/internal/config"
)

// CORS allows browser calls from the configured origins with credentials.
// A wildcard origin disables credentials, which browsers reject together.
func CORS(cfg config.CORSConfig) fiber.Handler {
	origins := strings.Join(cfg.AllowedOrigins, ",")
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept," + RequestIDHeader,
		ExposeHeaders:    RequestIDHeader,
		AllowCredentials: !strings.Contains(origins, "*"),
	})
}
