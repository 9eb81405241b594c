package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"promo_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global chain. Order matters: recovery first
// so later handlers can panic safely, logging last so it sees the status.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(requestid.New())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(logger.LoggerMiddleware())
}
