package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/configs"
	reqlogger "coachingku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global: recover → cors → access log → limiter
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(reqlogger.LoggerMiddleware())
	app.Use(GlobalRateLimiter(configs.RateLimitPerMinute))
}
