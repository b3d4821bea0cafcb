package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/configs"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/logger"
	"coachingku_backend/internals/store"
)

func BaseRoutes(app *fiber.App, api fiber.Router, guard fiber.Handler, st *store.Store) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/pages/dashboard", fiber.StatusFound)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := st.Ping(c.UserContext()); err != nil {
			dbStatus = "Database connection error: " + err.Error()
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"db_driver":      st.Dialect(),
			"cache":          st.Cache().Name(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"app":            configs.AppName,
		})
	})

	// POST /api/cache/clear
	api.Post("/cache/clear", guard, func(c *fiber.Ctx) error {
		if err := st.ClearCache(c.UserContext()); err != nil {
			logger.L.Errorw("cache clear failed", "error", err)
			return helper.MutationError(c, "/pages/dashboard", fiber.StatusServiceUnavailable, "Error clearing cache: "+err.Error())
		}
		logger.L.Info("cache cleared on request")
		back := helper.LocalPage(c, c.Get(fiber.HeaderReferer), "/pages/dashboard")
		return helper.MutationOK(c, back, fiber.StatusOK, "Cache cleared.", nil)
	})
}
