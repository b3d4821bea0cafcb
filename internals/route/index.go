// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/logger"
	authMiddleware "coachingku_backend/internals/middlewares/auth"
	routeDetails "coachingku_backend/internals/route/details"
	"coachingku_backend/internals/store"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, st *store.Store) *routeDetails.Services {
	startTime = time.Now()

	svcs := routeDetails.NewServices(st)
	reg := svcs.Registry()

	api := app.Group("/api")
	// writes (and cache control) need a staff session once auth is configured
	guard := authMiddleware.RequireStaff()

	logger.L.Info("Setting up base routes...")
	BaseRoutes(app, api, guard, st)

	logger.L.Info("Setting up auth routes...")
	routeDetails.AuthRoutes(api, svcs)

	logger.L.Info("Mounting page routes...")
	routeDetails.PageRoutes(app, api, svcs, reg)

	logger.L.Info("Mounting staff routes...")
	routeDetails.StaffRoutes(api, svcs, guard)

	return svcs
}
