package route

import (
	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/auth/controller"
	"coachingku_backend/internals/features/auth/service"
	"coachingku_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, svc *service.AuthService) {
	ctl := controller.NewAuthController(svc)

	g := api.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Post("/logout", ctl.Logout)
}
