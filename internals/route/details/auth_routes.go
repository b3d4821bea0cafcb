package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "coachingku_backend/internals/features/auth/route"
)

func AuthRoutes(api fiber.Router, svcs *Services) {
	authRoute.AuthRoutes(api, svcs.Auth)
}
