package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/features/auth/dto"
	"coachingku_backend/internals/features/auth/service"
	helper "coachingku_backend/internals/helpers"
	"coachingku_backend/internals/logger"
)

const back = "/pages/dashboard"

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.MutationError(c, back, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.MutationInvalid(c, back, errs)
	}

	out, err := ac.Svc.Login(req)
	switch {
	case errors.Is(err, service.ErrAuthDisabled):
		return helper.MutationError(c, back, fiber.StatusNotFound, "Staff login is not enabled")
	case errors.Is(err, service.ErrInvalidCredentials):
		logger.L.Warnw("staff login rejected", "username", req.Username, "ip", c.IP())
		return helper.MutationError(c, back, fiber.StatusUnauthorized, "Invalid username or password")
	case err != nil:
		logger.L.Errorw("staff login failed", "error", err)
		return helper.MutationError(c, back, fiber.StatusInternalServerError, "Failed to create access token")
	}

	setAccessCookie(c, out.AccessToken, time.Unix(out.ExpiresAt, 0))
	logger.L.Infow("staff signed in", "username", out.UserName)
	return helper.MutationOK(c, back, fiber.StatusOK, "Signed in", out)
}

// POST /api/auth/logout. Idempotent: clears the cookie whether or not one was set.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	setAccessCookie(c, "", time.Now().Add(-time.Hour))
	return helper.MutationOK(c, back, fiber.StatusOK, "Signed out", nil)
}

func setAccessCookie(c *fiber.Ctx, token string, expires time.Time) {
	ck := &fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  expires,
	}
	if token == "" {
		ck.MaxAge = -1
	}
	c.Cookie(ck)
}
