package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error dari handler (biasanya *fiber.Error) menjadi response
// yang konsisten: JSON untuk /api, redirect/halaman error untuk browser.
// Jika bukan *fiber.Error, fallback ke 500 dengan pesan asli.
func FromFiberError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if IsFormPost(c) {
		back := c.Get(fiber.HeaderReferer)
		if back == "" {
			back = "/"
		}
		return RedirectError(c, back, message)
	}

	if strings.HasPrefix(c.Path(), "/pages") {
		return c.Status(code).Render("error", fiber.Map{
			"Code":    code,
			"Message": message,
		})
	}
	return JsonError(c, code, message)
}
