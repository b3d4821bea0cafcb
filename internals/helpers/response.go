package helper

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/store"
)

// IsFormPost: request datang dari <form> HTML (bukan API client JSON)
func IsFormPost(c *fiber.Ctx) bool {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

// ✅ Balik ke halaman asal dengan pesan sukses
func RedirectNotice(c *fiber.Ctx, back, message string) error {
	return c.Redirect(withQuery(back, "notice", message), fiber.StatusSeeOther)
}

// ❌ Balik ke halaman asal dengan pesan error
func RedirectError(c *fiber.Ctx, back, message string) error {
	return c.Redirect(withQuery(back, "error", message), fiber.StatusSeeOther)
}

// MutationOK: form → redirect + notice, JSON → envelope sukses
func MutationOK(c *fiber.Ctx, back string, status int, message string, data any) error {
	if IsFormPost(c) {
		return RedirectNotice(c, back, message)
	}
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// MutationError: form → redirect + error, JSON → JsonError
func MutationError(c *fiber.Ctx, back string, status int, message string) error {
	if IsFormPost(c) {
		return RedirectError(c, back, message)
	}
	return JsonError(c, status, message)
}

// MutationInvalid: form → redirect dengan ringkasan validasi, JSON → 422
func MutationInvalid(c *fiber.Ctx, back string, fields map[string][]string) error {
	if IsFormPost(c) {
		return RedirectError(c, back, ValidationSummary(fields))
	}
	return JsonValidationError(c, fields)
}

// LocalPage mengembalikan ref hanya kalau menunjuk ke /pages/... di host yang sama
// (misalnya header Referer); selain itu fallback, jadi redirect tidak bisa keluar situs
func LocalPage(c *fiber.Ctx, ref, fallback string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil {
		return fallback
	}
	if u.Scheme != "" || u.Host != "" {
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host != c.Hostname() {
			return fallback
		}
	}
	if !strings.HasPrefix(u.Path, "/pages/") {
		return fallback
	}
	out := u.EscapedPath()
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}

func withQuery(path, key, value string) string {
	if path == "" {
		path = "/"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + key + "=" + url.QueryEscape(value)
}

// StatusForError memetakan kegagalan DB ke HTTP status
func StatusForError(err error) int {
	switch store.Classify(err) {
	case store.FailureConnectivity:
		return fiber.StatusServiceUnavailable
	case store.FailureValidation:
		return fiber.StatusUnprocessableEntity
	case store.FailureEmpty:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
