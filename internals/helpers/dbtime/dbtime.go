// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"coachingku_backend/internals/configs"
)

// Disimpan di locals supaya LoadLocation cukup sekali per request
const LocInstituteLoc = "institute_loc"

const fallbackZone = "Asia/Kolkata"

// InstituteLocation mengembalikan zona waktu institut:
// 1) c.Locals("institute_loc") kalau sudah pernah di-resolve
// 2) APP_TIMEZONE dari config
// 3) Fallback: Asia/Kolkata
// 4) Fallback terakhir: time.UTC
func InstituteLocation(c *fiber.Ctx) *time.Location {
	if c != nil {
		if loc, ok := c.Locals(LocInstituteLoc).(*time.Location); ok && loc != nil {
			return loc
		}
	}

	loc := Location(configs.Timezone)
	if c != nil {
		c.Locals(LocInstituteLoc, loc)
	}
	return loc
}

// Location resolves name, falling back to Asia/Kolkata and then UTC.
func Location(name string) *time.Location {
	if name = strings.TrimSpace(name); name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(fallbackZone); err == nil {
		return loc
	}
	return time.UTC
}

// NowInInstitute is "now" on the institute's wall clock. Form defaults such as
// "today" are derived from it, so a late-evening entry lands on the local date.
func NowInInstitute(c *fiber.Ctx) time.Time {
	return time.Now().In(InstituteLocation(c))
}
