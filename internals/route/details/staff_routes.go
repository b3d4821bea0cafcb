package details

import (
	"github.com/gofiber/fiber/v2"

	attendanceRoute "coachingku_backend/internals/features/attendance/route"
	courseRoute "coachingku_backend/internals/features/courses/route"
	feeRoute "coachingku_backend/internals/features/fees/route"
	leadRoute "coachingku_backend/internals/features/leads/route"
	studentRoute "coachingku_backend/internals/features/students/route"
)

// StaffRoutes mounts every mutation with guard in front. Guards are attached per
// feature group so the read routes sharing /api stay public.
func StaffRoutes(api fiber.Router, svcs *Services, guard fiber.Handler) {
	studentRoute.StudentRoutes(api, svcs.Students, guard)
	courseRoute.CourseRoutes(api, svcs.Courses, guard)
	attendanceRoute.AttendanceRoutes(api, svcs.Attendance, guard)
	feeRoute.FeeRoutes(api, svcs.Fees, guard)
	leadRoute.LeadRoutes(api, svcs.Leads, guard)
}
