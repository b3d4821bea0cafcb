package details

import (
	attendanceService "coachingku_backend/internals/features/attendance/service"
	authService "coachingku_backend/internals/features/auth/service"
	courseService "coachingku_backend/internals/features/courses/service"
	dashboardService "coachingku_backend/internals/features/dashboard/service"
	facultyService "coachingku_backend/internals/features/faculty/service"
	feeService "coachingku_backend/internals/features/fees/service"
	leadService "coachingku_backend/internals/features/leads/service"
	resultService "coachingku_backend/internals/features/results/service"
	roomService "coachingku_backend/internals/features/rooms/service"
	studentService "coachingku_backend/internals/features/students/service"
	tableService "coachingku_backend/internals/features/tables/service"

	"coachingku_backend/internals/configs"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
)

// Services holds one service per navigation destination, all sharing the same store.
type Services struct {
	Dashboard  *dashboardService.DashboardService
	Students   *studentService.StudentService
	Courses    *courseService.CourseService
	Attendance *attendanceService.AttendanceService
	Fees       *feeService.FeeService
	Leads      *leadService.LeadService
	Results    *resultService.ResultService
	Faculty    *facultyService.FacultyService
	Rooms      *roomService.RoomService
	Tables     *tableService.TableService
	Auth       *authService.AuthService
}

func NewServices(st *store.Store) *Services {
	return &Services{
		Dashboard:  dashboardService.NewDashboardService(st),
		Students:   studentService.NewStudentService(st),
		Courses:    courseService.NewCourseService(st),
		Attendance: attendanceService.NewAttendanceService(st),
		Fees:       feeService.NewFeeService(st),
		Leads:      leadService.NewLeadService(st),
		Results:    resultService.NewResultService(st),
		Faculty:    facultyService.NewFacultyService(st),
		Rooms:      roomService.NewRoomService(st),
		Tables:     tableService.NewTableService(st),
		Auth:       authService.NewAuthService(configs.AdminUsername, configs.AdminPasswordHash, configs.JWTSecret),
	}
}

// Registry lists the pages in navigation order.
func (s *Services) Registry() *page.Registry {
	return page.NewRegistry(
		s.Dashboard,
		s.Students,
		s.Courses,
		s.Attendance,
		s.Fees,
		s.Leads,
		s.Results,
		s.Faculty,
		s.Rooms,
		s.Tables,
	)
}
