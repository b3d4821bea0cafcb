package service

import (
	"context"
	"fmt"
	"time"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/features/attendance/dto"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	Table = "attendance"

	ChartDailyPresent = "daily_present"
)

type AttendanceService struct {
	st  *store.Store
	now func() time.Time
}

func NewAttendanceService(st *store.Store) *AttendanceService {
	return &AttendanceService{st: st, now: time.Now}
}

func (s *AttendanceService) Key() string   { return "attendance" }
func (s *AttendanceService) Title() string { return "Attendance" }

func (s *AttendanceService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Attendance")
	if n, ok := page.Notice(params); ok {
		p.Add(n)
	}

	t, err := s.st.Table(ctx, Table)
	switch {
	case err != nil:
		p.Add(page.Error("Error loading attendance table", err))
	case t.Empty():
		p.Add(page.Info("Attendance table is empty."))
	default:
		var f page.Filter
		var ok bool
		if t, f, ok = page.Select(t, params, "student_id", "student_id", "Filter by student ID"); ok {
			p.AddFilter(f)
		}
		if t, f, ok = page.DateRange(t, params, "date", "attendance_date", "Date range"); ok {
			p.AddFilter(f)
		}

		p.Add(page.TableSection("Attendance", fmt.Sprintf("Showing %d attendance records", t.Len()), t))
		p.Add(page.ChartOrInfo(dailyPresent(t), "No 'Present' records to show trend."))
	}

	p.Add(s.form())
	return p
}

// dailyPresent counts rows whose status is exactly "Present" per calendar day, oldest first.
func dailyPresent(t tabular.Table) charts.Chart {
	col, ok := t.Column("status")
	if !ok {
		return charts.Chart{Key: ChartDailyPresent}
	}
	present := t.Where(func(r tabular.Row) bool {
		return tabular.String(r[col]) == "Present"
	})
	groups := present.GroupByFunc("attendance_date", func(v any) (string, bool) {
		ts, ok := tabular.Time(v)
		if !ok {
			return "", false
		}
		return ts.Format(tabular.DateLayout), true
	}, "", tabular.Count)
	return charts.FromGroups(ChartDailyPresent, "Daily Present Count", charts.Line, "present_count", groups)
}

func (s *AttendanceService) form() page.Section {
	return page.FormSection(page.Form{
		Key: "mark_attendance", Title: "Mark Attendance", Action: "/api/attendance", Method: "POST", Submit: "Save Attendance",
		Fields: []page.Field{
			page.Text("student_id", "Student ID", true),
			page.Date("attendance_date", "Date", s.now().Format(tabular.DateLayout)),
			page.Choice("status", "Status", dto.Statuses),
		},
	})
}

func (s *AttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table,
		"INSERT INTO attendance (student_id, attendance_date, status) VALUES (?, ?, ?)", req.Args()...)
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error saving attendance: %w", err)
	}
	return page.Outcome{Message: "Attendance saved.", RowsAffected: n}, nil
}
