package service

import (
	"context"
	"fmt"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/features/courses/dto"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
)

const (
	Table = "course"

	ChartCourseFees = "course_fees"

	SeriesCourseFees = "total_course_fees"
	SeriesPaid       = "total_paid"
)

// payments are summed per course before the join so each course row's fee is counted once
const courseFeesQuery = `
	SELECT c.course_name,
	       SUM(c.fees) AS total_course_fees,
	       COALESCE(SUM(p.total_paid), 0) AS total_paid
	FROM course c
	LEFT JOIN (
		SELECT course_id, SUM(amount_paid) AS total_paid
		FROM fee_payment
		GROUP BY course_id
	) p ON p.course_id = c.course_id
	%s
	GROUP BY c.course_name
	ORDER BY c.course_name`

type CourseService struct {
	st *store.Store
}

func NewCourseService(st *store.Store) *CourseService {
	return &CourseService{st: st}
}

func (s *CourseService) Key() string   { return "courses" }
func (s *CourseService) Title() string { return "Courses" }

func (s *CourseService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Course Management")
	if n, ok := page.Notice(params); ok {
		p.Add(n)
	}

	t, err := s.st.Table(ctx, Table)
	status := ""
	switch {
	case err != nil:
		p.Add(page.Error("Error loading course table", err))
	case t.Empty():
		p.Add(page.Info("Course table is empty."))
	default:
		var f page.Filter
		var ok bool
		if t, f, ok = page.Select(t, params, "status", "status", "Filter by status"); ok {
			p.AddFilter(f)
			status = params.Selected("status")
		}
		p.Add(page.TableSection("Courses", fmt.Sprintf("Showing %d courses", t.Len()), t))
	}

	p.Add(s.forms()...)
	if err == nil && !t.Empty() {
		p.Add(s.feeChart(ctx, status))
	}
	return p
}

// feeChart compares the listed fee with what was collected, per course name. The
// active status filter narrows it to the same courses the table shows.
func (s *CourseService) feeChart(ctx context.Context, status string) page.Section {
	where, args := "", []any{}
	if status != "" {
		where, args = "WHERE c.status = ?", append(args, status)
	}
	rows, err := s.st.CachedQuery(ctx, []string{"course", "fee_payment"}, fmt.Sprintf(courseFeesQuery, where), args...)
	if err != nil {
		return page.Error("Error loading course fee chart", err)
	}
	c := charts.FromTable(ChartCourseFees, "Fee Collection by Course", charts.Bar, rows, "course_name", SeriesCourseFees, SeriesPaid)
	return page.ChartOrInfo(c, "No fee data available for courses.")
}

func (s *CourseService) forms() []page.Section {
	return []page.Section{
		page.FormSection(page.Form{
			Key: "add_course", Title: "Add New Course", Action: "/api/courses", Method: "POST", Submit: "Add Course",
			Fields: []page.Field{
				page.Text("course_name", "Course name", true),
				page.Text("category", "Category (e.g. JEE, NEET, Board)", false),
				page.Number("duration_months", "Duration (months)", "1", "1").WithDefault("1"),
				page.Number("fees", "Fees", "0", "1000").WithDefault("0"),
				page.Text("level", "Level (e.g. Foundation, Regular, Crash)", false),
				page.Text("status", "Status", false).WithDefault("Active"),
			},
		}),
		page.FormSection(page.Form{
			Key: "update_course_status", Title: "Update Course Status", Action: "/api/courses/status", Method: "POST", Submit: "Update Course Status",
			Fields: []page.Field{
				page.Text("course_id", "Course ID", true),
				page.Text("status", "New status (Active/Inactive)", true),
			},
		}),
	}
}

/* ===============================
   Mutations
=================================*/

func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, `
		INSERT INTO course (course_name, category, duration_months, fees, level, status)
		VALUES (?, ?, ?, ?, ?, ?)`, req.Args()...)
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error inserting course: %w", err)
	}
	return page.Outcome{Message: "Course added successfully.", RowsAffected: n}, nil
}

func (s *CourseService) UpdateStatus(ctx context.Context, req dto.UpdateCourseStatusRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, "UPDATE course SET status = ? WHERE course_id = ?", req.Status, req.ID())
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error updating course: %w", err)
	}
	return page.Updated(fmt.Sprintf("Course %d status updated", req.ID()), n), nil
}
