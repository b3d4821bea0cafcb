package service

import (
	"context"

	"gorm.io/gorm/clause"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	MetricStudents = "Total Students"
	MetricCourses  = "Active Courses"
	MetricLeads    = "Total Leads"
	MetricFees     = "Total Fees Collected"

	ChartCourseStudents = "course_students"
	ChartMonthlyFees    = "monthly_fees"
	ChartLeadStatus     = "lead_status"
)

type DashboardService struct {
	st *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{st: st}
}

func (s *DashboardService) Key() string   { return "dashboard" }
func (s *DashboardService) Title() string { return "Dashboard" }

// Build assembles the KPI row and the three overview charts. Every block fails on its own.
func (s *DashboardService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Overall Analytics Dashboard")
	if n, ok := page.Notice(params); ok {
		p.Add(n)
	}

	/* ===== KPIs ===== */
	p.Add(
		s.metric(ctx, MetricStudents, []string{"student"}, "SELECT COUNT(*) AS c FROM student", false),
		s.metric(ctx, MetricCourses, []string{"course"}, "SELECT COUNT(*) AS c FROM course WHERE status = ?", false, "Active"),
		s.metric(ctx, MetricLeads, []string{"lead"}, "SELECT COUNT(*) AS c FROM ?", false, clause.Table{Name: "lead"}),
		s.metric(ctx, MetricFees, []string{"fee_payment"}, "SELECT COALESCE(SUM(amount_paid), 0) AS s FROM fee_payment", true),
	)

	/* ===== Charts ===== */
	p.Add(s.courseStudents(ctx), s.monthlyFees(ctx), s.leadStatus(ctx))
	return p
}

func (s *DashboardService) metric(ctx context.Context, label string, tables []string, q string, money bool, args ...any) page.Section {
	v, err := s.st.Scalar(ctx, tables, q, args...)
	if err != nil {
		return page.FailedMetric(label, err)
	}
	display := tabular.Grouped(v)
	if money {
		display = tabular.Rupees(v)
	}
	return page.MetricSection(label, v, display)
}

func (s *DashboardService) courseStudents(ctx context.Context) page.Section {
	t, err := s.st.CachedQuery(ctx, []string{"student"}, `
		SELECT course_name, COUNT(student_id) AS student_count
		FROM student
		GROUP BY course_name
		ORDER BY student_count DESC, course_name`)
	if err != nil {
		return page.Error("Error loading course-wise count", err)
	}
	c := charts.FromTable(ChartCourseStudents, "Course-wise Student Count", charts.Bar, t, "course_name", "student_count")
	return page.ChartOrInfo(c, "No student/course data found.")
}

// monthlyFees buckets payments by month in Go so the query stays portable across dialects.
func (s *DashboardService) monthlyFees(ctx context.Context) page.Section {
	t, err := s.st.Table(ctx, "fee_payment")
	if err != nil {
		return page.Error("Error loading fee data", err)
	}
	groups := t.GroupByMonth("payment_date", "amount_paid", tabular.Sum)
	c := charts.FromGroups(ChartMonthlyFees, "Monthly Fee Collection", charts.Line, "total_paid", groups)
	c.XLabel = "month"
	return page.ChartOrInfo(c, "No fee payment data found.")
}

func (s *DashboardService) leadStatus(ctx context.Context) page.Section {
	t, err := s.st.CachedQuery(ctx, []string{"lead"},
		"SELECT status, COUNT(*) AS count FROM ? GROUP BY status ORDER BY status",
		clause.Table{Name: "lead"})
	if err != nil {
		return page.Error("Error loading lead status data", err)
	}
	c := charts.FromTable(ChartLeadStatus, "Lead Status Distribution", charts.Bar, t, "status", "count")
	return page.ChartOrInfo(c, "No lead data found.")
}
