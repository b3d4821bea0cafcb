package service

import (
	"context"
	"fmt"
	"time"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/features/fees/dto"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	Table = "fee_payment"

	ChartCourseFees = "course_fees"

	SeriesTotalFees = "total_fees"
	SeriesTotalPaid = "total_paid"
)

// Only pairs with at least one payment appear; balance is the course fee minus everything paid.
const summaryQuery = `
	SELECT s.student_id,
	       s.name,
	       c.course_name,
	       c.fees AS total_fees,
	       COALESCE(SUM(fp.amount_paid), 0) AS total_paid,
	       c.fees - COALESCE(SUM(fp.amount_paid), 0) AS balance
	FROM fee_payment fp
	JOIN student s ON fp.student_id = s.student_id
	JOIN course c  ON fp.course_id = c.course_id
	GROUP BY s.student_id, s.name, c.course_name, c.fees
	ORDER BY s.student_id`

var summaryTables = []string{"fee_payment", "student", "course"}

type FeeService struct {
	st  *store.Store
	now func() time.Time
}

func NewFeeService(st *store.Store) *FeeService {
	return &FeeService{st: st, now: time.Now}
}

func (s *FeeService) Key() string   { return "fees" }
func (s *FeeService) Title() string { return "Fees" }

// Summary returns one row per student and course they paid towards.
func (s *FeeService) Summary(ctx context.Context) (tabular.Table, error) {
	return s.st.CachedQuery(ctx, summaryTables, summaryQuery)
}

func (s *FeeService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Fee Management Dashboard")
	if n, ok := page.Notice(params); ok {
		p.Add(n)
	}

	t, err := s.Summary(ctx)
	switch {
	case err != nil:
		p.Add(page.Error("Error loading fee summary", err))
	case t.Empty():
		p.Add(page.Info("No fee summary available."))
	default:
		caption := fmt.Sprintf("Total students in fee summary: %d", t.Len())
		p.AddFilter(page.CheckboxFilter(params, "pending", "Show only students with pending balance > 0"))
		if params.Bool("pending") {
			t = PendingOnly(t)
		}
		p.Add(page.TableSection("Fee Summary", caption, t))
		p.Add(page.ChartOrInfo(courseFees(t), "No fee summary available."))
	}

	p.Add(s.form())
	return p
}

// PendingOnly keeps rows whose balance is above zero.
func PendingOnly(t tabular.Table) tabular.Table {
	col, ok := t.Column("balance")
	if !ok {
		return t
	}
	return t.Where(func(r tabular.Row) bool {
		f, ok := tabular.Float(r[col])
		return ok && f > 0
	})
}

func courseFees(t tabular.Table) charts.Chart {
	return charts.FromGroupSets(ChartCourseFees, "Course-wise Fee Collection", charts.Bar,
		[]string{SeriesTotalFees, SeriesTotalPaid},
		t.GroupBy("course_name", SeriesTotalFees, tabular.Sum),
		t.GroupBy("course_name", SeriesTotalPaid, tabular.Sum),
	)
}

func (s *FeeService) form() page.Section {
	return page.FormSection(page.Form{
		Key: "record_payment", Title: "Record Fee Payment", Action: "/api/fees/payments", Method: "POST", Submit: "Record Payment",
		Fields: []page.Field{
			page.Text("student_id", "Student ID", true),
			page.Text("course_id", "Course ID", true),
			page.Number("amount_paid", "Amount paid", "1", "100"),
			page.Date("payment_date", "Payment date", s.now().Format(tabular.DateLayout)),
			page.Choice("payment_mode", "Payment mode", dto.PaymentModes),
		},
	})
}

func (s *FeeService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, `
		INSERT INTO fee_payment (student_id, course_id, amount_paid, payment_date, payment_mode)
		VALUES (?, ?, ?, ?, ?)`, req.Args()...)
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error recording payment: %w", err)
	}
	return page.Outcome{Message: "Payment recorded.", RowsAffected: n}, nil
}
