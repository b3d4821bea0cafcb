package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/features/leads/dto"
	model "coachingku_backend/internals/models"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	Table = "lead"

	ChartLeadStatus = "lead_status"
)

// lead is a reserved word in MySQL 8, so statements take the table as a quoted argument.
var leadTable = clause.Table{Name: Table}

type LeadService struct {
	st  *store.Store
	now func() time.Time
}

func NewLeadService(st *store.Store) *LeadService {
	return &LeadService{st: st, now: time.Now}
}

func (s *LeadService) Key() string   { return "leads" }
func (s *LeadService) Title() string { return "Leads" }

func (s *LeadService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Lead Management & Analytics")
	if n, ok := page.Notice(params); ok {
		p.Add(n)
	}

	t, err := s.st.Table(ctx, Table)
	switch {
	case err != nil:
		p.Add(page.Error("Error loading lead table", err))
	case t.Empty():
		p.Add(page.Info("Lead table is empty."))
	default:
		var f page.Filter
		var ok bool
		if t, f, ok = page.Select(t, params, "status", "status", "Filter by status"); ok {
			p.AddFilter(f)
		}
		p.Add(page.TableSection("Leads", fmt.Sprintf("Showing %d leads", t.Len()), t))

		groups := t.GroupBy("status", "", tabular.Count)
		c := charts.FromGroups(ChartLeadStatus, "Lead Status Distribution", charts.Bar, "count", groups)
		p.Add(page.ChartOrInfo(c, "No lead status data."))
	}

	p.Add(s.forms()...)
	return p
}

func (s *LeadService) forms() []page.Section {
	return []page.Section{
		page.FormSection(page.Form{
			Key: "update_lead_status", Title: "Update Lead Status", Action: "/api/leads/status", Method: "POST", Submit: "Update Lead",
			Fields: []page.Field{
				page.Text("lead_id", "Lead ID", true),
				page.Choice("status", "New status", model.LeadStatuses),
			},
		}),
		page.FormSection(page.Form{
			Key: "add_lead", Title: "Add New Lead", Action: "/api/leads", Method: "POST", Submit: "Add Lead",
			Fields: []page.Field{
				page.Text("name", "Name", true),
				page.Text("mobile", "Mobile", false),
				page.Text("email", "Email", false).AsEmail(),
				page.Text("source", "Source (e.g. Walk-in, Website, Referral)", false),
				page.Text("interested_course", "Interested course", false),
				page.Choice("status", "Status", model.LeadStatuses),
				page.Date("created_date", "Created date", s.now().Format(tabular.DateLayout)),
			},
		}),
	}
}

/* ===============================
   Mutations
=================================*/

func (s *LeadService) Create(ctx context.Context, req dto.CreateLeadRequest) (page.Outcome, error) {
	args := append([]any{leadTable}, req.Args()...)
	n, err := s.st.Exec(ctx, Table, `
		INSERT INTO ? (name, mobile, email, source, interested_course, status, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error inserting lead: %w", err)
	}
	return page.Outcome{Message: "Lead added successfully.", RowsAffected: n}, nil
}

func (s *LeadService) UpdateStatus(ctx context.Context, req dto.UpdateLeadStatusRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, "UPDATE ? SET status = ? WHERE lead_id = ?", leadTable, req.Status, req.ID())
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error updating lead: %w", err)
	}
	return page.Updated(fmt.Sprintf("Lead %d status updated to %s", req.ID(), req.Status), n), nil
}
