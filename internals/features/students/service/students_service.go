package service

import (
	"context"
	"fmt"
	"time"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/features/students/dto"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	Table = "student"

	ChartCourseStudents = "course_students"
)

type StudentService struct {
	st  *store.Store
	now func() time.Time
}

func NewStudentService(st *store.Store) *StudentService {
	return &StudentService{st: st, now: time.Now}
}

func (s *StudentService) Key() string   { return "students" }
func (s *StudentService) Title() string { return "Students" }

func (s *StudentService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Student Management")
	if n, ok := page.Notice(params); ok {
		p.Add(n)
	}

	t, err := s.st.Table(ctx, Table)
	if err != nil {
		p.Add(page.Error("Error loading student table", err))
	} else if t.Empty() {
		p.Add(page.Info("Student table is empty."))
	} else {
		// 1) filters, in page order
		var f page.Filter
		var ok bool
		if t, f, ok = page.Select(t, params, "course_name", "course_name", "Filter by course"); ok {
			p.AddFilter(f)
		}
		if t, f, ok = page.Select(t, params, "status", "status", "Filter by status"); ok {
			p.AddFilter(f)
		}

		// 2) table + chart over the same filtered rows
		p.Add(page.TableSection("Students", fmt.Sprintf("Showing %d students", t.Len()), t))
		groups := tabular.ByValueDesc(t.GroupBy("course_name", "", tabular.Count))
		c := charts.FromGroups(ChartCourseStudents, "Course-wise Student Count", charts.Bar, "student_count", groups)
		p.Add(page.ChartOrInfo(c, "No students found for chart."))
	}

	p.Add(s.forms()...)
	return p
}

func (s *StudentService) forms() []page.Section {
	today := s.now().Format(tabular.DateLayout)
	return []page.Section{
		page.FormSection(page.Form{
			Key: "add_student", Title: "Add New Student", Action: "/api/students", Method: "POST", Submit: "Add Student",
			Fields: []page.Field{
				page.Text("name", "Name", true),
				page.Text("gender", "Gender", false),
				page.Date("dob", "DOB", "2005-01-01"),
				page.Text("mobile", "Mobile", false),
				page.Text("email_id", "Email ID", false).AsEmail(),
				page.Text("address", "Address", false).AsTextarea(),
				page.Text("city", "City", false),
				page.Text("state", "State", false),
				page.Text("pincode", "Pincode", false),
				page.Text("parent_name", "Parent Name", false),
				page.Text("parent_mobile", "Parent Mobile", false),
				page.Text("course_name", "Course name (e.g. JEE Main Batch, NEET Batch)", true),
				page.Date("join_date", "Join Date", today),
				page.Text("status", "Status", false).WithDefault("Active"),
			},
		}),
		page.FormSection(page.Form{
			Key: "update_student_status", Title: "Update Student Status", Action: "/api/students/status", Method: "POST", Submit: "Update Status",
			Fields: []page.Field{
				page.Text("student_id", "Student ID", true),
				page.Text("status", "New status (e.g. Active / Inactive)", true),
			},
		}),
		page.FormSection(page.Form{
			Key: "delete_student", Title: "Delete Student", Action: "/api/students/delete", Method: "POST", Submit: "Delete Student",
			Fields: []page.Field{
				page.Text("student_id", "Student ID", true),
			},
		}),
	}
}

/* ===============================
   Mutations
=================================*/

func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, `
		INSERT INTO student
			(name, gender, dob, mobile, email_id, address, city, state, pincode,
			 parent_name, parent_mobile, course_name, join_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, req.Args()...)
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error inserting student: %w", err)
	}
	return page.Outcome{Message: "Student added successfully.", RowsAffected: n}, nil
}

func (s *StudentService) UpdateStatus(ctx context.Context, req dto.UpdateStudentStatusRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, "UPDATE student SET status = ? WHERE student_id = ?", req.Status, req.ID())
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error updating status: %w", err)
	}
	return page.Updated(fmt.Sprintf("Student %d status updated", req.ID()), n), nil
}

func (s *StudentService) Delete(ctx context.Context, req dto.DeleteStudentRequest) (page.Outcome, error) {
	n, err := s.st.Exec(ctx, Table, "DELETE FROM student WHERE student_id = ?", req.ID())
	if err != nil {
		return page.Outcome{}, fmt.Errorf("Error deleting student: %w", err)
	}
	return page.Outcome{Message: fmt.Sprintf("Student %d deleted (if existed).", req.ID()), RowsAffected: n}, nil
}
