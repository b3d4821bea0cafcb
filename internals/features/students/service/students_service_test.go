package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"coachingku_backend/internals/features/students/dto"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store/storetest"
)

func newService(t *testing.T) *StudentService {
	t.Helper()
	s := NewStudentService(storetest.OpenSeeded(t))
	s.now = func() time.Time { return time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestBuildFiltersTableAndChart(t *testing.T) {
	s := newService(t)
	p := s.Build(context.Background(), page.Params{"course_name": "JEE Main Batch"})

	tables := p.Tables()
	if len(tables) != 1 || tables[0].Total != 2 {
		t.Fatalf("tables = %+v", tables)
	}
	if tables[0].Caption != "Showing 2 students" {
		t.Fatalf("caption = %q", tables[0].Caption)
	}
	c, ok := p.Chart(ChartCourseStudents)
	if !ok || len(c.Labels) != 1 {
		t.Fatalf("chart = %+v %v", c, ok)
	}
	if v, _ := c.Value("student_count", "JEE Main Batch"); v != 2 {
		t.Fatalf("JEE count = %v", v)
	}
	if len(p.Filters) != 2 || p.Filters[0].Value != "JEE Main Batch" {
		t.Fatalf("filters = %+v", p.Filters)
	}
}

func TestCreateIsVisibleDespiteCache(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	_ = s.Build(ctx, nil)

	req := dto.CreateStudentRequest{Name: " Neha Verma ", CourseName: "NEET Batch"}
	req.Normalize(s.now())
	out, err := s.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.RowsAffected != 1 || out.Message != "Student added successfully." {
		t.Fatalf("outcome = %+v", out)
	}

	p := s.Build(ctx, page.Params{"course_name": "NEET Batch"})
	tb := p.Tables()[0].Data
	if tb.Len() != 3 {
		t.Fatalf("NEET students = %d, want 3", tb.Len())
	}
	added := tb.Equal("name", "Neha Verma")
	if added.Len() != 1 {
		t.Fatalf("new student not found")
	}
	if got := added.Rows[0]["status"]; got != "Active" {
		t.Fatalf("status default = %v", got)
	}
	if got := added.Rows[0]["join_date"]; got != "2024-07-01" {
		t.Fatalf("join_date default = %v", got)
	}
}

func TestUpdateStatusMissingID(t *testing.T) {
	s := newService(t)
	out, err := s.UpdateStatus(context.Background(), dto.UpdateStudentStatusRequest{StudentID: "999", Status: "Inactive"})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if out.RowsAffected != 0 || !strings.Contains(out.Message, "(if existed)") {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	out, err := s.UpdateStatus(ctx, dto.UpdateStudentStatusRequest{StudentID: "2", Status: "Inactive"})
	if err != nil || out.RowsAffected != 1 {
		t.Fatalf("UpdateStatus = %+v, %v", out, err)
	}
	p := s.Build(ctx, page.Params{"status": "Inactive"})
	if n := p.Tables()[0].Total; n != 2 {
		t.Fatalf("inactive students = %d, want 2", n)
	}

	out, err = s.Delete(ctx, dto.DeleteStudentRequest{StudentID: "5"})
	if err != nil || out.RowsAffected != 1 {
		t.Fatalf("Delete = %+v, %v", out, err)
	}
	if out.Message != "Student 5 deleted (if existed)." {
		t.Fatalf("message = %q", out.Message)
	}
	p = s.Build(ctx, nil)
	if n := p.Tables()[0].Total; n != 4 {
		t.Fatalf("students after delete = %d", n)
	}
}

func TestBuildEmptyTable(t *testing.T) {
	s := NewStudentService(storetest.Open(t))
	p := s.Build(context.Background(), nil)
	msgs := p.Messages()
	if len(msgs) == 0 || msgs[0].Text != "Student table is empty." {
		t.Fatalf("messages = %+v", msgs)
	}
	// forms stay available so the first student can be added
	forms := 0
	for _, sec := range p.Sections {
		if sec.Form != nil {
			forms++
		}
	}
	if forms != 3 {
		t.Fatalf("forms = %d, want 3", forms)
	}
}
