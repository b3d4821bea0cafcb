package service

import (
	"context"
	"fmt"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	Table = "result"

	ChartCourseMarks = "course_avg_marks"
	ChartTestMarks   = "test_avg_marks"
)

const joinedQuery = `
	SELECT r.result_id,
	       r.student_id,
	       s.name AS student_name,
	       r.test_id,
	       t.test_name,
	       t.course_id,
	       c.course_name,
	       r.marks_obtained,
	       r.grade,
	       r.remarks
	FROM result r
	JOIN student s ON r.student_id = s.student_id
	JOIN test t    ON r.test_id = t.test_id
	JOIN course c  ON t.course_id = c.course_id`

var joinedTables = []string{"result", "student", "test", "course"}

type ResultService struct {
	st *store.Store
}

func NewResultService(st *store.Store) *ResultService {
	return &ResultService{st: st}
}

func (s *ResultService) Key() string   { return "results" }
func (s *ResultService) Title() string { return "Results" }

func (s *ResultService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Result & Performance Analytics")

	t, err := s.st.CachedQuery(ctx, joinedTables, joinedQuery)
	if err != nil {
		p.Add(page.Warning(fmt.Sprintf("Joined result view not available, showing raw result table. Details: %v", err)))
		if t, err = s.st.Table(ctx, Table); err != nil {
			p.Add(page.Error("Error loading result table", err))
			return p
		}
	}
	if t.Empty() {
		p.Add(page.Info("Result data is empty."))
		return p
	}

	var f page.Filter
	var ok bool
	if t, f, ok = page.Select(t, params, "course_name", "course_name", "Filter by course"); ok {
		p.AddFilter(f)
	}
	if t, f, ok = page.Select(t, params, "student_id", "student_id", "Filter by student ID"); ok {
		p.AddFilter(f)
	}
	p.Add(page.TableSection("Results", fmt.Sprintf("Showing %d result rows", t.Len()), t))

	if !t.HasColumn("marks_obtained") {
		return p
	}
	p.Add(
		averageBy(t, ChartCourseMarks, "Average Marks by Course", "course_name", "COURSE_NAME not available for chart."),
		averageBy(t, ChartTestMarks, "Average Marks by Test", "test_name", "TEST_NAME not available for chart."),
	)
	return p
}

func averageBy(t tabular.Table, key, title, column, missing string) page.Section {
	if !t.HasColumn(column) {
		return page.Info(missing)
	}
	groups := t.GroupBy(column, "marks_obtained", tabular.Mean)
	return page.ChartOrInfo(charts.FromGroups(key, title, charts.Bar, "avg_marks", groups), "No marks to chart.")
}
