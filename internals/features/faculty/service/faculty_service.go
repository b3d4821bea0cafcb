package service

import (
	"context"
	"fmt"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const ChartFacultyLoad = "faculty_load"

type FacultyService struct {
	st *store.Store
}

func NewFacultyService(st *store.Store) *FacultyService {
	return &FacultyService{st: st}
}

func (s *FacultyService) Key() string   { return "faculty" }
func (s *FacultyService) Title() string { return "Faculty & Classes" }

func (s *FacultyService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "Faculty Workload & Class Schedule")

	if fac, err := s.st.Table(ctx, "faculty"); err != nil || fac.Empty() {
		p.Add(page.Info("Faculty table not found or empty."))
	} else {
		p.Add(page.TableSection("Faculty List", "", fac))
	}

	cs, err := s.st.Table(ctx, "class_schedule")
	switch {
	case err != nil:
		p.Add(page.Error("Error loading class_schedule", err))
		return p
	case cs.Empty():
		p.Add(page.Info("No class schedule data available."))
		return p
	}

	var f page.Filter
	var ok bool
	if cs, f, ok = page.Select(cs, params, "faculty_id", "faculty_id", "Filter by faculty ID"); ok {
		p.AddFilter(f)
	}
	p.Add(page.TableSection("Class Schedule & Faculty Load", fmt.Sprintf("Showing %d class schedule rows", cs.Len()), cs))

	if cs.HasColumn("faculty_id") {
		groups := cs.GroupBy("faculty_id", "", tabular.Count)
		c := charts.FromGroups(ChartFacultyLoad, "Faculty-wise Class Count", charts.Bar, "class_count", groups)
		p.Add(page.ChartOrInfo(c, "No classes to chart."))
	}
	return p
}
