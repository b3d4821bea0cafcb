package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

const (
	DefaultMaxRows = 500
	MinMaxRows     = 10
	MaxMaxRows     = 2000
)

type TableService struct {
	st *store.Store
}

func NewTableService(st *store.Store) *TableService {
	return &TableService{st: st}
}

func (s *TableService) Key() string   { return "tables" }
func (s *TableService) Title() string { return "All Tables" }

func (s *TableService) List(ctx context.Context) ([]string, error) {
	return s.st.ListTables(ctx)
}

// Filtered returns every row of name matching term. Only tables the database reports
// can be read.
func (s *TableService) Filtered(ctx context.Context, name, term string) (tabular.Table, error) {
	names, err := s.st.ListTables(ctx)
	if err != nil {
		return tabular.Table{}, err
	}
	if !slices.Contains(names, name) {
		return tabular.Table{}, store.Invalid(fmt.Sprintf("unknown table %q", name))
	}
	t, err := s.st.Table(ctx, name)
	if err != nil {
		return tabular.Table{}, err
	}
	return t.Search(term), nil
}

func (s *TableService) Build(ctx context.Context, params page.Params) *page.Page {
	p := page.New(s.Key(), "All Tables Viewer")

	names, err := s.st.ListTables(ctx)
	if err != nil {
		p.Add(page.Error("Error fetching table list", err))
	}
	if len(names) == 0 {
		p.Add(page.Warning("No tables found or unable to read table list."))
		return p
	}

	choice := page.ChoiceFilter(params, "table", "Select table", names)
	if !slices.Contains(names, choice.Value) {
		choice.Value = names[0]
	}
	name := choice.Value
	term := params.Get("q")
	maxRows := params.Int("max_rows", DefaultMaxRows, MinMaxRows, MaxMaxRows)
	p.AddFilter(
		choice,
		page.SearchFilter(params, "q", "Search (matches any column)"),
		page.NumberFilter("max_rows", "Max rows to show", maxRows, MinMaxRows, MaxMaxRows),
	)
	p.Subtitle = name

	t, err := s.st.Table(ctx, name)
	if err != nil {
		p.Add(page.Error(fmt.Sprintf("Error loading table `%s`", name), err))
		p.Add(page.Info("Check if table exists and names are correct."))
		return p
	}

	total := t.Len()
	filtered := t.Search(term)
	if filtered.Empty() {
		p.Add(page.Warning("No rows match your search."))
		return p
	}

	sec := page.TableSection(name, fmt.Sprintf("Total rows: %d", total), filtered.Head(maxRows))
	sec.Table.Total = filtered.Len()
	sec.Table.Export = ExportPath(name, "csv", term)
	p.Add(sec)
	return p
}

// ExportPath links to the download of the whole filtered set, not just the rows shown.
func ExportPath(table, format, term string) string {
	path := "/api/tables/" + url.PathEscape(table) + "/export." + format
	if term == "" {
		return path
	}
	return path + "?q=" + url.QueryEscape(term)
}
