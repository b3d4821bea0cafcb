package page

import (
	"context"
	"testing"
)

type stubBuilder struct{ key, title string }

func (s stubBuilder) Key() string   { return s.key }
func (s stubBuilder) Title() string { return s.title }
func (s stubBuilder) Build(context.Context, Params) *Page {
	return New(s.key, s.title)
}

func TestRegistryKeepsNavOrder(t *testing.T) {
	r := NewRegistry(stubBuilder{"dashboard", "Dashboard"}, stubBuilder{"students", "Students"})
	r.Register(stubBuilder{"dashboard", "Overview"})

	nav := r.Nav()
	if len(nav) != 2 {
		t.Fatalf("nav = %+v", nav)
	}
	if nav[0].Title != "Overview" || nav[0].Path != "/pages/dashboard" {
		t.Fatalf("replaced builder lost its slot: %+v", nav[0])
	}
	if _, ok := r.Get("fees"); ok {
		t.Fatalf("unknown key resolved")
	}
}
