package service

import (
	"context"
	"testing"

	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/store/storetest"
)

func TestBuildSearchAndExportLink(t *testing.T) {
	s := NewTableService(storetest.OpenSeeded(t))
	p := s.Build(context.Background(), page.Params{"table": "student", "q": "neet", "max_rows": "1"})

	if p.Subtitle != "student" {
		t.Fatalf("subtitle = %q", p.Subtitle)
	}
	tables := p.Tables()
	if len(tables) != 1 {
		t.Fatalf("tables = %+v", tables)
	}
	tv := tables[0]
	if tv.Caption != "Total rows: 5" || tv.Total != 2 {
		t.Fatalf("caption %q total %d", tv.Caption, tv.Total)
	}
	// max_rows is clamped up to the minimum, which still covers both matches
	if tv.Shown != 2 {
		t.Fatalf("shown = %d", tv.Shown)
	}
	if tv.Export != "/api/tables/student/export.csv?q=neet" {
		t.Fatalf("export = %q", tv.Export)
	}
	if p.Filters[2].Value != "10" {
		t.Fatalf("max_rows filter = %+v", p.Filters[2])
	}
}

func TestBuildNoMatches(t *testing.T) {
	s := NewTableService(storetest.OpenSeeded(t))
	p := s.Build(context.Background(), page.Params{"table": "lead", "q": "zzz-nothing"})
	msgs := p.Messages()
	if len(msgs) != 1 || msgs[0].Text != "No rows match your search." {
		t.Fatalf("messages = %+v", msgs)
	}
}

func TestUnknownTableFallsBackToFirst(t *testing.T) {
	s := NewTableService(storetest.OpenSeeded(t))
	names, _ := s.List(context.Background())
	p := s.Build(context.Background(), page.Params{"table": "users; DROP TABLE student"})
	if p.Subtitle != names[0] {
		t.Fatalf("subtitle = %q, want %q", p.Subtitle, names[0])
	}
}

func TestFiltered(t *testing.T) {
	ctx := context.Background()
	s := NewTableService(storetest.OpenSeeded(t))

	tb, err := s.Filtered(ctx, "lead", "website")
	if err != nil || tb.Len() != 2 {
		t.Fatalf("Filtered = %d rows, %v", tb.Len(), err)
	}
	_, err = s.Filtered(ctx, "sqlite_master", "")
	if store.Classify(err) != store.FailureValidation {
		t.Fatalf("unlisted table = %v", err)
	}
}

func TestExportPathEscapes(t *testing.T) {
	if got := ExportPath("fee_payment", "xlsx", "bank transfer"); got != "/api/tables/fee_payment/export.xlsx?q=bank+transfer" {
		t.Fatalf("ExportPath = %q", got)
	}
}
