package service

import (
	"context"
	"testing"

	"coachingku_backend/internals/page"
	"coachingku_backend/internals/store/storetest"
)

func TestFacultyLoad(t *testing.T) {
	p := NewFacultyService(storetest.OpenSeeded(t)).Build(context.Background(), nil)

	tables := p.Tables()
	if len(tables) != 2 || tables[0].Total != 3 {
		t.Fatalf("tables = %+v", tables)
	}
	c, ok := p.Chart(ChartFacultyLoad)
	if !ok {
		t.Fatalf("no load chart")
	}
	for id, want := range map[string]float64{"1": 2, "2": 2, "3": 1} {
		if v, _ := c.Value("class_count", id); v != want {
			t.Errorf("faculty %s = %v, want %v", id, v, want)
		}
	}
}

func TestFacultyFilterAndMissingMaster(t *testing.T) {
	st := storetest.OpenSeeded(t)
	if err := st.DB().Migrator().DropTable("faculty"); err != nil {
		t.Fatalf("drop faculty: %v", err)
	}
	p := NewFacultyService(st).Build(context.Background(), page.Params{"faculty_id": "3"})

	if msgs := p.Messages(); len(msgs) != 1 || msgs[0].Text != "Faculty table not found or empty." {
		t.Fatalf("messages = %+v", msgs)
	}
	if tb := p.Tables()[0]; tb.Caption != "Showing 1 class schedule rows" {
		t.Fatalf("caption = %q", tb.Caption)
	}
}
