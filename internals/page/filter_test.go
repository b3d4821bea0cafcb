package page

import (
	"testing"

	"coachingku_backend/internals/tabular"
)

func students() tabular.Table {
	return tabular.New([]string{"student_id", "course_name", "status", "join_date"}, []tabular.Row{
		{"student_id": int64(1), "course_name": "JEE Main Batch", "status": "Active", "join_date": "2024-04-01"},
		{"student_id": int64(2), "course_name": "NEET Batch", "status": "Active", "join_date": "2024-04-03"},
		{"student_id": int64(3), "course_name": "JEE Main Batch", "status": "Inactive", "join_date": "2024-05-15"},
	})
}

func TestSelectOffersAllFirst(t *testing.T) {
	out, f, ok := Select(students(), nil, "course_name", "course_name", "Course")
	if !ok {
		t.Fatalf("filter not shown")
	}
	if out.Len() != 3 || f.Value != All {
		t.Fatalf("All should keep every row: %d rows, value %q", out.Len(), f.Value)
	}
	if len(f.Options) != 3 || f.Options[0] != All || f.Options[1] != "JEE Main Batch" {
		t.Fatalf("options = %v", f.Options)
	}
}

func TestSelectChainedUsesRemainingRows(t *testing.T) {
	params := Params{"course_name": "JEE Main Batch", "status": "Inactive"}
	t1, _, _ := Select(students(), params, "course_name", "course_name", "Course")
	t2, f, _ := Select(t1, params, "status", "status", "Status")
	if t2.Len() != 1 || t2.Rows[0]["student_id"] != int64(3) {
		t.Fatalf("rows = %v", t2.Rows)
	}
	// status options come from the course-filtered rows
	if len(f.Options) != 3 || f.Options[2] != "Inactive" {
		t.Fatalf("status options = %v", f.Options)
	}
}

func TestSelectMissingColumn(t *testing.T) {
	in := students()
	out, _, ok := Select(in, Params{"room_id": "1"}, "room_id", "room_id", "Room")
	if ok || out.Len() != in.Len() {
		t.Fatalf("missing column should leave the table alone: ok=%v len=%d", ok, out.Len())
	}
}

func TestDateRangeDefaultsAndBounds(t *testing.T) {
	out, f, ok := DateRange(students(), nil, "date", "join_date", "Joined")
	if !ok || out.Len() != 3 {
		t.Fatalf("no bounds should keep rows: ok=%v len=%d", ok, out.Len())
	}
	if f.From != "2024-04-01" || f.To != "2024-05-15" {
		t.Fatalf("defaults = %s..%s", f.From, f.To)
	}

	out, f, _ = DateRange(students(), Params{"date_to": "2024-04-30"}, "date", "join_date", "Joined")
	if out.Len() != 2 || f.From != "2024-04-01" || f.To != "2024-04-30" {
		t.Fatalf("to-only = %d rows, %s..%s", out.Len(), f.From, f.To)
	}
}

func TestParams(t *testing.T) {
	p := Params{"max_rows": "5000", "bad": "x", "pending": "on", "status": " All "}
	if n := p.Int("max_rows", 500, 10, 2000); n != 2000 {
		t.Fatalf("clamp high = %d", n)
	}
	if n := p.Int("bad", 500, 10, 2000); n != 500 {
		t.Fatalf("malformed = %d", n)
	}
	if n := (Params{"max_rows": "1"}).Int("max_rows", 500, 10, 2000); n != 10 {
		t.Fatalf("clamp low = %d", n)
	}
	if !p.Bool("pending") || p.Bool("missing") {
		t.Fatalf("Bool wrong")
	}
	if p.Selected("status") != "" {
		t.Fatalf("All should read as no selection")
	}
}

func TestNotice(t *testing.T) {
	s, ok := Notice(Params{"notice": "Student added successfully."})
	if !ok || s.Message.Level != LevelSuccess {
		t.Fatalf("notice = %+v %v", s, ok)
	}
	s, ok = Notice(Params{"error": "Error inserting student"})
	if !ok || s.Message.Level != LevelError {
		t.Fatalf("error = %+v %v", s, ok)
	}
	if _, ok := Notice(nil); ok {
		t.Fatalf("no params should give no notice")
	}
}

func TestUpdatedOutcome(t *testing.T) {
	if o := Updated("Student 1 status updated", 1); o.Message != "Student 1 status updated." {
		t.Fatalf("message = %q", o.Message)
	}
	o := Updated("Student 99 status updated", 0)
	if o.RowsAffected != 0 || o.Message != "Student 99 status updated (if existed). No rows changed." {
		t.Fatalf("no-op outcome = %+v", o)
	}
}
