package tabular

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"
)

func sample() Table {
	return New([]string{"student_id", "course_name", "status", "join_date"}, []Row{
		{"student_id": int64(1), "course_name": "JEE Main Batch", "status": "Active", "join_date": "2024-04-01"},
		{"student_id": int64(2), "course_name": "NEET Batch", "status": "Active", "join_date": "2024-04-03"},
		{"student_id": int64(10), "course_name": "JEE Main Batch", "status": "Inactive", "join_date": "2024-05-15"},
		{"student_id": int64(4), "course_name": nil, "status": "Active", "join_date": nil},
	})
}

func TestColumnIsCaseInsensitive(t *testing.T) {
	tb := sample()
	col, ok := tb.Column("COURSE_NAME")
	if !ok || col != "course_name" {
		t.Fatalf("Column(COURSE_NAME) = %q, %v", col, ok)
	}
	if tb.HasColumn("room_id") {
		t.Fatalf("unexpected room_id column")
	}
}

func TestEqualFiltersCommute(t *testing.T) {
	tb := sample()
	a := tb.Equal("course_name", "JEE Main Batch").Equal("status", "Active")
	b := tb.Equal("status", "Active").Equal("course_name", "JEE Main Batch")
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("got %d and %d rows, want 1 and 1", a.Len(), b.Len())
	}
	if a.Rows[0]["student_id"] != b.Rows[0]["student_id"] {
		t.Fatalf("filters disagree: %v vs %v", a.Rows[0], b.Rows[0])
	}
}

func TestEqualMissingColumnKeepsNothing(t *testing.T) {
	out := sample().Equal("room_id", "1")
	if !out.Empty() {
		t.Fatalf("want no rows, got %d", out.Len())
	}
	if len(out.Columns) != 4 {
		t.Fatalf("columns dropped: %v", out.Columns)
	}
}

func TestDistinctNaturalOrder(t *testing.T) {
	got := sample().Distinct("student_id")
	want := []string{"1", "2", "4", "10"}
	if len(got) != len(want) {
		t.Fatalf("Distinct = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Distinct = %v, want %v", got, want)
		}
	}
	names := sample().Distinct("course_name")
	if len(names) != 2 || names[0] != "JEE Main Batch" {
		t.Fatalf("Distinct(course_name) = %v", names)
	}
}

func TestSearch(t *testing.T) {
	tb := sample()
	if n := tb.Search("  neet ").Len(); n != 1 {
		t.Fatalf("Search(neet) = %d rows, want 1", n)
	}
	if n := tb.Search("").Len(); n != tb.Len() {
		t.Fatalf("blank search dropped rows: %d", n)
	}
	if n := tb.Search("zzz").Len(); n != 0 {
		t.Fatalf("Search(zzz) = %d rows", n)
	}
}

func TestDateRangeInclusive(t *testing.T) {
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 3, 23, 0, 0, 0, time.UTC)
	out := sample().DateRange("join_date", from, to)
	if out.Len() != 2 {
		t.Fatalf("DateRange = %d rows, want 2", out.Len())
	}

	lo, hi, ok := sample().DateBounds("join_date")
	if !ok || lo.Format(DateLayout) != "2024-04-01" || hi.Format(DateLayout) != "2024-05-15" {
		t.Fatalf("DateBounds = %v %v %v", lo, hi, ok)
	}
}

func TestGroupBy(t *testing.T) {
	tb := New([]string{"course_name", "marks"}, []Row{
		{"course_name": "B", "marks": int64(10)},
		{"course_name": "A", "marks": float64(20)},
		{"course_name": "B", "marks": "30"},
		{"course_name": "B", "marks": "n/a"},
		{"course_name": nil, "marks": int64(99)},
	})

	count := tb.GroupBy("course_name", "", Count)
	if len(count) != 2 || count[0].Key != "A" || count[1].Value != 3 {
		t.Fatalf("count groups = %+v", count)
	}
	sum := tb.GroupBy("course_name", "marks", Sum)
	if sum[1].Value != 40 {
		t.Fatalf("sum B = %v, want 40", sum[1].Value)
	}
	mean := tb.GroupBy("course_name", "marks", Mean)
	if mean[1].Value != 20 {
		t.Fatalf("mean B = %v, want 20", mean[1].Value)
	}
	if tb.GroupBy("course_name", "missing", Sum) != nil {
		t.Fatalf("sum over a missing column should be nil")
	}
	desc := ByValueDesc(count)
	if desc[0].Key != "B" {
		t.Fatalf("ByValueDesc = %+v", desc)
	}
}

func TestGroupByMonth(t *testing.T) {
	tb := New([]string{"payment_date", "amount_paid"}, []Row{
		{"payment_date": "2024-04-01", "amount_paid": int64(40000)},
		{"payment_date": "2024-04-03", "amount_paid": int64(50000)},
		{"payment_date": "2024-07-01", "amount_paid": int64(45000)},
		{"payment_date": "bad", "amount_paid": int64(1)},
	})
	groups := tb.GroupByMonth("payment_date", "amount_paid", Sum)
	if len(groups) != 2 || groups[0].Key != "2024-04" || groups[0].Value != 90000 {
		t.Fatalf("GroupByMonth = %+v", groups)
	}
}

func TestHead(t *testing.T) {
	tb := sample()
	if tb.Head(2).Len() != 2 {
		t.Fatalf("Head(2) wrong")
	}
	if tb.Head(100).Len() != tb.Len() {
		t.Fatalf("Head(100) wrong")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want header + 4", len(records))
	}
	if records[0][1] != "course_name" || records[3][0] != "10" || records[4][1] != "" {
		t.Fatalf("unexpected csv: %v", records)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sample(), "student"); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	// xlsx is a zip container
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatalf("not a zip payload")
	}
}
