package charts

import (
	"bytes"
	"errors"
	"testing"

	"coachingku_backend/internals/tabular"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestFromGroupSetsUnionsLabels(t *testing.T) {
	fees := []tabular.Group{{Key: "JEE", Value: 85000}, {Key: "NEET", Value: 90000}}
	paid := []tabular.Group{{Key: "NEET", Value: 50000}, {Key: "Board", Value: 20000}}
	c := FromGroupSets("course_fees", "Fees", Bar, []string{"total_fees", "total_paid"}, fees, paid)

	if len(c.Labels) != 3 || c.Labels[2] != "Board" {
		t.Fatalf("labels = %v", c.Labels)
	}
	if v, _ := c.Value("total_paid", "JEE"); v != 0 {
		t.Fatalf("missing label should read 0, got %v", v)
	}
	if v, _ := c.Value("total_fees", "Board"); v != 0 {
		t.Fatalf("missing label should read 0, got %v", v)
	}
	if v, ok := c.Value("total_paid", "NEET"); !ok || v != 50000 {
		t.Fatalf("NEET paid = %v %v", v, ok)
	}
}

func TestFromTable(t *testing.T) {
	tb := tabular.New([]string{"course_name", "total_paid"}, []tabular.Row{
		{"course_name": "JEE", "total_paid": "115000.00"},
		{"course_name": "Crash", "total_paid": nil},
	})
	c := FromTable("k", "T", Bar, tb, "COURSE_NAME", "total_paid", "missing")
	if len(c.Series) != 2 {
		t.Fatalf("series = %d", len(c.Series))
	}
	if v, _ := c.Value("total_paid", "JEE"); v != 115000 {
		t.Fatalf("JEE = %v", v)
	}
	if v, _ := c.Value("missing", "Crash"); v != 0 {
		t.Fatalf("missing column should be zeros, got %v", v)
	}

	if !FromTable("k", "T", Bar, tb, "nope", "total_paid").Empty() {
		t.Fatalf("chart over missing label column should be empty")
	}
}

func TestRender(t *testing.T) {
	groups := []tabular.Group{{Key: "Converted", Value: 2}, {Key: "New", Value: 1}}
	cases := map[string]Chart{
		"bar":    FromGroups("lead_status", "Leads", Bar, "count", groups),
		"line":   FromGroups("daily_present", "Present", Line, "present_count", groups),
		"multi":  FromGroupSets("fees", "Fees", Bar, []string{"a", "b"}, groups, groups),
		"single": FromGroups("one", "One point", Line, "v", groups[:1]),
	}
	for name, c := range cases {
		var buf bytes.Buffer
		if err := Render(&buf, c, 0, 0); err != nil {
			t.Fatalf("%s: Render: %v", name, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Fatalf("%s: output is not a PNG", name)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, FromGroups("k", "T", Bar, "v", nil), 400, 300)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("Render(empty) = %v, want ErrEmpty", err)
	}
}
