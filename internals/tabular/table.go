// Package tabular holds ordered, column-addressable result sets and the
// filtering/grouping operations the dashboard pages apply to them.
package tabular

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Row maps a column name to its value. Values are nil, string, bool, int64 or float64.
type Row map[string]any

type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func New(columns []string, rows []Row) Table {
	if rows == nil {
		rows = []Row{}
	}
	return Table{Columns: columns, Rows: rows}
}

func (t Table) Len() int    { return len(t.Rows) }
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Column resolves name case-insensitively, so "COURSE_NAME" and "course_name" both match.
func (t Table) Column(name string) (string, bool) {
	for _, c := range t.Columns {
		if c == name {
			return c, true
		}
	}
	for _, c := range t.Columns {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

func (t Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// Value returns row[column] using the same case-insensitive resolution as Column.
func (t Table) Value(r Row, name string) any {
	if col, ok := t.Column(name); ok {
		return r[col]
	}
	return nil
}

// Where keeps the rows for which keep returns true. Column order is preserved.
func (t Table) Where(keep func(Row) bool) Table {
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Table{Columns: t.Columns, Rows: out}
}

// Equal keeps rows whose column renders exactly as value. A missing column keeps nothing.
func (t Table) Equal(column, value string) Table {
	col, ok := t.Column(column)
	if !ok {
		return Table{Columns: t.Columns, Rows: []Row{}}
	}
	return t.Where(func(r Row) bool {
		v := r[col]
		return v != nil && String(v) == value
	})
}

// DateRange keeps rows whose column parses as a date within [from, to], compared by calendar day.
func (t Table) DateRange(column string, from, to time.Time) Table {
	col, ok := t.Column(column)
	if !ok {
		return Table{Columns: t.Columns, Rows: []Row{}}
	}
	lo, hi := day(from), day(to)
	return t.Where(func(r Row) bool {
		ts, ok := Time(r[col])
		if !ok {
			return false
		}
		d := day(ts)
		return !d.Before(lo) && !d.After(hi)
	})
}

// DateBounds returns the earliest and latest parseable date in column.
func (t Table) DateBounds(column string) (min, max time.Time, ok bool) {
	col, found := t.Column(column)
	if !found {
		return
	}
	for _, r := range t.Rows {
		ts, parsed := Time(r[col])
		if !parsed {
			continue
		}
		if !ok || ts.Before(min) {
			min = ts
		}
		if !ok || ts.After(max) {
			max = ts
		}
		ok = true
	}
	return
}

// Search keeps rows where any column's string form contains term, ignoring case.
// A blank term keeps every row.
func (t Table) Search(term string) Table {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return t
	}
	return t.Where(func(r Row) bool {
		for _, c := range t.Columns {
			if strings.Contains(strings.ToLower(String(r[c])), term) {
				return true
			}
		}
		return false
	})
}

// Head returns at most n rows.
func (t Table) Head(n int) Table {
	if n < 0 || n >= len(t.Rows) {
		return t
	}
	return Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// Distinct lists the non-null values of column in natural order (numeric when every value is numeric).
func (t Table) Distinct(column string) []string {
	col, ok := t.Column(column)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range t.Rows {
		v := r[col]
		if v == nil {
			continue
		}
		s := String(v)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	SortNatural(out)
	return out
}

// SortNatural sorts numerically when every entry parses as a number, lexically otherwise.
func SortNatural(values []string) {
	numeric := true
	nums := make(map[string]float64, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			numeric = false
			break
		}
		nums[v] = f
	}
	if numeric {
		sort.SliceStable(values, func(i, j int) bool { return nums[values[i]] < nums[values[j]] })
		return
	}
	sort.Strings(values)
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
