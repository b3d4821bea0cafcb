// Package charts describes aggregate series computed by the pages and renders them as PNG.
package charts

import (
	"coachingku_backend/internals/tabular"
)

type Kind string

const (
	Bar  Kind = "bar"
	Line Kind = "line"
)

type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart holds one value per label for every series. Labels are the categorical
// axis (course name, status, month, date, id).
type Chart struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Kind   Kind     `json:"kind"`
	XLabel string   `json:"x_label,omitempty"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// FromGroups builds a single-series chart from grouped rows.
func FromGroups(key, title string, kind Kind, series string, groups []tabular.Group) Chart {
	c := Chart{Key: key, Title: title, Kind: kind, Labels: make([]string, 0, len(groups))}
	values := make([]float64, 0, len(groups))
	for _, g := range groups {
		c.Labels = append(c.Labels, g.Key)
		values = append(values, g.Value)
	}
	c.Series = []Series{{Name: series, Values: values}}
	return c
}

// FromGroupSets builds one series per group set. Labels are the union of every set's
// keys in first-seen order; a label missing from a set reads as zero.
func FromGroupSets(key, title string, kind Kind, names []string, sets ...[]tabular.Group) Chart {
	c := Chart{Key: key, Title: title, Kind: kind, Labels: []string{}}
	index := map[string]int{}
	for _, set := range sets {
		for _, g := range set {
			if _, ok := index[g.Key]; !ok {
				index[g.Key] = len(c.Labels)
				c.Labels = append(c.Labels, g.Key)
			}
		}
	}
	for i, set := range sets {
		s := Series{Values: make([]float64, len(c.Labels))}
		if i < len(names) {
			s.Name = names[i]
		}
		for _, g := range set {
			s.Values[index[g.Key]] = g.Value
		}
		c.Series = append(c.Series, s)
	}
	return c
}

// FromTable builds one series per value column, labelled by labelColumn. Non-numeric
// cells count as zero.
func FromTable(key, title string, kind Kind, t tabular.Table, labelColumn string, valueColumns ...string) Chart {
	c := Chart{Key: key, Title: title, Kind: kind, Labels: make([]string, 0, t.Len())}
	lc, ok := t.Column(labelColumn)
	if !ok {
		return c
	}
	for _, r := range t.Rows {
		c.Labels = append(c.Labels, tabular.String(r[lc]))
	}
	for _, name := range valueColumns {
		s := Series{Name: name, Values: make([]float64, 0, t.Len())}
		vc, found := t.Column(name)
		for _, r := range t.Rows {
			var f float64
			if found {
				f, _ = tabular.Float(r[vc])
			}
			s.Values = append(s.Values, f)
		}
		c.Series = append(c.Series, s)
	}
	return c
}

func (c Chart) Empty() bool { return len(c.Labels) == 0 }

// Value looks up the value of series at label.
func (c Chart) Value(series, label string) (float64, bool) {
	for _, s := range c.Series {
		if s.Name != series {
			continue
		}
		for i, l := range c.Labels {
			if l == label && i < len(s.Values) {
				return s.Values[i], true
			}
		}
	}
	return 0, false
}

func (c Chart) max() float64 {
	var m float64
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > m {
				m = v
			}
		}
	}
	return m
}
