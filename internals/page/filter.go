package page

import (
	"strconv"
	"strings"

	"coachingku_backend/internals/tabular"
)

// All disables a select filter.
const All = "All"

type FilterKind string

const (
	FilterSelect    FilterKind = "select"
	FilterDateRange FilterKind = "daterange"
	FilterText      FilterKind = "text"
	FilterNumber    FilterKind = "number"
	FilterCheckbox  FilterKind = "checkbox"
)

// Filter is the widget state of one filter: the options offered and what is selected.
type Filter struct {
	Key     string     `json:"key"`
	Label   string     `json:"label"`
	Kind    FilterKind `json:"kind"`
	Options []string   `json:"options,omitempty"`
	Value   string     `json:"value"`
	From    string     `json:"from,omitempty"`
	To      string     `json:"to,omitempty"`
	Min     int        `json:"min,omitempty"`
	Max     int        `json:"max,omitempty"`
}

// Params are the raw query parameters of a page request.
type Params map[string]string

func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p[key])
}

// Selected returns the chosen value of a select filter; "" when it is off.
func (p Params) Selected(key string) string {
	v := p.Get(key)
	if v == "" || v == All {
		return ""
	}
	return v
}

func (p Params) Bool(key string) bool {
	switch strings.ToLower(p.Get(key)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Int reads key clamped to [min, max]; missing or malformed values give def.
func (p Params) Int(key string, def, min, max int) int {
	n, err := strconv.Atoi(p.Get(key))
	if err != nil {
		n = def
	}
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}

/* ===============================
   Filter application
=================================*/

// Select offers the distinct values of column in t (the rows still left after any
// earlier filter) and keeps the rows equal to the selection. ok is false when t has
// no such column, in which case no filter is shown and t is returned as is.
func Select(t tabular.Table, params Params, key, column, label string) (out tabular.Table, f Filter, ok bool) {
	if !t.HasColumn(column) {
		return t, Filter{}, false
	}
	f = Filter{
		Key:     key,
		Label:   label,
		Kind:    FilterSelect,
		Options: append([]string{All}, t.Distinct(column)...),
		Value:   All,
	}
	sel := params.Selected(key)
	if sel == "" {
		return t, f, true
	}
	f.Value = sel
	return t.Equal(column, sel), f, true
}

// DateRange keeps rows whose column falls within the inclusive range given by
// key_from and key_to. Missing bounds default to the earliest and latest date in t.
func DateRange(t tabular.Table, params Params, key, column, label string) (out tabular.Table, f Filter, ok bool) {
	if !t.HasColumn(column) {
		return t, Filter{}, false
	}
	f = Filter{Key: key, Label: label, Kind: FilterDateRange}
	lo, hi, found := t.DateBounds(column)
	if found {
		f.From, f.To = lo.Format(tabular.DateLayout), hi.Format(tabular.DateLayout)
	}

	fromRaw, toRaw := params.Get(key+"_from"), params.Get(key+"_to")
	if fromRaw == "" && toRaw == "" {
		return t, f, true
	}
	if v, parsed := tabular.ParseTime(fromRaw); parsed {
		lo, f.From = v, v.Format(tabular.DateLayout)
	}
	if v, parsed := tabular.ParseTime(toRaw); parsed {
		hi, f.To = v, v.Format(tabular.DateLayout)
	}
	if !found && (fromRaw == "" || toRaw == "") {
		return t, f, true
	}
	return t.DateRange(column, lo, hi), f, true
}

func SearchFilter(params Params, key, label string) Filter {
	return Filter{Key: key, Label: label, Kind: FilterText, Value: params.Get(key)}
}

func NumberFilter(key, label string, value, min, max int) Filter {
	return Filter{Key: key, Label: label, Kind: FilterNumber, Value: strconv.Itoa(value), Min: min, Max: max}
}

func CheckboxFilter(params Params, key, label string) Filter {
	v := "false"
	if params.Bool(key) {
		v = "true"
	}
	return Filter{Key: key, Label: label, Kind: FilterCheckbox, Value: v}
}

// ChoiceFilter is a select whose options come from a fixed list rather than the rows.
func ChoiceFilter(params Params, key, label string, options []string) Filter {
	f := Filter{Key: key, Label: label, Kind: FilterSelect, Options: options, Value: params.Get(key)}
	if f.Value == "" && len(options) > 0 {
		f.Value = options[0]
	}
	return f
}
