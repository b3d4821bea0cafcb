// Package page is the composition model shared by every dashboard view: a page is an
// ordered list of sections, and each section either carries its data or the reason it
// could not be built.
package page

import (
	"fmt"

	"coachingku_backend/internals/charts"
	"coachingku_backend/internals/store"
	"coachingku_backend/internals/tabular"
)

type SectionKind string

const (
	KindMetric  SectionKind = "metric"
	KindTable   SectionKind = "table"
	KindChart   SectionKind = "chart"
	KindForm    SectionKind = "form"
	KindMessage SectionKind = "message"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Metric struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type TableView struct {
	Caption string        `json:"caption,omitempty"`
	Total   int           `json:"total"`
	Shown   int           `json:"shown"`
	Data    tabular.Table `json:"data"`
	// Export is the download link for the rows behind this view, if any.
	Export string `json:"export,omitempty"`
}

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Section is one independently built block of a page. Failure is set when the
// block degraded; the other payload fields then hold the fallback, if any.
type Section struct {
	Kind    SectionKind    `json:"kind"`
	Title   string         `json:"title,omitempty"`
	Metric  *Metric        `json:"metric,omitempty"`
	Table   *TableView     `json:"table,omitempty"`
	Chart   *charts.Chart  `json:"chart,omitempty"`
	Form    *Form          `json:"form,omitempty"`
	Message *Message       `json:"message,omitempty"`
	Failure *store.Failure `json:"failure,omitempty"`
}

func (s Section) Failed() bool { return s.Failure != nil }

type Page struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Filters  []Filter  `json:"filters,omitempty"`
	Sections []Section `json:"sections"`
}

func New(key, title string) *Page {
	return &Page{Key: key, Title: title, Sections: []Section{}}
}

func (p *Page) Add(s ...Section) *Page {
	p.Sections = append(p.Sections, s...)
	return p
}

func (p *Page) AddFilter(f ...Filter) *Page {
	p.Filters = append(p.Filters, f...)
	return p
}

// Chart finds a chart section by key.
func (p *Page) Chart(key string) (charts.Chart, bool) {
	for _, s := range p.Sections {
		if s.Chart != nil && s.Chart.Key == key {
			return *s.Chart, true
		}
	}
	return charts.Chart{}, false
}

// Metric finds a metric section by label.
func (p *Page) Metric(label string) (Metric, bool) {
	for _, s := range p.Sections {
		if s.Metric != nil && s.Metric.Label == label {
			return *s.Metric, true
		}
	}
	return Metric{}, false
}

// Tables returns every table section in page order.
func (p *Page) Tables() []TableView {
	out := make([]TableView, 0)
	for _, s := range p.Sections {
		if s.Table != nil {
			out = append(out, *s.Table)
		}
	}
	return out
}

// Messages returns every message section in page order.
func (p *Page) Messages() []Message {
	out := make([]Message, 0)
	for _, s := range p.Sections {
		if s.Message != nil {
			out = append(out, *s.Message)
		}
	}
	return out
}

/* ===============================
   Section constructors
=================================*/

func MetricSection(label string, value float64, display string) Section {
	if display == "" {
		display = tabular.String(value)
	}
	return Section{Kind: KindMetric, Metric: &Metric{Label: label, Value: value, Display: display}}
}

// FailedMetric keeps the metric on the page with a zero value and records why.
func FailedMetric(label string, err error) Section {
	s := MetricSection(label, 0, "0")
	s.Failure = store.Fail(label, err)
	return s
}

func TableSection(title, caption string, t tabular.Table) Section {
	return Section{Kind: KindTable, Title: title, Table: &TableView{
		Caption: caption,
		Total:   t.Len(),
		Shown:   t.Len(),
		Data:    t,
	}}
}

func ChartSection(c charts.Chart) Section {
	return Section{Kind: KindChart, Title: c.Title, Chart: &c}
}

// ChartOrInfo shows c, or a neutral message when it has nothing to plot.
func ChartOrInfo(c charts.Chart, emptyText string) Section {
	if c.Empty() {
		s := Info(emptyText)
		s.Title = c.Title
		return s
	}
	return ChartSection(c)
}

func FormSection(f Form) Section {
	return Section{Kind: KindForm, Title: f.Title, Form: &f}
}

func Info(text string) Section {
	return Section{Kind: KindMessage, Message: &Message{Level: LevelInfo, Text: text}}
}

func Warning(text string) Section {
	return Section{Kind: KindMessage, Message: &Message{Level: LevelWarning, Text: text}}
}

// Error renders "<prefix>: <raw error>" and carries the classified failure.
func Error(prefix string, err error) Section {
	return Section{
		Kind:    KindMessage,
		Message: &Message{Level: LevelError, Text: fmt.Sprintf("%s: %v", prefix, err)},
		Failure: store.Fail(prefix, err),
	}
}

// Notice turns the outcome of a form post (carried back as query params) into a message.
func Notice(params Params) (Section, bool) {
	if v := params.Get("notice"); v != "" {
		return Section{Kind: KindMessage, Message: &Message{Level: LevelSuccess, Text: v}}, true
	}
	if v := params.Get("error"); v != "" {
		return Section{Kind: KindMessage, Message: &Message{Level: LevelError, Text: v}}, true
	}
	return Section{}, false
}
