package charts

import (
	"errors"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

var ErrEmpty = errors.New("chart has no data")

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorRed,
	chart.ColorAlternateGray,
}

// Render writes c as PNG. Single-series bar charts use go-chart's bar renderer; line
// charts and multi-series charts plot every series over an index axis labelled with c.Labels.
func Render(w io.Writer, c Chart, width, height int) error {
	if c.Empty() || len(c.Series) == 0 {
		return ErrEmpty
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if c.Kind == Bar && len(c.Series) == 1 {
		return renderBar(w, c, width, height)
	}
	return renderSeries(w, c, width, height)
}

func yRange(c Chart) *chart.ContinuousRange {
	top := c.max()
	if top <= 0 {
		top = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: top * 1.1}
}

func renderBar(w io.Writer, c Chart, width, height int) error {
	bars := make([]chart.Value, 0, len(c.Labels))
	for i, l := range c.Labels {
		bars = append(bars, chart.Value{
			Label: l,
			Value: c.Series[0].Values[i],
			Style: chart.Style{FillColor: palette[0], StrokeColor: palette[0]},
		})
	}
	barWidth := (width - 120) / (len(bars) * 2)
	if barWidth < 8 {
		barWidth = 8
	}
	if barWidth > 60 {
		barWidth = 60
	}
	bc := chart.BarChart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		YAxis:      chart.YAxis{Range: yRange(c)},
		Bars:       bars,
	}
	return bc.Render(chart.PNG, w)
}

func renderSeries(w io.Writer, c Chart, width, height int) error {
	n := len(c.Labels)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, 0, n)
	for i, l := range c.Labels {
		xs[i] = float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: xs[i], Label: l})
	}

	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		col := palette[i%len(palette)]
		style := chart.Style{StrokeColor: col, StrokeWidth: 2, DotColor: col, DotWidth: 4}
		if c.Kind == Bar {
			// grouped bars are drawn as dots so series stay distinguishable
			style = chart.Style{StrokeWidth: chart.Disabled, DotColor: col, DotWidth: 7}
		}
		ys := s.Values
		xv := xs
		if n == 1 {
			// a single point needs two x values to form a range
			xv = []float64{xs[0], xs[0] + 1}
			ys = []float64{s.Values[0], s.Values[0]}
		}
		series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xv, YValues: ys, Style: style})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  c.XLabel,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(n + 1)},
		},
		YAxis:  chart.YAxis{Range: yRange(c)},
		Series: series,
	}
	if len(series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch.Render(chart.PNG, w)
}
