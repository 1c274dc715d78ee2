package chart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hedgeanalytics/bis-widgets-go/internal/config"
	"github.com/hedgeanalytics/bis-widgets-go/internal/dataset"
)

// Kind selects the chart shape.
type Kind string

const (
	KindLine         Kind = "line"
	KindBar          Kind = "bar"
	KindRegression   Kind = "regression"
	KindDistribution Kind = "distribution"
)

// recentWindow is how many trailing points the regression chart highlights.
const recentWindow = 12

// ParseKind maps the chart query parameter to a Kind plus a percent-axis
// flag. The flag is raised when the kind name carries a percent-change
// marker ("pct"), mirroring the naming convention of the chart variants.
// Unknown kinds fall through to line.
func ParseKind(value string) (Kind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	percent := strings.Contains(normalized, "pct")

	switch {
	case strings.HasPrefix(normalized, "bar"):
		return KindBar, percent
	case normalized == "regression":
		return KindRegression, percent
	case normalized == "distribution":
		return KindDistribution, percent
	default:
		return KindLine, percent
	}
}

// Options carries the per-request display settings for one figure.
type Options struct {
	// Title is the bold annotation above the plot.
	Title string
	// Units labels the y axis.
	Units string
	// Theme is "light" or "dark"; anything else renders as dark.
	Theme string
	// Kind selects the chart shape.
	Kind Kind
	// PercentAxis formats y ticks as percentages (",.2%").
	PercentAxis bool
}

// theme bundles the colors derived from the light/dark switch.
type theme struct {
	text     string
	line     string
	zeroLine string
	template string
	paper    string
}

func themeFor(name string) theme {
	if name == "light" {
		return theme{
			text:     "#0D1018",
			line:     "black",
			zeroLine: "#ededed",
			template: "plotly_white",
			paper:    "rgba(250,250,250)",
		}
	}
	return theme{
		text:     "#FFFFFF",
		line:     "white",
		zeroLine: "#333333",
		template: "plotly_dark",
		paper:    "rgba(30, 49, 66,1)",
	}
}

// Renderer builds figure descriptions from pivoted matrices. It holds only
// static styling inputs; rendering itself is pure.
type Renderer struct {
	sourceNote string
	logoURL    string
}

// NewRenderer creates a Renderer from chart configuration.
func NewRenderer(cfg config.ChartConfig) *Renderer {
	return &Renderer{
		sourceNote: cfg.SourceNote,
		logoURL:    cfg.LogoURL,
	}
}

// Render produces the figure for a matrix and display options. The color
// assignment is order-stable: column i of an N-column matrix always maps to
// Palette(N)[i].
func (r *Renderer) Render(m *dataset.Matrix, opts Options) *Figure {
	colors := Palette(len(m.Columns))

	var traces []Trace
	switch opts.Kind {
	case KindBar:
		traces = barTraces(m, colors)
	case KindRegression:
		traces = regressionTraces(m)
	case KindDistribution:
		traces = distributionTraces(m, colors)
	default:
		traces = lineTraces(m, colors)
	}

	fig := &Figure{
		Data:   traces,
		Layout: r.layout(m, opts),
	}
	return fig
}

// lineTraces draws one line per column against the date axis.
func lineTraces(m *dataset.Matrix, colors []string) []Trace {
	traces := make([]Trace, 0, len(m.Columns))
	for c, name := range m.Columns {
		traces = append(traces, Trace{
			Type: "scatter",
			Name: name,
			X:    dateAxis(m),
			Y:    valueAxis(m.Column(c)),
			Line: &Line{Color: colors[c], Width: 3},
		})
	}
	return traces
}

// barTraces draws one bar series per column.
func barTraces(m *dataset.Matrix, colors []string) []Trace {
	traces := make([]Trace, 0, len(m.Columns))
	for c, name := range m.Columns {
		traces = append(traces, Trace{
			Type:   "bar",
			Name:   name,
			X:      dateAxis(m),
			Y:      valueAxis(m.Column(c)),
			Marker: &Marker{Color: colors[c]},
		})
	}
	return traces
}

// regressionTraces scatters the first column against the second, fits a
// least-squares line over all points and highlights the most recent 12.
// With fewer than two columns there is nothing to relate and no traces are
// produced.
func regressionTraces(m *dataset.Matrix) []Trace {
	if len(m.Columns) < 2 {
		return nil
	}

	// Drop rows where either side is null.
	var xs, ys []decimal.Decimal
	for r := range m.Dates {
		x, y := m.Cells[r][0], m.Cells[r][1]
		if x == nil || y == nil {
			continue
		}
		xs = append(xs, *x)
		ys = append(ys, *y)
	}
	if len(xs) == 0 {
		return nil
	}

	showLegend := true
	traces := []Trace{{
		Type:   "scatter",
		Mode:   "markers",
		Name:   fmt.Sprintf("%s vs %s (All)", m.Columns[0], m.Columns[1]),
		X:      decimalAxis(xs),
		Y:      decimalAxis(ys),
		Marker: &Marker{Color: "#3b7484", Size: 6, Opacity: 0.5},
	}}

	if slope, intercept, ok := leastSquares(xs, ys); ok {
		fitted := make([]decimal.Decimal, len(xs))
		for i, x := range xs {
			fitted[i] = slope.Mul(x).Add(intercept)
		}
		traces = append(traces, Trace{
			Type: "scatter",
			Mode: "lines",
			Name: "Regression",
			X:    decimalAxis(xs),
			Y:    decimalAxis(fitted),
			Line: &Line{Color: "#ec772a", Width: 2},
		})
	}

	recent := len(xs) - recentWindow
	if recent < 0 {
		recent = 0
	}
	traces = append(traces, Trace{
		Type:       "scatter",
		Mode:       "markers",
		Name:       fmt.Sprintf("Latest %d", recentWindow),
		X:          decimalAxis(xs[recent:]),
		Y:          decimalAxis(ys[recent:]),
		Marker:     &Marker{Color: "red", Size: 10, Symbol: "diamond"},
		ShowLegend: &showLegend,
	})

	return traces
}

// distributionTraces draws a violin per column over its non-null values,
// overlaying the most recent value as a distinguished marker. Only the first
// marker appears in the legend.
func distributionTraces(m *dataset.Matrix, colors []string) []Trace {
	var traces []Trace
	for c, name := range m.Columns {
		var values []decimal.Decimal
		for _, v := range m.Column(c) {
			if v != nil {
				values = append(values, *v)
			}
		}

		traces = append(traces, Trace{
			Type:     "violin",
			Name:     name,
			Y:        decimalAxis(values),
			Box:      &Visible{Visible: true},
			Meanline: &Visible{Visible: true},
			Line:     &Line{Color: colors[c%len(colors)]},
			Opacity:  0.7,
		})

		if len(values) == 0 {
			continue
		}
		latest := values[len(values)-1]
		showLegend := c == 0
		traces = append(traces, Trace{
			Type:       "scatter",
			Mode:       "markers",
			Name:       "Latest",
			X:          []interface{}{name},
			Y:          decimalAxis([]decimal.Decimal{latest}),
			Marker:     &Marker{Color: "red", Size: 14, Symbol: "diamond"},
			ShowLegend: &showLegend,
		})
	}
	return traces
}

// layout builds the shared figure styling for every chart kind.
func (r *Renderer) layout(m *dataset.Matrix, opts Options) Layout {
	th := themeFor(opts.Theme)

	xTitle := ""
	if opts.Kind == KindRegression && len(m.Columns) >= 2 {
		xTitle = m.Columns[0]
	}

	xaxis := Axis{
		ShowGrid:      false,
		ShowLine:      true,
		LineWidth:     1.2,
		LineColor:     th.line,
		ZeroLine:      true,
		ZeroLineColor: th.zeroLine,
		TickWidth:     1,
		TickColor:     th.line,
		Ticks:         "inside",
		TickFont:      &Font{Color: th.text},
	}
	if xTitle != "" {
		xaxis.Title = &AxisTitle{Text: xTitle}
	}

	yaxis := Axis{
		Title:         &AxisTitle{Text: opts.Units},
		ShowGrid:      false,
		ShowLine:      true,
		LineWidth:     1.2,
		LineColor:     th.line,
		ZeroLine:      true,
		ZeroLineColor: th.zeroLine,
		TickWidth:     1,
		TickColor:     th.line,
		Ticks:         "inside",
		TickFont:      &Font{Color: th.text},
	}
	if opts.PercentAxis {
		yaxis.TickFormat = ",.2%"
	}

	return Layout{
		PaperBgColor: th.paper,
		PlotBgColor:  "rgba(0,0,0,0)",
		Template:     th.template,
		Font:         &Font{Family: "Verdana", Color: th.text},
		XAxis:        xaxis,
		YAxis:        yaxis,
		Margin:       Margin{L: 50, R: 50, T: 70, B: 70},
		Legend: Legend{
			Orientation: "h",
			YAnchor:     "bottom",
			Y:           1.0,
			XAnchor:     "left",
			X:           0,
			Font:        &Font{Family: "Verdana", Color: th.text},
		},
		Annotations: []Annotation{
			{
				Text:      "<b>" + opts.Title + "</b>",
				ShowArrow: false,
				XRef:      "paper",
				YRef:      "paper",
				X:         0,
				Y:         1.25,
				YAnchor:   "top",
				Align:     "left",
				Font:      &Font{Size: 20, Color: th.text},
			},
			{
				Text:      r.sourceNote,
				ShowArrow: false,
				XRef:      "paper",
				YRef:      "paper",
				X:         0,
				Y:         -0.22,
				XAnchor:   "left",
				YAnchor:   "bottom",
				XShift:    -1,
				YShift:    -5,
				Align:     "left",
				Font:      &Font{Family: "Verdana", Size: 10, Color: th.text},
			},
		},
		Images: []Image{{
			Source:  r.logoURL,
			XRef:    "paper",
			YRef:    "paper",
			X:       0.9,
			Y:       -0.2,
			SizeX:   0.2,
			SizeY:   0.2,
			XAnchor: "center",
			YAnchor: "middle",
			Sizing:  "contain",
			Opacity: 1,
			Layer:   "below",
			Visible: true,
		}},
		Autosize: true,
		Height:   500,
	}
}

// dateAxis formats the matrix dates for the x axis.
func dateAxis(m *dataset.Matrix) []interface{} {
	axis := make([]interface{}, len(m.Dates))
	for i, d := range m.Dates {
		axis[i] = d.Format("2006-01-02")
	}
	return axis
}

// valueAxis converts a nullable column to trace values; nil cells stay null
// in the JSON so the renderer shows gaps instead of zeros.
func valueAxis(values []*decimal.Decimal) []interface{} {
	axis := make([]interface{}, len(values))
	for i, v := range values {
		if v != nil {
			axis[i] = *v
		}
	}
	return axis
}

// decimalAxis converts a dense value list to trace values.
func decimalAxis(values []decimal.Decimal) []interface{} {
	axis := make([]interface{}, len(values))
	for i, v := range values {
		axis[i] = v
	}
	return axis
}

// leastSquares fits y = slope*x + intercept over the point set. It reports
// ok=false when fewer than two points exist or all x values coincide.
func leastSquares(xs, ys []decimal.Decimal) (slope, intercept decimal.Decimal, ok bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return decimal.Zero, decimal.Zero, false
	}

	n := decimal.NewFromInt(int64(len(xs)))
	var sumX, sumY, sumXY, sumXX decimal.Decimal
	for i := range xs {
		sumX = sumX.Add(xs[i])
		sumY = sumY.Add(ys[i])
		sumXY = sumXY.Add(xs[i].Mul(ys[i]))
		sumXX = sumXX.Add(xs[i].Mul(xs[i]))
	}

	denominator := n.Mul(sumXX).Sub(sumX.Mul(sumX))
	if denominator.IsZero() {
		return decimal.Zero, decimal.Zero, false
	}

	slope = n.Mul(sumXY).Sub(sumX.Mul(sumY)).Div(denominator)
	intercept = sumY.Sub(slope.Mul(sumX)).Div(n)
	return slope, intercept, true
}
