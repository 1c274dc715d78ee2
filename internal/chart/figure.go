package chart

// Plotly-compatible figure description. Only the attributes the dashboard
// host actually consumes are modeled; the JSON shape matches what a plotly
// Figure serializes to, so the host can hand it straight to its renderer.

// Figure is the serializable object graph handed to the HTTP layer.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one drawable series: scatter, bar or violin.
type Trace struct {
	Type       string        `json:"type"`
	Name       string        `json:"name,omitempty"`
	X          []interface{} `json:"x,omitempty"`
	Y          []interface{} `json:"y,omitempty"`
	Mode       string        `json:"mode,omitempty"`
	Line       *Line         `json:"line,omitempty"`
	Marker     *Marker       `json:"marker,omitempty"`
	Box        *Visible      `json:"box,omitempty"`
	Meanline   *Visible      `json:"meanline,omitempty"`
	Opacity    float64       `json:"opacity,omitempty"`
	ShowLegend *bool         `json:"showlegend,omitempty"`
}

// Line styles the stroke of a scatter or violin trace.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Marker styles the points of a scatter or bar trace.
type Marker struct {
	Color   string  `json:"color,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Visible toggles a sub-element such as a violin's box overlay.
type Visible struct {
	Visible bool `json:"visible"`
}

// Layout carries the figure-wide styling.
type Layout struct {
	PaperBgColor string       `json:"paper_bgcolor"`
	PlotBgColor  string       `json:"plot_bgcolor"`
	Template     string       `json:"template"`
	Font         *Font        `json:"font,omitempty"`
	XAxis        Axis         `json:"xaxis"`
	YAxis        Axis         `json:"yaxis"`
	Margin       Margin       `json:"margin"`
	Legend       Legend       `json:"legend"`
	Annotations  []Annotation `json:"annotations"`
	Images       []Image      `json:"images,omitempty"`
	Autosize     bool         `json:"autosize"`
	Height       int          `json:"height"`
}

// Font styles a text element.
type Font struct {
	Family string  `json:"family,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// Axis styles one plot axis.
type Axis struct {
	Title         *AxisTitle `json:"title,omitempty"`
	ShowGrid      bool       `json:"showgrid"`
	ShowLine      bool       `json:"showline"`
	LineWidth     float64    `json:"linewidth,omitempty"`
	LineColor     string     `json:"linecolor,omitempty"`
	ZeroLine      bool       `json:"zeroline"`
	ZeroLineColor string     `json:"zerolinecolor,omitempty"`
	TickWidth     float64    `json:"tickwidth,omitempty"`
	TickColor     string     `json:"tickcolor,omitempty"`
	Ticks         string     `json:"ticks,omitempty"`
	TickFont      *Font      `json:"tickfont,omitempty"`
	TickFormat    string     `json:"tickformat,omitempty"`
}

// AxisTitle is the axis label text.
type AxisTitle struct {
	Text string `json:"text"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend styles the trace legend.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Font        *Font   `json:"font,omitempty"`
}

// Annotation is a positioned text element such as the title or footnote.
type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	XShift    float64 `json:"xshift,omitempty"`
	YShift    float64 `json:"yshift,omitempty"`
	Align     string  `json:"align,omitempty"`
	Font      *Font   `json:"font,omitempty"`
}

// Image is a layout image such as the corner logo.
type Image struct {
	Source  string  `json:"source"`
	XRef    string  `json:"xref,omitempty"`
	YRef    string  `json:"yref,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SizeX   float64 `json:"sizex"`
	SizeY   float64 `json:"sizey"`
	XAnchor string  `json:"xanchor,omitempty"`
	YAnchor string  `json:"yanchor,omitempty"`
	Sizing  string  `json:"sizing,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Layer   string  `json:"layer,omitempty"`
	Visible bool    `json:"visible"`
}
