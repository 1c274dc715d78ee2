package widgets

// Widget metadata consumed by the dashboard host via /widgets.json. The
// registry is built once at startup and read-only afterwards; endpoints no
// longer self-register through side effects, the table below is the single
// source of truth wired into route setup.

// GridData describes the default widget size on the dashboard grid.
type GridData struct {
	W int `json:"w"`
	H int `json:"h"`
}

// ParamOption is one selectable value for a widget parameter.
type ParamOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Param describes one configurable widget parameter.
type Param struct {
	ParamName   string        `json:"paramName"`
	Type        string        `json:"type"`
	Default     string        `json:"default"`
	Description string        `json:"description"`
	Options     []ParamOption `json:"options,omitempty"`
}

// Widget is the metadata record for one dashboard widget.
type Widget struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Endpoint    string   `json:"endpoint"`
	GridData    GridData `json:"gridData"`
	Params      []Param  `json:"params"`
}

// Registry maps widget IDs to their metadata.
type Registry map[string]Widget

// Default endpoint parameter values, shared with the handlers so the widget
// schema and the HTTP defaults cannot drift apart.
const (
	DefaultResourceID = "WS_TC"
	DefaultKey        = "Q.CN+XM+JP+US.N.A.M.USD.A"
	DefaultUnits      = "USD bn"
)

// countryKeyOptions lists the key filter expressions offered by the table
// widget; the wildcard country position selects all borrowers.
var countryKeyOptions = []ParamOption{
	{Value: "Q..N.A.M.USD.A", Label: "All"},
	{Value: "Q.AU.N.A.M.USD.A", Label: "Australia"},
	{Value: "Q.CA.N.A.M.USD.A", Label: "Canada"},
	{Value: "Q.CN.N.A.M.USD.A", Label: "China"},
	{Value: "Q.XM.N.A.M.USD.A", Label: "EuroArea"},
	{Value: "Q.FR.N.A.M.USD.A", Label: "France"},
	{Value: "Q.DE.N.A.M.USD.A", Label: "Germany"},
	{Value: "Q.IT.N.A.M.USD.A", Label: "Italy"},
	{Value: "Q.JP.N.A.M.USD.A", Label: "Japan"},
	{Value: "Q.ES.N.A.M.USD.A", Label: "Spain"},
	{Value: "Q.GB.N.A.M.USD.A", Label: "United Kingdom"},
	{Value: "Q.US.N.A.M.USD.A", Label: "United States"},
}

// NewRegistry builds the static widget registry.
func NewRegistry() Registry {
	return Registry{
		"bis_credit_table": {
			ID:          "bis_credit_table",
			Name:        "BIS Credit Data Table",
			Description: "Tabular view of BIS credit data time series",
			Type:        "table",
			Endpoint:    "bis_credit_table",
			GridData:    GridData{W: 20, H: 13},
			Params: []Param{
				{
					ParamName:   "resource_id",
					Type:        "text",
					Default:     DefaultResourceID,
					Description: "Resource ID",
					Options: []ParamOption{
						{Value: "WS_TC", Label: "Total credit to non-financial sector"},
					},
				},
				{
					ParamName:   "key",
					Type:        "text",
					Default:     DefaultKey,
					Description: "Key (e.g., Q.US.N.A.M.XDC.U or Q.US+ES.N.A.M.XDC.U for multiple countries)",
					Options:     countryKeyOptions,
				},
			},
		},
		"bis_credit_chart": {
			ID:          "bis_credit_chart",
			Name:        "BIS Chart",
			Description: "Plotly chart of BIS credit data for multiple countries",
			Type:        "chart",
			Endpoint:    "bis_credit_chart",
			GridData:    GridData{W: 20, H: 13},
			Params: []Param{
				{
					ParamName:   "resource_id",
					Type:        "text",
					Default:     DefaultResourceID,
					Description: "Resource ID",
				},
				{
					ParamName:   "key",
					Type:        "text",
					Default:     DefaultKey,
					Description: "Key (e.g., Q.US.N.A.M.XDC.U or Q.US+ES.N.A.M.XDC.U for multiple countries)",
				},
				{
					ParamName:   "units",
					Type:        "text",
					Default:     DefaultUnits,
					Description: "Units label",
				},
				{
					ParamName:   "startdate",
					Type:        "date",
					Default:     "",
					Description: "Start date (yyyy-mm-dd)",
				},
				{
					ParamName:   "mode",
					Type:        "text",
					Default:     "total",
					Description: "Display mode",
					Options: []ParamOption{
						{Value: "total", Label: "Total Outstanding"},
						{Value: "yoy", Label: "Year-on-Year Change"},
						{Value: "qoq", Label: "Quarterly Change"},
					},
				},
			},
		},
	}
}
