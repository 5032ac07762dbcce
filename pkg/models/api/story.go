package api

type Story struct {
	Title       string  `json:"title"`
	RecordCount int     `json:"record_count"`
	Scenes      []Scene `json:"scenes"`
}

type Scene struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	KPIs     []KPI  `json:"kpis"`
	Chart    Chart  `json:"chart"`
	NoData   bool   `json:"no_data,omitempty"`
}

type KPI struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Accent string `json:"accent,omitempty"`
}

type Chart struct {
	Kind        string        `json:"kind"`
	Title       string        `json:"title,omitempty"`
	XKey        string        `json:"x_key,omitempty"`
	YKeys       []string      `json:"y_keys,omitempty"`
	ColorKey    string        `json:"color_key,omitempty"`
	HoverKeys   []string      `json:"hover_keys,omitempty"`
	XLabel      string        `json:"x_label,omitempty"`
	YLabel      string        `json:"y_label,omitempty"`
	LegendTitle string        `json:"legend_title,omitempty"`
	Series      []ChartSeries `json:"series"`
	Style       ChartStyle    `json:"style"`
}

type ChartSeries struct {
	Name   string         `json:"name"`
	Color  string         `json:"color,omitempty"`
	Data   []ChartPoint   `json:"data,omitempty"`
	Points []ScatterPoint `json:"points,omitempty"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ScatterPoint struct {
	X     float64           `json:"x"`
	Y     float64           `json:"y"`
	Hover map[string]string `json:"hover,omitempty"`
}

type ChartStyle struct {
	Template    string `json:"template,omitempty"`
	TitleAlign  string `json:"title_align,omitempty"`
	Transparent bool   `json:"transparent"`
	Markers     bool   `json:"markers,omitempty"`
	BarMode     string `json:"bar_mode,omitempty"`
}

type Health struct {
	Status      string `json:"status"`
	RecordCount int    `json:"record_count"`
}
