package domain

// ColorToken is a presentational colour, e.g. "#1f77b4".
type ColorToken string

const (
	ColorBlue   ColorToken = "#1f77b4"
	ColorOrange ColorToken = "#ff7f0e"
	ColorGreen  ColorToken = "#2ca02c"
)

// KpiEntry is one formatted headline metric.
type KpiEntry struct {
	Label  string
	Value  string
	Accent ColorToken
}

// SceneDescriptor is one titled section of the story: KPIs plus one chart.
type SceneDescriptor struct {
	ID       string
	Title    string
	Subtitle string
	KPIs     []KpiEntry
	Chart    ChartSpec
}

// IsNoData reports whether the descriptor is the placeholder built for an empty table.
func (s SceneDescriptor) IsNoData() bool {
	return len(s.KPIs) == 0 && s.Chart.IsEmpty()
}

// Story is the ordered presentation handed to renderers.
type Story struct {
	Title       string
	RecordCount int
	Scenes      []SceneDescriptor
}
