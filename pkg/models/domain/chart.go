package domain

import "github.com/shopspring/decimal"

type ChartKind string

const (
	ChartKindBar        ChartKind = "bar"
	ChartKindGroupedBar ChartKind = "grouped_bar"
	ChartKindScatter    ChartKind = "scatter"
	ChartKindLine       ChartKind = "line"
	// ChartKindEmpty marks a chart with nothing to draw.
	ChartKindEmpty ChartKind = "empty"
)

// ChartSpec is a renderer-agnostic chart description.
type ChartSpec struct {
	Kind        ChartKind
	Title       string
	XKey        string   // sales, region, month
	YKeys       []string // one per series metric
	ColorKey    string   // scatter only
	HoverKeys   []string // scatter only
	XLabel      string
	YLabel      string
	LegendTitle string
	Series      []ChartSeries
	Style       ChartStyle
}

func (c ChartSpec) IsEmpty() bool {
	return c.Kind == ChartKindEmpty || c.Kind == ""
}

// ChartSeries is one trace. Category charts fill Data, scatter charts fill Points.
type ChartSeries struct {
	Name   string
	Color  string
	Data   []ChartPoint
	Points []ScatterPoint
}

type ChartPoint struct {
	Label string
	Value decimal.Decimal
}

type ScatterPoint struct {
	X     decimal.Decimal
	Y     decimal.Decimal
	Hover []HoverValue
}

type HoverValue struct {
	Key   string
	Value string
}

// ChartStyle carries presentation hints; renderers may ignore any of them.
type ChartStyle struct {
	Template    string // dark
	TitleAlign  string // center
	Transparent bool
	Markers     bool
	BarMode     string // group
}
