// Package chart shapes already-aggregated data into declarative chart specs.
// It never reads a domain.Table; callers hand it series or record slices.
package chart

import (
	"github.com/de-tools/story-atlas/pkg/models/domain"
)

const (
	barColor   = "#4c78a8"
	lineColor  = "#636efa"
	legendName = "Metric"
)

// Qualitative palette for categorical colouring.
var defaultColors = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// metricColors pins the colours used when a metric is drawn as its own series.
var metricColors = map[domain.Measure]string{
	domain.MeasureSales:  string(domain.ColorBlue),
	domain.MeasureProfit: string(domain.ColorGreen),
}

// Labels are the human texts of a chart.
type Labels struct {
	Title string
	X     string
	Y     string
}

func baseStyle() domain.ChartStyle {
	return domain.ChartStyle{
		Template:    "dark",
		TitleAlign:  "center",
		Transparent: true,
	}
}

// Empty is the designated chart for scenes without data.
func Empty() domain.ChartSpec {
	return domain.ChartSpec{Kind: domain.ChartKindEmpty}
}

// Bar draws one metric per key, keeping the series order.
func Bar(series domain.GroupedSeries, metric domain.Measure, xKey string, labels Labels) domain.ChartSpec {
	return domain.ChartSpec{
		Kind:   domain.ChartKindBar,
		Title:  labels.Title,
		XKey:   xKey,
		YKeys:  []string{metric.Name()},
		XLabel: labels.X,
		YLabel: labels.Y,
		Series: []domain.ChartSeries{{
			Name:  metric.Name(),
			Color: barColor,
			Data:  points(series, metric),
		}},
		Style: baseStyle(),
	}
}

// GroupedBar draws several metrics side by side per key. The order of metrics
// fixes the bar order inside each group; legend[i] names metrics[i].
func GroupedBar(series domain.GroupedSeries, metrics []domain.Measure, legend []string, xKey string, labels Labels) domain.ChartSpec {
	spec := domain.ChartSpec{
		Kind:        domain.ChartKindGroupedBar,
		Title:       labels.Title,
		XKey:        xKey,
		XLabel:      labels.X,
		YLabel:      labels.Y,
		LegendTitle: legendName,
		Style:       baseStyle(),
	}
	spec.Style.BarMode = "group"

	for i, m := range metrics {
		name := m.Name()
		if i < len(legend) && legend[i] != "" {
			name = legend[i]
		}
		color, ok := metricColors[m]
		if !ok {
			color = defaultColors[i%len(defaultColors)]
		}
		spec.YKeys = append(spec.YKeys, m.Name())
		spec.Series = append(spec.Series, domain.ChartSeries{
			Name:  name,
			Color: color,
			Data:  points(series, m),
		})
	}
	return spec
}

// Scatter plots one point per record, one series per colour value in first-seen order.
func Scatter(
	records []domain.TransactionRecord,
	x, y domain.Measure,
	color domain.Dimension,
	hover []domain.Field,
	labels Labels,
) domain.ChartSpec {
	spec := domain.ChartSpec{
		Kind:     domain.ChartKindScatter,
		Title:    labels.Title,
		XKey:     x.Name(),
		YKeys:    []string{y.Name()},
		ColorKey: color.Name(),
		XLabel:   labels.X,
		YLabel:   labels.Y,
		Style:    baseStyle(),
	}
	for _, f := range hover {
		spec.HoverKeys = append(spec.HoverKeys, f.Name())
	}

	index := make(map[string]int)
	for _, r := range records {
		group := color.Value(r)
		i, ok := index[group]
		if !ok {
			i = len(spec.Series)
			index[group] = i
			spec.Series = append(spec.Series, domain.ChartSeries{
				Name:  group,
				Color: defaultColors[i%len(defaultColors)],
			})
		}

		point := domain.ScatterPoint{X: x.Value(r), Y: y.Value(r)}
		for _, f := range hover {
			point.Hover = append(point.Hover, domain.HoverValue{Key: f.Name(), Value: f.Format(r)})
		}
		spec.Series[i].Points = append(spec.Series[i].Points, point)
	}
	return spec
}

// Line draws a metric over time. The series must already be in chronological order.
func Line(series domain.GroupedSeries, metric domain.Measure, xKey string, labels Labels) domain.ChartSpec {
	spec := domain.ChartSpec{
		Kind:   domain.ChartKindLine,
		Title:  labels.Title,
		XKey:   xKey,
		YKeys:  []string{metric.Name()},
		XLabel: labels.X,
		YLabel: labels.Y,
		Series: []domain.ChartSeries{{
			Name:  metric.Name(),
			Color: lineColor,
			Data:  points(series, metric),
		}},
		Style: baseStyle(),
	}
	spec.Style.Markers = true
	return spec
}

func points(series domain.GroupedSeries, metric domain.Measure) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 0, len(series))
	for _, p := range series {
		out = append(out, domain.ChartPoint{Label: p.Key, Value: p.Value(metric)})
	}
	return out
}
