package domain

import "github.com/shopspring/decimal"

// SeriesPoint is one group of a GroupedSeries.
type SeriesPoint struct {
	Key    string
	Values map[Measure]decimal.Decimal
}

// Value returns the aggregate for a metric, zero when the metric was not reduced.
func (p SeriesPoint) Value(metric Measure) decimal.Decimal {
	v, ok := p.Values[metric]
	if !ok {
		return decimal.Zero
	}
	return v
}

// GroupedSeries is an ordered key -> aggregates sequence. Keys are unique and
// the order is the chart x-axis order.
type GroupedSeries []SeriesPoint
