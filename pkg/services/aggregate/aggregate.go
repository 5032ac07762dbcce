// Package aggregate computes KPI scalars and grouped series over transaction records.
// Every function is pure: inputs are never modified and results are freshly allocated.
package aggregate

import (
	"sort"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// KeyFunc derives a grouping key from a record.
type KeyFunc func(domain.TransactionRecord) string

// Sum adds up a measure across all records.
func Sum(records []domain.TransactionRecord, measure domain.Measure) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(measure.Value(r))
	}
	return total
}

// Mean averages a measure across all records.
func Mean(records []domain.TransactionRecord, measure domain.Measure) (decimal.Decimal, error) {
	if len(records) == 0 {
		return decimal.Zero, domain.ErrEmptyInput
	}
	return Sum(records, measure).Div(decimal.NewFromInt(int64(len(records)))), nil
}

// CountDistinct counts the distinct values of a dimension.
func CountDistinct(records []domain.TransactionRecord, dimension domain.Dimension) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[dimension.Value(r)] = struct{}{}
	}
	return len(seen)
}

// Ratio divides a summed numerator by a count.
func Ratio(numerator decimal.Decimal, denominator int) (decimal.Decimal, error) {
	if denominator == 0 {
		return decimal.Zero, domain.ErrDivisionByZero
	}
	return numerator.Div(decimal.NewFromInt(int64(denominator))), nil
}

// GroupSum partitions records by a dimension and sums each measure per partition.
// Groups appear in first-seen order.
func GroupSum(records []domain.TransactionRecord, dimension domain.Dimension, measures ...domain.Measure) domain.GroupedSeries {
	return GroupSumBy(records, dimension.Value, measures...)
}

// GroupSumBy is GroupSum over a derived key.
func GroupSumBy(records []domain.TransactionRecord, key KeyFunc, measures ...domain.Measure) domain.GroupedSeries {
	index := make(map[string]int)
	series := make(domain.GroupedSeries, 0)

	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(series)
			index[k] = i
			series = append(series, newPoint(k, measures))
		}
		for _, m := range measures {
			series[i].Values[m] = series[i].Values[m].Add(m.Value(r))
		}
	}
	return series
}

func newPoint(key string, measures []domain.Measure) domain.SeriesPoint {
	values := make(map[domain.Measure]decimal.Decimal, len(measures))
	for _, m := range measures {
		values[m] = decimal.Zero
	}
	return domain.SeriesPoint{Key: key, Values: values}
}

// SortSeriesDescending orders a copy of the series by metric, largest first.
// Ties keep their original relative order.
func SortSeriesDescending(series domain.GroupedSeries, metric domain.Measure) domain.GroupedSeries {
	out := clone(series)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value(metric).GreaterThan(out[j].Value(metric))
	})
	return out
}

// SortSeriesByKey orders a copy of the series by key ascending. Month ("2006-01")
// and year ("2006") keys sort chronologically this way.
func SortSeriesByKey(series domain.GroupedSeries) domain.GroupedSeries {
	out := clone(series)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

func clone(series domain.GroupedSeries) domain.GroupedSeries {
	out := make(domain.GroupedSeries, len(series))
	copy(out, series)
	return out
}

// ArgMaxGroup returns the dimension value with the largest summed measure.
// The first-seen group wins ties.
func ArgMaxGroup(records []domain.TransactionRecord, dimension domain.Dimension, measure domain.Measure) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrEmptyInput
	}
	return ArgMaxSeries(GroupSum(records, dimension, measure), measure)
}

// ArgMaxSeries returns the key with the largest metric; earlier keys win ties.
func ArgMaxSeries(series domain.GroupedSeries, metric domain.Measure) (string, error) {
	if len(series) == 0 {
		return "", domain.ErrEmptyInput
	}
	best := series[0]
	for _, p := range series[1:] {
		if p.Value(metric).GreaterThan(best.Value(metric)) {
			best = p
		}
	}
	return best.Key, nil
}
