package aggregate

import (
	"strconv"
	"time"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const monthKeyLayout = "2006-01"

// Bucket is the subset of records falling into one calendar period.
type Bucket struct {
	Key     string
	Start   time.Time
	Records []domain.TransactionRecord
}

// Buckets are kept in first-seen order; sort the summed series with SortSeriesByKey
// for time order.
type Buckets []Bucket

// Sum reduces every bucket to its measure sums, in bucket order.
func (b Buckets) Sum(measures ...domain.Measure) domain.GroupedSeries {
	series := make(domain.GroupedSeries, 0, len(b))
	for _, bucket := range b {
		p := newPoint(bucket.Key, measures)
		for _, m := range measures {
			p.Values[m] = Sum(bucket.Records, m)
		}
		series = append(series, p)
	}
	return series
}

// MonthKey formats the month of a date field as "2006-01".
func MonthKey(field domain.DateField) KeyFunc {
	return func(r domain.TransactionRecord) string {
		return domain.MonthOf(field.Value(r)).Format(monthKeyLayout)
	}
}

// YearKey formats the calendar year of a date field.
func YearKey(field domain.DateField) KeyFunc {
	return func(r domain.TransactionRecord) string {
		return strconv.Itoa(field.Value(r).Year())
	}
}

// ParseMonthKey turns a MonthKey value back into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse(monthKeyLayout, key)
}

// BucketByMonth groups records by the derived month of a date field.
func BucketByMonth(records []domain.TransactionRecord, field domain.DateField) Buckets {
	return bucketBy(records, MonthKey(field), func(r domain.TransactionRecord) time.Time {
		return domain.MonthOf(field.Value(r))
	})
}

// BucketByYear groups records by the calendar year of a date field.
func BucketByYear(records []domain.TransactionRecord, field domain.DateField) Buckets {
	return bucketBy(records, YearKey(field), func(r domain.TransactionRecord) time.Time {
		t := field.Value(r)
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	})
}

func bucketBy(records []domain.TransactionRecord, key KeyFunc, start func(domain.TransactionRecord) time.Time) Buckets {
	index := make(map[string]int)
	buckets := make(Buckets, 0)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k, Start: start(r)})
		}
		buckets[i].Records = append(buckets[i].Records, r)
	}
	return buckets
}

// MeanDistinctPerBucket averages the distinct count of a dimension across buckets.
// Every bucket weighs the same regardless of how much of its period the data covers.
// TODO: weight partial first and last years by covered months if yearly order counts
// start being compared across datasets.
func MeanDistinctPerBucket(buckets Buckets, dimension domain.Dimension) (decimal.Decimal, error) {
	if len(buckets) == 0 {
		return decimal.Zero, domain.ErrEmptyInput
	}
	total := 0
	for _, b := range buckets {
		total += CountDistinct(b.Records, dimension)
	}
	return Ratio(decimal.NewFromInt(int64(total)), len(buckets))
}
