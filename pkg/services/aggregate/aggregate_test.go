package aggregate

import (
	"testing"
	"time"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func regionSale(region, sales string) domain.TransactionRecord {
	return domain.TransactionRecord{Region: region, Sales: dec(sales)}
}

func orderLine(orderID, sales string, orderDate time.Time) domain.TransactionRecord {
	return domain.TransactionRecord{OrderID: orderID, Sales: dec(sales), OrderDate: orderDate}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSum(t *testing.T) {
	records := []domain.TransactionRecord{
		regionSale("East", "100.25"),
		regionSale("East", "50.50"),
		regionSale("West", "30"),
	}

	assertDecimal(t, "180.75", Sum(records, domain.MeasureSales))
	assertDecimal(t, "0", Sum(nil, domain.MeasureSales))
}

func TestMean(t *testing.T) {
	t.Run("average discount", func(t *testing.T) {
		records := []domain.TransactionRecord{
			{Discount: dec("0.2")},
			{Discount: dec("0")},
			{Discount: dec("0.1")},
			{Discount: dec("0.5")},
		}
		mean, err := Mean(records, domain.MeasureDiscount)
		require.NoError(t, err)
		assertDecimal(t, "0.2", mean)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Mean(nil, domain.MeasureDiscount)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}

func TestCountDistinct(t *testing.T) {
	records := []domain.TransactionRecord{
		{CustomerID: "C1"}, {CustomerID: "C2"}, {CustomerID: "C1"}, {CustomerID: "C3"},
	}
	assert.Equal(t, 3, CountDistinct(records, domain.DimensionCustomerID))
	assert.Equal(t, 0, CountDistinct(nil, domain.DimensionCustomerID))
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name        string
		numerator   decimal.Decimal
		denominator int
		expected    string
		err         error
	}{
		{name: "regular", numerator: dec("180"), denominator: 2, expected: "90"},
		{name: "zero over zero", numerator: decimal.Zero, denominator: 0, err: domain.ErrDivisionByZero},
		{name: "nonzero over zero", numerator: dec("42"), denominator: 0, err: domain.ErrDivisionByZero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Ratio(tc.numerator, tc.denominator)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tc.expected, got)
		})
	}
}

func TestGroupSum_FirstSeenOrder(t *testing.T) {
	records := []domain.TransactionRecord{
		regionSale("East", "100"),
		regionSale("East", "50"),
		regionSale("West", "30"),
	}

	series := GroupSum(records, domain.DimensionRegion, domain.MeasureSales)
	require.Len(t, series, 2)
	assert.Equal(t, []string{"East", "West"}, seriesKeys(series))
	assertDecimal(t, "150", series[0].Value(domain.MeasureSales))
	assertDecimal(t, "30", series[1].Value(domain.MeasureSales))

	sorted := SortSeriesDescending(series, domain.MeasureSales)
	assert.Equal(t, []string{"East", "West"}, seriesKeys(sorted))
}

func TestGroupSum_MultipleMeasures(t *testing.T) {
	records := []domain.TransactionRecord{
		{Category: "Furniture", Sales: dec("10"), Profit: dec("-2")},
		{Category: "Technology", Sales: dec("40"), Profit: dec("12")},
		{Category: "Furniture", Sales: dec("5"), Profit: dec("1")},
	}

	series := GroupSum(records, domain.DimensionCategory, domain.MeasureSales, domain.MeasureProfit)
	assert.Equal(t, []string{"Furniture", "Technology"}, seriesKeys(series))

	furniture := series[0]
	assertDecimal(t, "15", furniture.Value(domain.MeasureSales))
	assertDecimal(t, "-1", furniture.Value(domain.MeasureProfit))
}

func TestSortSeriesDescending(t *testing.T) {
	series := domain.GroupedSeries{
		{Key: "South", Values: map[domain.Measure]decimal.Decimal{domain.MeasureSales: dec("20")}},
		{Key: "West", Values: map[domain.Measure]decimal.Decimal{domain.MeasureSales: dec("70")}},
		{Key: "East", Values: map[domain.Measure]decimal.Decimal{domain.MeasureSales: dec("20")}},
		{Key: "Central", Values: map[domain.Measure]decimal.Decimal{domain.MeasureSales: dec("35")}},
	}

	sorted := SortSeriesDescending(series, domain.MeasureSales)

	assert.Equal(t, []string{"West", "Central", "South", "East"}, seriesKeys(sorted))
	assert.Equal(t, []string{"South", "West", "East", "Central"}, seriesKeys(series), "input must not be reordered")
}

func TestSortSeriesByKey(t *testing.T) {
	series := domain.GroupedSeries{{Key: "2017-03"}, {Key: "2016-12"}, {Key: "2017-01"}}
	assert.Equal(t, []string{"2016-12", "2017-01", "2017-03"}, seriesKeys(SortSeriesByKey(series)))
}

func TestArgMaxGroup(t *testing.T) {
	t.Run("largest sum wins", func(t *testing.T) {
		records := []domain.TransactionRecord{
			{Segment: "Consumer", Sales: dec("10")},
			{Segment: "Corporate", Sales: dec("25")},
			{Segment: "Consumer", Sales: dec("20")},
		}
		key, err := ArgMaxGroup(records, domain.DimensionSegment, domain.MeasureSales)
		require.NoError(t, err)
		assert.Equal(t, "Consumer", key)
	})

	t.Run("first seen wins ties", func(t *testing.T) {
		records := []domain.TransactionRecord{
			{Segment: "Home Office", Sales: dec("30")},
			{Segment: "Corporate", Sales: dec("30")},
		}
		key, err := ArgMaxGroup(records, domain.DimensionSegment, domain.MeasureSales)
		require.NoError(t, err)
		assert.Equal(t, "Home Office", key)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ArgMaxGroup(nil, domain.DimensionSegment, domain.MeasureSales)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}

func TestAverageOrderValue(t *testing.T) {
	records := []domain.TransactionRecord{
		orderLine("A", "100", date(2017, time.January, 3)),
		orderLine("A", "50", date(2017, time.January, 3)),
		orderLine("B", "30", date(2017, time.January, 4)),
	}

	orders := CountDistinct(records, domain.DimensionOrderID)
	total := Sum(records, domain.MeasureSales)
	aov, err := Ratio(total, orders)

	require.NoError(t, err)
	assert.Equal(t, 2, orders)
	assertDecimal(t, "180", total)
	assert.Equal(t, "90.00", aov.StringFixed(2))
}

func seriesKeys(series domain.GroupedSeries) []string {
	keys := make([]string, 0, len(series))
	for _, p := range series {
		keys = append(keys, p.Key)
	}
	return keys
}
