package scene

import (
	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/services/aggregate"
	"github.com/de-tools/story-atlas/pkg/services/chart"
)

// Overview: total sales, average discount and total profit, with sales by region largest first.
func Overview(table *domain.Table) domain.SceneDescriptor {
	return guarded(OverviewID, table, func(records []domain.TransactionRecord) (domain.SceneDescriptor, error) {
		avgDiscount, err := aggregate.Mean(records, domain.MeasureDiscount)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}

		byRegion := aggregate.SortSeriesDescending(
			aggregate.GroupSum(records, domain.DimensionRegion, domain.MeasureSales),
			domain.MeasureSales,
		)

		return domain.SceneDescriptor{
			Title:    "Supermarket Performance Overview",
			Subtitle: "A high-level look at key performance indicators across all regions.",
			KPIs: []domain.KpiEntry{
				kpi("Total Sales", formatMoney(aggregate.Sum(records, domain.MeasureSales), 0), domain.ColorBlue),
				kpi("Average Discount", formatPercent(avgDiscount), domain.ColorOrange),
				kpi("Total Profit", formatMoney(aggregate.Sum(records, domain.MeasureProfit), 0), domain.ColorGreen),
			},
			Chart: chart.Bar(byRegion, domain.MeasureSales, domain.DimensionRegion.Name(), chart.Labels{
				Title: "Total Sales by Region",
				Y:     salesAxisLabel,
			}),
		}, nil
	})
}

// Category: leading category and sub-category, with sales and profit per category in first-seen order.
func Category(table *domain.Table) domain.SceneDescriptor {
	return guarded(CategoryID, table, func(records []domain.TransactionRecord) (domain.SceneDescriptor, error) {
		topCategory, err := aggregate.ArgMaxGroup(records, domain.DimensionCategory, domain.MeasureSales)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}
		topSubCategory, err := aggregate.ArgMaxGroup(records, domain.DimensionSubCategory, domain.MeasureSales)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}

		byCategory := aggregate.GroupSum(records, domain.DimensionCategory, domain.MeasureSales, domain.MeasureProfit)

		return domain.SceneDescriptor{
			Title:    "Category & Product Analysis",
			Subtitle: "Which product categories drive the most sales and profit?",
			KPIs: []domain.KpiEntry{
				kpi("Top Category by Sales", topCategory, domain.ColorBlue),
				kpi("Top Sub-Category by Sales", topSubCategory, domain.ColorOrange),
			},
			Chart: chart.GroupedBar(byCategory,
				[]domain.Measure{domain.MeasureSales, domain.MeasureProfit},
				[]string{"Sales", "Profit"},
				domain.DimensionCategory.Name(),
				chart.Labels{Title: "Sales vs. Profit by Category"},
			),
		}, nil
	})
}

// Customer: distinct customers, average order value and leading segment, with discount vs profit per line item.
func Customer(table *domain.Table) domain.SceneDescriptor {
	return guarded(CustomerID, table, func(records []domain.TransactionRecord) (domain.SceneDescriptor, error) {
		// one order may span several rows, so divide by distinct order ids
		orderValue, err := aggregate.Ratio(
			aggregate.Sum(records, domain.MeasureSales),
			aggregate.CountDistinct(records, domain.DimensionOrderID),
		)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}
		topSegment, err := aggregate.ArgMaxGroup(records, domain.DimensionSegment, domain.MeasureSales)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}

		return domain.SceneDescriptor{
			Title:    "Customer Insights",
			Subtitle: "Exploring the relationship between customer segments, discounts, and profitability.",
			KPIs: []domain.KpiEntry{
				kpi("Total Unique Customers", formatCount(aggregate.CountDistinct(records, domain.DimensionCustomerID)), domain.ColorBlue),
				kpi("Average Order Value", formatMoney(orderValue, 2), domain.ColorOrange),
				kpi("Top Segment by Sales", topSegment, domain.ColorGreen),
			},
			Chart: chart.Scatter(records,
				domain.MeasureDiscount, domain.MeasureProfit, domain.DimensionSegment,
				[]domain.Field{domain.DimensionCategory, domain.MeasureSales},
				chart.Labels{Title: "Profit vs. Discount by Customer Segment", X: "Discount", Y: "Profit"},
			),
		}, nil
	})
}

// Trend: best month and average yearly order count, with monthly sales in calendar order.
func Trend(table *domain.Table) domain.SceneDescriptor {
	return guarded(TrendID, table, func(records []domain.TransactionRecord) (domain.SceneDescriptor, error) {
		monthly := aggregate.SortSeriesByKey(aggregate.BucketByMonth(records, domain.DateOrder).Sum(domain.MeasureSales))

		bestKey, err := aggregate.ArgMaxSeries(monthly, domain.MeasureSales)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}
		bestMonth, err := aggregate.ParseMonthKey(bestKey)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}

		ordersPerYear, err := aggregate.MeanDistinctPerBucket(
			aggregate.BucketByYear(records, domain.DateOrder),
			domain.DimensionOrderID,
		)
		if err != nil {
			return domain.SceneDescriptor{}, err
		}

		return domain.SceneDescriptor{
			Title:    "Sales Over Time",
			Subtitle: "Analyzing sales patterns and seasonality over the years.",
			KPIs: []domain.KpiEntry{
				kpi("Best Month for Sales", bestMonth.Format("January 2006"), domain.ColorBlue),
				kpi("Avg. Orders Per Year", formatNumber(ordersPerYear, 0), domain.ColorOrange),
			},
			Chart: chart.Line(monthly, domain.MeasureSales, "month", chart.Labels{
				Title: "Monthly Sales Trend",
				X:     "Month",
				Y:     salesAxisLabel,
			}),
		}, nil
	})
}
