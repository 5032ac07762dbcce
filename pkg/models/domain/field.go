package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field is any record column that can be shown as text, e.g. in chart hover data.
type Field interface {
	Name() string
	Format(r TransactionRecord) string
}

// Measure is a numeric column of TransactionRecord.
type Measure string

const (
	MeasureSales    Measure = "sales"
	MeasureProfit   Measure = "profit"
	MeasureDiscount Measure = "discount"
)

func (m Measure) Name() string { return string(m) }

func (m Measure) Value(r TransactionRecord) decimal.Decimal {
	switch m {
	case MeasureSales:
		return r.Sales
	case MeasureProfit:
		return r.Profit
	case MeasureDiscount:
		return r.Discount
	default:
		return decimal.Zero
	}
}

func (m Measure) Format(r TransactionRecord) string {
	return m.Value(r).String()
}

// Dimension is a categorical column of TransactionRecord.
type Dimension string

const (
	DimensionOrderID     Dimension = "order_id"
	DimensionCustomerID  Dimension = "customer_id"
	DimensionRegion      Dimension = "region"
	DimensionCategory    Dimension = "category"
	DimensionSubCategory Dimension = "sub_category"
	DimensionSegment     Dimension = "segment"
)

func (d Dimension) Name() string { return string(d) }

func (d Dimension) Value(r TransactionRecord) string {
	switch d {
	case DimensionOrderID:
		return r.OrderID
	case DimensionCustomerID:
		return r.CustomerID
	case DimensionRegion:
		return r.Region
	case DimensionCategory:
		return r.Category
	case DimensionSubCategory:
		return r.SubCategory
	case DimensionSegment:
		return r.Segment
	default:
		return ""
	}
}

func (d Dimension) Format(r TransactionRecord) string {
	return d.Value(r)
}

// DateField is a calendar date column of TransactionRecord.
type DateField string

const (
	DateOrder DateField = "order_date"
	DateShip  DateField = "ship_date"
)

func (f DateField) Name() string { return string(f) }

func (f DateField) Value(r TransactionRecord) time.Time {
	switch f {
	case DateOrder:
		return r.OrderDate
	case DateShip:
		return r.ShipDate
	default:
		return time.Time{}
	}
}

func (f DateField) Format(r TransactionRecord) string {
	return f.Value(r).Format("2006-01-02")
}
