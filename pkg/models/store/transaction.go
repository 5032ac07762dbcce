package store

import "errors"

// ErrSourceUnavailable marks a data source that does not exist or cannot be reached.
// Loaders downgrade it to an empty table.
var ErrSourceUnavailable = errors.New("source unavailable")

// Source column names as they appear in the Superstore export.
const (
	ColumnOrderID     = "Order ID"
	ColumnCustomerID  = "Customer ID"
	ColumnRegion      = "Region"
	ColumnCategory    = "Category"
	ColumnSubCategory = "Sub-Category"
	ColumnSegment     = "Segment"
	ColumnSales       = "Sales"
	ColumnProfit      = "Profit"
	ColumnDiscount    = "Discount"
	ColumnOrderDate   = "Order Date"
	ColumnShipDate    = "Ship Date"
)

var Columns = []string{
	ColumnOrderID,
	ColumnCustomerID,
	ColumnRegion,
	ColumnCategory,
	ColumnSubCategory,
	ColumnSegment,
	ColumnSales,
	ColumnProfit,
	ColumnDiscount,
	ColumnOrderDate,
	ColumnShipDate,
}

// TransactionRow is a source row before type coercion. Line is the 1-based data row.
type TransactionRow struct {
	Line        int
	OrderID     string
	CustomerID  string
	Region      string
	Category    string
	SubCategory string
	Segment     string
	Sales       string
	Profit      string
	Discount    string
	OrderDate   string
	ShipDate    string
}
