package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one line item of a retail order.
// A single order may span several records, one per product.
type TransactionRecord struct {
	OrderID     string
	CustomerID  string
	Region      string
	Category    string
	SubCategory string
	Segment     string
	Sales       decimal.Decimal // >= 0
	Profit      decimal.Decimal // may be negative
	Discount    decimal.Decimal // 0..1
	OrderDate   time.Time
	ShipDate    time.Time
}

// Table is the loaded, read-only set of records for one report.
type Table struct {
	records []TransactionRecord
}

func NewTable(records []TransactionRecord) *Table {
	cp := make([]TransactionRecord, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

func EmptyTable() *Table {
	return &Table{}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Records returns a copy of the table rows in load order.
func (t *Table) Records() []TransactionRecord {
	if t == nil {
		return nil
	}
	cp := make([]TransactionRecord, len(t.records))
	copy(cp, t.records)
	return cp
}

// MonthOf truncates a date to the first day of its calendar month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
