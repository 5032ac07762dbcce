package adapters

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order. US month-first forms come from the Superstore export,
// the rest from spreadsheets and databases re-exporting it.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"01-02-2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date format")
}

func MapStoreTransactionRowToDomain(row store.TransactionRow) (domain.TransactionRecord, error) {
	record := domain.TransactionRecord{
		OrderID:     row.OrderID,
		CustomerID:  row.CustomerID,
		Region:      row.Region,
		Category:    row.Category,
		SubCategory: row.SubCategory,
		Segment:     row.Segment,
	}

	var err error
	if record.Sales, err = parseDecimal(row, store.ColumnSales, row.Sales); err != nil {
		return domain.TransactionRecord{}, err
	}
	if record.Profit, err = parseDecimal(row, store.ColumnProfit, row.Profit); err != nil {
		return domain.TransactionRecord{}, err
	}
	if record.Discount, err = parseDecimal(row, store.ColumnDiscount, row.Discount); err != nil {
		return domain.TransactionRecord{}, err
	}
	if record.OrderDate, err = parseDate(row, store.ColumnOrderDate, row.OrderDate); err != nil {
		return domain.TransactionRecord{}, err
	}
	if record.ShipDate, err = parseDate(row, store.ColumnShipDate, row.ShipDate); err != nil {
		return domain.TransactionRecord{}, err
	}
	return record, nil
}

// MapStoreTransactionRowsToDomain converts every row, stopping at the first mismatch.
func MapStoreTransactionRowsToDomain(rows []store.TransactionRow) ([]domain.TransactionRecord, error) {
	records := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := MapStoreTransactionRowToDomain(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func parseDecimal(row store.TransactionRow, column, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(value), ",", ""))
	if err != nil {
		return decimal.Zero, &domain.SchemaMismatchError{
			Column: column,
			Row:    row.Line,
			Value:  value,
			Reason: "not a decimal",
			Err:    err,
		}
	}
	return d, nil
}

func parseDate(row store.TransactionRow, column, value string) (time.Time, error) {
	t, err := ParseDate(value)
	if err != nil {
		return time.Time{}, &domain.SchemaMismatchError{
			Column: column,
			Row:    row.Line,
			Value:  value,
			Reason: "not a date",
			Err:    err,
		}
	}
	return t, nil
}
