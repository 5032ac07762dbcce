// Package tabular maps header-addressed rows (CSV, spreadsheets) onto store rows.
package tabular

import (
	"strings"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/models/store"
)

// Header maps each required column to its position in a source row.
type Header map[string]int

// ResolveHeader locates every required column. Matching ignores case, spaces,
// dashes and underscores, so "sub_category" matches "Sub-Category".
func ResolveHeader(names []string) (Header, error) {
	positions := make(map[string]int, len(names))
	for i, name := range names {
		key := normalize(name)
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	header := make(Header, len(store.Columns))
	for _, column := range store.Columns {
		i, ok := positions[normalize(column)]
		if !ok {
			return nil, &domain.SchemaMismatchError{Column: column, Reason: "missing column"}
		}
		header[column] = i
	}
	return header, nil
}

// Row builds a TransactionRow from raw cells; cells past the end of a short row read as "".
func (h Header) Row(line int, cells []string) store.TransactionRow {
	get := func(column string) string {
		i := h[column]
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	return store.TransactionRow{
		Line:        line,
		OrderID:     get(store.ColumnOrderID),
		CustomerID:  get(store.ColumnCustomerID),
		Region:      get(store.ColumnRegion),
		Category:    get(store.ColumnCategory),
		SubCategory: get(store.ColumnSubCategory),
		Segment:     get(store.ColumnSegment),
		Sales:       get(store.ColumnSales),
		Profit:      get(store.ColumnProfit),
		Discount:    get(store.ColumnDiscount),
		OrderDate:   get(store.ColumnOrderDate),
		ShipDate:    get(store.ColumnShipDate),
	}
}

func normalize(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
}
