package tabular

import (
	"testing"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var superstoreHeader = []string{
	"Row ID", "Order ID", "Order Date", "Ship Date", "Ship Mode", "Customer ID", "Customer Name",
	"Segment", "Country", "City", "State", "Postal Code", "Region", "Product ID", "Category",
	"Sub-Category", "Product Name", "Sales", "Quantity", "Discount", "Profit",
}

func TestResolveHeader(t *testing.T) {
	header, err := ResolveHeader(superstoreHeader)
	require.NoError(t, err)

	row := header.Row(1, []string{
		"1", "CA-2016-152156", "11/8/2016", "11/11/2016", "Second Class", "CG-12520", "Claire Gute",
		"Consumer", "United States", "Henderson", "Kentucky", "42420", "South", "FUR-BO-10001798", "Furniture",
		"Bookcases", "Bush Somerset Collection Bookcase", "261.96", "2", "0", "41.9136",
	})

	assert.Equal(t, 1, row.Line)
	assert.Equal(t, "CA-2016-152156", row.OrderID)
	assert.Equal(t, "CG-12520", row.CustomerID)
	assert.Equal(t, "South", row.Region)
	assert.Equal(t, "Bookcases", row.SubCategory)
	assert.Equal(t, "261.96", row.Sales)
	assert.Equal(t, "41.9136", row.Profit)
	assert.Equal(t, "11/11/2016", row.ShipDate)
}

func TestResolveHeader_LooseNames(t *testing.T) {
	header, err := ResolveHeader([]string{
		"\ufefforder_id", "customer id", "REGION", "category", "sub_category", "segment",
		"sales", "profit", "discount", "order-date", "Ship Date",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, header["Sub-Category"])
	assert.Equal(t, 0, header["Order ID"])
}

func TestResolveHeader_MissingColumn(t *testing.T) {
	_, err := ResolveHeader([]string{"Order ID", "Sales"})

	var mismatch *domain.SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Customer ID", mismatch.Column)
	assert.Equal(t, 0, mismatch.Row)
}

func TestHeaderRow_ShortRow(t *testing.T) {
	header, err := ResolveHeader(superstoreHeader)
	require.NoError(t, err)

	row := header.Row(7, []string{"1", "CA-1"})
	assert.Equal(t, "CA-1", row.OrderID)
	assert.Empty(t, row.Profit)
}
