package transactions

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/de-tools/story-atlas/pkg/store/duckdb"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func TestNewStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setupFixture(t)
		assert.NotNil(t, f.store)
	})

	t.Run("nil db", func(t *testing.T) {
		s, err := NewStore(nil)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestImportQuery(t *testing.T) {
	query, err := ImportQuery("/data/o'brien.csv", "latin1")
	require.NoError(t, err)
	assert.Equal(t,
		`CREATE OR REPLACE TABLE transactions AS SELECT * FROM read_csv('/data/o''brien.csv', header = true, all_varchar = true, encoding = 'latin-1')`,
		query)

	query, err = ImportQuery("/data/x.csv", "")
	require.NoError(t, err)
	assert.Contains(t, query, "encoding = 'latin-1'")

	_, err = ImportQuery("/data/x.csv", "cp1252")
	assert.Error(t, err)
}

func TestStore_Rows_ScansByHeader(t *testing.T) {
	// Given: a sqlmock DB returning the snapshot with an extra column in front
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"Row ID", "Order ID", "Order Date", "Ship Date", "Customer ID", "Segment",
		"Region", "Category", "Sub-Category", "Sales", "Discount", "Profit"}
	rows := sqlmock.NewRows(cols).
		AddRow("1", "CA-1", "1/5/2017", "1/9/2017", "AB-1", "Consumer", "West", "Furniture", "Chairs", "120.5", "0", "12").
		AddRow("2", "CA-2", "2/5/2017", "2/9/2017", "AB-2", "Corporate", "East", "Technology", "Phones", "99", "0.2", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM transactions`)).WillReturnRows(rows)

	s, err := NewStore(db)
	require.NoError(t, err)

	// When
	result, err := s.Rows(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, store.TransactionRow{
		Line: 1, OrderID: "CA-1", CustomerID: "AB-1", Region: "West", Category: "Furniture",
		SubCategory: "Chairs", Segment: "Consumer", Sales: "120.5", Profit: "12", Discount: "0",
		OrderDate: "1/5/2017", ShipDate: "1/9/2017",
	}, result[0])
	assert.Equal(t, 2, result[1].Line)
	assert.Empty(t, result[1].Profit)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}

func TestStore_Import_MissingFile(t *testing.T) {
	f := setupFixture(t)

	_, err := f.store.Import(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), "utf-8")
	assert.ErrorIs(t, err, store.ErrSourceUnavailable)
}

func TestStore_ImportAndRead(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	rows, err := f.store.Rows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	path := filepath.Join(t.TempDir(), "superstore.csv")
	content := "Order ID,Order Date,Ship Date,Customer ID,Segment,Region,Category,Sub-Category,Sales,Discount,Profit\n" +
		"CA-1,1/5/2017,1/9/2017,AB-1,Consumer,West,Furniture,Chairs,120.50,0,12\n" +
		"CA-2,2/5/2017,2/9/2017,AB-2,Corporate,East,Technology,Phones,99,0.2,-3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	count, err := f.store.Import(ctx, path, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	rows, err = f.store.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "120.50", rows[0].Sales)
	assert.Equal(t, "-3", rows[1].Profit)
	assert.Equal(t, "Phones", rows[1].SubCategory)
}

func TestStore_ImportLatin1(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	content := []byte("Order ID,Order Date,Ship Date,Customer ID,Segment,Region,Category,Sub-Category,Sales,Discount,Profit\n" +
		"CA-1,1/5/2017,1/9/2017,AB-1,Consumer,Qu")
	content = append(content, 0xe9)
	content = append(content, []byte("bec,Furniture,Chairs,120.50,0,12\n")...)
	path := filepath.Join(t.TempDir(), "superstore.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	for _, encoding := range []string{"latin-1", ""} {
		count, err := f.store.Import(ctx, path, encoding)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		rows, err := f.store.Rows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Québec", rows[0].Region)
	}
}
