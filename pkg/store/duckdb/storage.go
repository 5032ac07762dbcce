package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

// TransactionsTableSchema seeds an empty snapshot so reads work before the first import.
const TransactionsTableSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		"Order ID" VARCHAR,
		"Customer ID" VARCHAR,
		"Region" VARCHAR,
		"Category" VARCHAR,
		"Sub-Category" VARCHAR,
		"Segment" VARCHAR,
		"Sales" VARCHAR,
		"Profit" VARCHAR,
		"Discount" VARCHAR,
		"Order Date" VARCHAR,
		"Ship Date" VARCHAR
	);
`

var bootQueries = []string{
	TransactionsTableSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", settings.DbPath, threads), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
