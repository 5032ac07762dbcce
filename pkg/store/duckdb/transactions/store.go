package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/de-tools/story-atlas/pkg/store/csvfile"
	"github.com/de-tools/story-atlas/pkg/store/duckdb"
	"github.com/de-tools/story-atlas/pkg/store/tabular"
)

// Store snapshots a CSV export into DuckDB and reads it back as untyped rows.
// Every column is imported as VARCHAR; typing happens in the adapters.
type Store interface {
	Import(ctx context.Context, path, encoding string) (int64, error)
	Rows(ctx context.Context) ([]store.TransactionRow, error)
}

type transactionStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &transactionStore{
		db: db,
	}, nil
}

// ImportQuery builds the snapshot statement. read_csv takes no bind parameters for its
// path, so the literal is quoted here.
func ImportQuery(path, encoding string) (string, error) {
	enc, err := duckdbEncoding(encoding)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`CREATE OR REPLACE TABLE transactions AS SELECT * FROM read_csv(%s, header = true, all_varchar = true, encoding = '%s')`,
		quoteLiteral(path), enc,
	), nil
}

func (s *transactionStore) Import(ctx context.Context, path, encoding string) (int64, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s", store.ErrSourceUnavailable, path)
	}

	query, err := ImportQuery(path, encoding)
	if err != nil {
		return 0, err
	}

	var count int64
	err = duckdb.InTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
			return fmt.Errorf("count transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *transactionStore) Rows(ctx context.Context) ([]store.TransactionRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactionRows(rows)
}

func scanTransactionRows(rows *sql.Rows) ([]store.TransactionRow, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	header, err := tabular.ResolveHeader(columns)
	if err != nil {
		return nil, err
	}

	values := make([]sql.NullString, len(columns))
	targets := make([]any, len(columns))
	for i := range values {
		targets[i] = &values[i]
	}

	result := make([]store.TransactionRow, 0)
	for line := 1; rows.Next(); line++ {
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = v.String
		}
		result = append(result, header.Row(line, cells))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func duckdbEncoding(encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "utf-8", "utf8":
		return "utf-8", nil
	case "", csvfile.DefaultEncoding, "latin1", "iso-8859-1", "iso8859-1":
		return "latin-1", nil
	default:
		return "", fmt.Errorf("encoding %q is not supported by the duckdb driver", encoding)
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
