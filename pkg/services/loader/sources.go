package loader

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/de-tools/story-atlas/pkg/store/csvfile"
	"github.com/de-tools/story-atlas/pkg/store/duckdb"
	"github.com/de-tools/story-atlas/pkg/store/duckdb/transactions"
	"github.com/de-tools/story-atlas/pkg/store/objectstore"
	"github.com/de-tools/story-atlas/pkg/store/xlsx"
)

const (
	DriverCSV    = "csv"
	DriverXLSX   = "xlsx"
	DriverDuckDB = "duckdb"
	DriverS3     = "s3"
)

// Source yields the raw rows of one dataset.
type Source interface {
	Fetch(ctx context.Context) ([]store.TransactionRow, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]store.TransactionRow, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]store.TransactionRow, error) {
	return f(ctx)
}

// DetectDriver guesses a driver from the location: s3:// URIs, spreadsheet extensions, else csv.
func DetectDriver(location string) string {
	if strings.HasPrefix(location, "s3://") {
		return DriverS3
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".xlsx", ".xlsm":
		return DriverXLSX
	default:
		return DriverCSV
	}
}

func CSVFactory(_ context.Context, profile domain.SourceProfile) (Source, error) {
	return SourceFunc(func(_ context.Context) ([]store.TransactionRow, error) {
		return csvfile.ReadFile(profile.Path, profile.Encoding)
	}), nil
}

func XLSXFactory(_ context.Context, profile domain.SourceProfile) (Source, error) {
	return SourceFunc(func(_ context.Context) ([]store.TransactionRow, error) {
		return xlsx.ReadFile(profile.Path, profile.Sheet)
	}), nil
}

// DuckDBFactory snapshots the CSV into an in-memory DuckDB database and reads it back.
func DuckDBFactory(_ context.Context, profile domain.SourceProfile) (Source, error) {
	return SourceFunc(func(ctx context.Context) ([]store.TransactionRow, error) {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
		if err != nil {
			return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		defer db.Close()

		txStore, err := transactions.NewStore(db)
		if err != nil {
			return nil, err
		}
		if _, err := txStore.Import(ctx, profile.Path, profile.Encoding); err != nil {
			return nil, err
		}
		return txStore.Rows(ctx)
	}), nil
}

// S3FactoryOptions configure the object store driver. When Client is nil a client is
// built on first use for each AWS profile; the profile's AWSProfile wins over the
// AWSProfile default here.
type S3FactoryOptions struct {
	Client       objectstore.GetObjectAPI
	AWSProfile   string
	MaxRetryTime time.Duration
	NewClient    func(ctx context.Context, awsProfile string) (objectstore.GetObjectAPI, error)
}

type s3Clients struct {
	mu      sync.Mutex
	opts    S3FactoryOptions
	clients map[string]objectstore.GetObjectAPI
}

func (c *s3Clients) get(ctx context.Context, awsProfile string) (objectstore.GetObjectAPI, error) {
	if c.opts.Client != nil {
		return c.opts.Client, nil
	}
	if awsProfile == "" {
		awsProfile = c.opts.AWSProfile
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[awsProfile]; ok {
		return client, nil
	}
	client, err := c.opts.NewClient(ctx, awsProfile)
	if err != nil {
		return nil, err
	}
	c.clients[awsProfile] = client
	return client, nil
}

func newObjectStoreClient(ctx context.Context, awsProfile string) (objectstore.GetObjectAPI, error) {
	return objectstore.NewClient(ctx, awsProfile)
}

func NewS3Factory(opts S3FactoryOptions) Factory {
	if opts.NewClient == nil {
		opts.NewClient = newObjectStoreClient
	}
	clients := &s3Clients{opts: opts, clients: make(map[string]objectstore.GetObjectAPI)}

	return func(ctx context.Context, profile domain.SourceProfile) (Source, error) {
		location, err := objectstore.ParseURI(profile.Path)
		if err != nil {
			return nil, err
		}

		client, err := clients.get(ctx, profile.AWSProfile)
		if err != nil {
			return nil, err
		}

		fetcher := objectstore.NewFetcher(client, opts.MaxRetryTime)
		return SourceFunc(func(ctx context.Context) ([]store.TransactionRow, error) {
			body, err := fetcher.Fetch(ctx, location)
			if err != nil {
				return nil, err
			}
			if DetectDriver(location.Key) == DriverXLSX {
				return xlsx.ReadWorkbook(bytes.NewReader(body), profile.Sheet)
			}
			return csvfile.ReadRows(bytes.NewReader(body), profile.Encoding)
		}), nil
	}
}

// NewDefaultRegistry registers every built-in driver.
func NewDefaultRegistry(s3 S3FactoryOptions) (Registry, error) {
	r := NewRegistry()
	factories := map[string]Factory{
		DriverCSV:    CSVFactory,
		DriverXLSX:   XLSXFactory,
		DriverDuckDB: DuckDBFactory,
		DriverS3:     NewS3Factory(s3),
	}
	for driver, factory := range factories {
		if err := r.Register(driver, factory); err != nil {
			return nil, err
		}
	}
	return r, nil
}
