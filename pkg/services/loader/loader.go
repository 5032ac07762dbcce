// Package loader turns a dataset profile into a typed record table.
package loader

import (
	"context"
	"errors"

	"github.com/de-tools/story-atlas/pkg/adapters"
	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

type Loader interface {
	Load(ctx context.Context, profile domain.SourceProfile) (*domain.Table, error)
}

type loader struct {
	registry Registry
}

func NewLoader(registry Registry) Loader {
	return &loader{registry: registry}
}

// Load reads the dataset. A source that does not exist yields an empty table and a
// warning; schema problems are returned as *domain.SchemaMismatchError.
func (l *loader) Load(ctx context.Context, profile domain.SourceProfile) (*domain.Table, error) {
	if profile.Driver == "" {
		profile.Driver = DetectDriver(profile.Path)
	}
	logger := zerolog.Ctx(ctx).With().
		Str("driver", profile.Driver).
		Str("path", profile.Path).
		Logger()

	source, err := l.registry.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	rows, err := source.Fetch(ctx)
	if errors.Is(err, store.ErrSourceUnavailable) {
		logger.Warn().Err(err).Msg("data source unavailable, continuing with an empty table")
		return domain.EmptyTable(), nil
	}
	if err != nil {
		return nil, err
	}

	records, err := adapters.MapStoreTransactionRowsToDomain(rows)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("records", len(records)).Msg("data source loaded")
	return domain.NewTable(records), nil
}
