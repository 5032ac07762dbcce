// Package scene builds the four story scenes from a loaded table.
//
// Builders never return an error: an empty table or a failed aggregate yields
// the no-data descriptor.
package scene

import (
	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/services/chart"
)

const (
	OverviewID = "scene-0"
	CategoryID = "scene-1"
	CustomerID = "scene-2"
	TrendID    = "scene-3"

	NoDataTitle = "Data not loaded."

	salesAxisLabel = "Total Sales ($)"
)

// Builder turns a table into one scene.
type Builder func(*domain.Table) domain.SceneDescriptor

// NoData is the placeholder scene for an empty table.
func NoData(id string) domain.SceneDescriptor {
	return domain.SceneDescriptor{
		ID:    id,
		Title: NoDataTitle,
		KPIs:  []domain.KpiEntry{},
		Chart: chart.Empty(),
	}
}

func guarded(id string, table *domain.Table, build func([]domain.TransactionRecord) (domain.SceneDescriptor, error)) domain.SceneDescriptor {
	if table.IsEmpty() {
		return NoData(id)
	}
	desc, err := build(table.Records())
	if err != nil {
		return NoData(id)
	}
	desc.ID = id
	return desc
}

func kpi(label, value string, accent domain.ColorToken) domain.KpiEntry {
	return domain.KpiEntry{Label: label, Value: value, Accent: accent}
}
