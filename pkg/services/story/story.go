package story

import (
	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/services/scene"
)

const Title = "Supermarket Insights Story"

// Sequence is the fixed presentation order of the story.
var Sequence = []scene.Builder{
	scene.Overview,
	scene.Category,
	scene.Customer,
	scene.Trend,
}

// Compose runs every scene builder in presentation order.
func Compose(table *domain.Table) []domain.SceneDescriptor {
	scenes := make([]domain.SceneDescriptor, 0, len(Sequence))
	for _, build := range Sequence {
		scenes = append(scenes, build(table))
	}
	return scenes
}

// ComposeStory wraps Compose with the story envelope handed to renderers.
func ComposeStory(table *domain.Table) domain.Story {
	return domain.Story{
		Title:       Title,
		RecordCount: table.Len(),
		Scenes:      Compose(table),
	}
}
