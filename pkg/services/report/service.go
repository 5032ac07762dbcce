// Package report serves a story composed once from a loaded table.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/services/story"
	"github.com/rs/zerolog"
)

var ErrSceneNotFound = errors.New("scene not found")

type Service interface {
	GetStory(ctx context.Context) domain.Story
	GetScene(ctx context.Context, index int) (domain.SceneDescriptor, error)
	RecordCount() int
}

type service struct {
	story domain.Story
}

// NewService composes the story once. Callers must not mutate the table afterwards.
func NewService(ctx context.Context, table *domain.Table) Service {
	s := story.ComposeStory(table)
	zerolog.Ctx(ctx).Debug().
		Int("records", s.RecordCount).
		Int("scenes", len(s.Scenes)).
		Msg("story composed")
	return &service{story: s}
}

func (s *service) GetStory(_ context.Context) domain.Story {
	return s.story
}

func (s *service) GetScene(_ context.Context, index int) (domain.SceneDescriptor, error) {
	if index < 0 || index >= len(s.story.Scenes) {
		return domain.SceneDescriptor{}, fmt.Errorf("%w: index %d", ErrSceneNotFound, index)
	}
	return s.story.Scenes[index], nil
}

func (s *service) RecordCount() int {
	return s.story.RecordCount
}
