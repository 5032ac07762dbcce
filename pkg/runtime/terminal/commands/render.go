package commands

import (
	"fmt"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/de-tools/story-atlas/pkg/services/story"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// StoryHandler is anything that can present a composed story.
type StoryHandler interface {
	Handle(story domain.Story) error
}

const (
	FormatTable   = "table"
	FormatOutline = "outline"
	FormatJSON    = "json"
)

type RenderCmd struct {
	source    SourceFlags
	format    string
	loader    loader.Loader
	reporters map[string]StoryHandler
}

func NewRenderCmd(l loader.Loader, reporters map[string]StoryHandler) *cobra.Command {
	rc := &RenderCmd{loader: l, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Load a dataset and print its story",
		RunE:  rc.run,
	}

	rc.source.Bind(cmd)
	cmd.Flags().StringVar(&rc.format, "format", FormatTable, "Output format: table, outline or json")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {

	reporter, ok := rc.reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q", rc.format)
	}

	profile, settings, err := rc.source.Resolve(cmd.Context())
	if err != nil {
		return err
	}
	ctx, err := LoggerContext(cmd, settings)
	if err != nil {
		return err
	}

	table, err := rc.loader.Load(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", profile.Path, err)
	}

	s := story.ComposeStory(table)
	zerolog.Ctx(ctx).Debug().
		Str("profile", profile.String()).
		Int("records", s.RecordCount).
		Msg("story composed")

	return reporter.Handle(s)
}
