package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/story-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/de-tools/story-atlas/pkg/services/story"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	source  SourceFlags
	outPath string
	compact bool
	loader  loader.Loader
}

func NewExportCmd(l loader.Loader) *cobra.Command {
	ec := &ExportCmd{loader: l}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the story as JSON",
		RunE:  ec.run,
	}

	ec.source.Bind(cmd)
	cmd.Flags().StringVarP(&ec.outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&ec.compact, "compact", false, "Write compact JSON")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) (err error) {

	profile, settings, err := ec.source.Resolve(cmd.Context())
	if err != nil {
		return err
	}
	ctx, err := LoggerContext(cmd, settings)
	if err != nil {
		return err
	}

	table, err := ec.loader.Load(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", profile.Path, err)
	}

	out := cmd.OutOrStdout()
	if ec.outPath != "" {
		f, createErr := os.Create(ec.outPath)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", ec.outPath, createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}

	if err := export.NewJSONExporter(out, !ec.compact).Handle(story.ComposeStory(table)); err != nil {
		return err
	}

	if ec.outPath != "" {
		zerolog.Ctx(ctx).Info().Str("path", ec.outPath).Int("records", table.Len()).Msg("story exported")
	}
	return nil
}
