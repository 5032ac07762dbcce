package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/story-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/story-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry  loader.Registry
	logger    zerolog.Logger
	output    io.Writer
	errOutput io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry loader.Registry
	Output   io.Writer
	// ErrOutput receives the logs of commands that load a dataset; stderr when nil.
	ErrOutput io.Writer
	Logger    *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		registry:  opts.Registry,
		logger:    logger,
		output:    opts.Output,
		errOutput: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) Execute() error {
	ctx := cli.logger.WithContext(context.Background())
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "story",
		Short:         "Retail transaction story generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)
	cmd.SetErr(cli.errOutput)

	l := loader.NewLoader(cli.registry)
	reporters := map[string]commands.StoryHandler{
		commands.FormatTable:   export.NewReporter(cli.output),
		commands.FormatOutline: NewReporter(cli.output),
		commands.FormatJSON:    export.NewJSONExporter(cli.output, true),
	}

	cmd.AddCommand(commands.NewRenderCmd(l, reporters))
	cmd.AddCommand(commands.NewExportCmd(l))
	cmd.AddCommand(commands.NewDriversCmd(cli.registry))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
