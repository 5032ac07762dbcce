package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/story-atlas/pkg/logging"
	"github.com/de-tools/story-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/story-atlas/pkg/server"
	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/de-tools/story-atlas/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	source     commands.SourceFlags
	allowEmpty bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the story over HTTP",
		RunE:  runServer,
	}

	source.Bind(rootCmd)
	rootCmd.Flags().BoolVar(&allowEmpty, "allow-empty", false,
		"Serve placeholder scenes when the dataset is missing or empty")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	profile, settings, err := source.Resolve(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to resolve data source: %w", err)
	}

	logger, err := logging.New(os.Stdout, settings.Log.Level, settings.Log.Format)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	registry, err := loader.NewDefaultRegistry(loader.S3FactoryOptions{})
	if err != nil {
		return fmt.Errorf("failed to create loader registry: %w", err)
	}

	table, err := loader.NewLoader(registry).Load(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", profile.Path, err)
	}

	if table.IsEmpty() && !allowEmpty {
		logger.Error().Str("path", profile.Path).Msg("no data loaded, refusing to serve (use --allow-empty to override)")
		os.Exit(1)
	}

	logger.Info().Msgf("Dataset `%s` loaded with %d records.", profile.Path, table.Len())

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(settings.Server.Host, strconv.Itoa(settings.Server.Port)),
		Dependencies: server.Dependencies{
			Reports: report.NewService(ctx, table),
			Logger:  logger,
		},
	})

	return api.Start()
}
