package main

import (
	"fmt"
	"os"

	"github.com/de-tools/story-atlas/pkg/logging"
	"github.com/de-tools/story-atlas/pkg/runtime/terminal"
	"github.com/de-tools/story-atlas/pkg/services/loader"
)

func main() {
	logger, err := logging.New(os.Stderr, "", logging.FormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry, err := loader.NewDefaultRegistry(loader.S3FactoryOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry:  registry,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
		Logger:    &logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
