package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/spf13/cobra"
)

type DriversCmd struct {
	registry loader.Registry
}

func NewDriversCmd(registry loader.Registry) *cobra.Command {
	dc := &DriversCmd{registry: registry}
	return &cobra.Command{
		Use:   "drivers",
		Short: "List the registered dataset drivers",
		RunE:  dc.run,
	}
}

func (dc *DriversCmd) run(cmd *cobra.Command, _ []string) error {
	drivers := dc.registry.ListDrivers()
	if len(drivers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No drivers registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Supported drivers:\n%s\n", strings.Join(drivers, "\n"))
	return nil
}
