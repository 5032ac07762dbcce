package commands

import (
	"fmt"

	"github.com/de-tools/story-atlas/pkg/services/config"
	"github.com/de-tools/story-atlas/pkg/services/loader"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	profilesPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List dataset profiles from the profiles file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilesPath, "profiles", DefaultProfilesPath(), "Path to the dataset profiles file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(pc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to read profiles file %s: %w", pc.profilesPath, err)
	}

	names, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", pc.profilesPath)
		return nil
	}

	for _, name := range names {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(invalid: %v)\n", name, err)
			continue
		}
		driver := profile.Driver
		if driver == "" {
			driver = loader.DetectDriver(profile.Path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", name, driver, profile.Path)
	}
	return nil
}
