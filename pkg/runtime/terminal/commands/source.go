package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/story-atlas/pkg/logging"
	"github.com/de-tools/story-atlas/pkg/models/domain"
	"github.com/de-tools/story-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

// SourceFlags selects the dataset for a command. Precedence, lowest first: settings file
// and STORY_* env, then the named ini profile, then explicit flags.
type SourceFlags struct {
	SettingsPath string
	ProfilesPath string
	Profile      string
	Path         string
	Driver       string
	Encoding     string
	Sheet        string
}

func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storyatlas"
	}
	return filepath.Join(home, ".storyatlas")
}

func (f *SourceFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.SettingsPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	cmd.Flags().StringVar(&f.ProfilesPath, "profiles", DefaultProfilesPath(), "Path to the dataset profiles file")
	cmd.Flags().StringVar(&f.Profile, "profile", "", "Dataset profile to load")
	cmd.Flags().StringVar(&f.Path, "source", "", "Dataset location: file path or s3://bucket/key")
	cmd.Flags().StringVar(&f.Driver, "driver", "", "Loader driver (csv, xlsx, duckdb, s3); detected from the location when empty")
	cmd.Flags().StringVar(&f.Encoding, "encoding", "", "Source text encoding (latin-1, utf-8)")
	cmd.Flags().StringVar(&f.Sheet, "sheet", "", "Worksheet name for spreadsheet sources")
}

func (f *SourceFlags) Resolve(ctx context.Context) (domain.SourceProfile, *config.Settings, error) {
	settings, err := config.LoadSettings(f.SettingsPath)
	if err != nil {
		return domain.SourceProfile{}, nil, err
	}

	profile := domain.SourceProfile{
		Name:       "default",
		Driver:     settings.Source.Driver,
		Path:       settings.Source.Path,
		Encoding:   settings.Source.Encoding,
		Sheet:      settings.Source.Sheet,
		AWSProfile: settings.Source.AWSProfile,
	}

	name := f.Profile
	if name == "" {
		name = settings.Source.Profile
	}
	if name != "" {
		registry, err := config.NewRegistry(f.ProfilesPath)
		if err != nil {
			return domain.SourceProfile{}, nil, fmt.Errorf("failed to read profiles file %s: %w", f.ProfilesPath, err)
		}
		named, err := registry.GetProfile(ctx, name)
		if err != nil {
			return domain.SourceProfile{}, nil, err
		}
		profile.Name = named.Name
		profile.Path = named.Path
		profile.Driver = named.Driver
		if named.Encoding != "" {
			profile.Encoding = named.Encoding
		}
		if named.Sheet != "" {
			profile.Sheet = named.Sheet
		}
		if named.AWSProfile != "" {
			profile.AWSProfile = named.AWSProfile
		}
	}

	if f.Path != "" {
		profile.Path = f.Path
		profile.Driver = ""
	}
	if f.Driver != "" {
		profile.Driver = f.Driver
	}
	if f.Encoding != "" {
		profile.Encoding = f.Encoding
	}
	if f.Sheet != "" {
		profile.Sheet = f.Sheet
	}

	return profile, settings, nil
}

// LoggerContext replaces the command logger with one built from the resolved log settings.
// Logs go to the command's error stream so they never mix with rendered output.
func LoggerContext(cmd *cobra.Command, settings *config.Settings) (context.Context, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Format)
	if err != nil {
		return nil, err
	}
	return logger.WithContext(cmd.Context()), nil
}
