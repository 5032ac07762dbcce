package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix         = "STORY"
	DefaultSourcePath = "Sample - Superstore.csv"
)

type Settings struct {
	Source SourceSettings `mapstructure:"source"`
	Server ServerSettings `mapstructure:"server"`
	Log    LogSettings    `mapstructure:"log"`
}

type SourceSettings struct {
	Path       string `mapstructure:"path"`
	Driver     string `mapstructure:"driver"`
	Encoding   string `mapstructure:"encoding"`
	Sheet      string `mapstructure:"sheet"`
	Profile    string `mapstructure:"profile"`
	AWSProfile string `mapstructure:"aws_profile"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.path", DefaultSourcePath)
	v.SetDefault("source.driver", "")
	v.SetDefault("source.encoding", "latin-1")
	v.SetDefault("source.sheet", "")
	v.SetDefault("source.profile", "")
	v.SetDefault("source.aws_profile", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8050)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// LoadSettings reads defaults, then the optional settings file, then STORY_* variables
// (STORY_SOURCE_PATH, STORY_SERVER_PORT, ...). An empty path skips the file.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Settings) Validate() error {
	var errs []error
	if s.Source.Path == "" && s.Source.Profile == "" {
		errs = append(errs, fmt.Errorf("source.path or source.profile is required"))
	}
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", s.Server.Port))
	}
	return errors.Join(errs...)
}
