package config

import (
	"context"
	"fmt"

	"github.com/de-tools/story-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry lists dataset profiles from an ini file such as ~/.storyatlas:
//
//	[superstore]
//	path     = /data/Sample - Superstore.csv
//	driver   = csv
//	encoding = latin-1
//
//	[archive]
//	path        = s3://exports/2016.csv
//	aws_profile = analytics
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.SourceProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.SourceProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.SourceProfile{}, fmt.Errorf("profile %s not found", name)
	}

	path := section.Key("path").String()
	if path == "" {
		return domain.SourceProfile{}, fmt.Errorf("profile %s has no path", name)
	}

	return domain.SourceProfile{
		Name:       name,
		Driver:     section.Key("driver").String(),
		Path:       path,
		Encoding:   section.Key("encoding").String(),
		Sheet:      section.Key("sheet").String(),
		AWSProfile: section.Key("aws_profile").String(),
	}, nil
}
