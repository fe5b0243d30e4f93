package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one organization profile from ~/.grantforgecfg. Profiles
// prefill the organization-level form fields so repeat users don't
// retype them per document.
type Profile struct {
	Name               string
	Organization       string
	Currency           string
	ContingencyPercent float64
	PreparedBy         string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
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

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	contingency := section.Key("contingency_percent").MustFloat64(10)

	return &Profile{
		Name:               name,
		Organization:       section.Key("organization").String(),
		Currency:           section.Key("currency").MustString("USD"),
		ContingencyPercent: contingency,
		PreparedBy:         section.Key("prepared_by").String(),
	}, nil
}
