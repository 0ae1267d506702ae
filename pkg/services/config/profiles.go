package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

// Registry reads credential profiles from an ini file. Each section is
// one profile holding the openid/token pair captured from the vendor
// login flow.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetSession(ctx context.Context, profile string) (*domain.Session, error)
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

func (cr *cfgRegistry) GetSession(_ context.Context, profile string) (*domain.Session, error) {
	section := cr.cfg.Section(profile)
	if section == nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	session := &domain.Session{
		OpenID:  section.Key("openid").String(),
		Token:   section.Key("access_token").String(),
		AccType: section.Key("acctype").String(),
	}
	if session.AccType == "" {
		session.AccType = "qc"
	}
	if session.OpenID == "" || session.Token == "" {
		return nil, fmt.Errorf("profile %s is missing openid or access_token", profile)
	}
	return session, nil
}
