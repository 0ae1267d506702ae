package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/df-tools/solrecon/pkg/services/config"
	"github.com/df-tools/solrecon/pkg/services/report"
	"github.com/df-tools/solrecon/pkg/services/report/format"
	"github.com/df-tools/solrecon/pkg/store/client"
)

// profileFlags are the credential/settings flags every querying command
// shares.
type profileFlags struct {
	configPath   string
	profile      string
	settingsPath string
}

// buildDeps resolves the session from the profile file and wires the
// API client and formatter behind it.
func (pf *profileFlags) buildDeps(ctx context.Context) (report.Deps, *config.Settings, error) {
	settings, err := config.LoadSettings(pf.settingsPath)
	if err != nil {
		return report.Deps{}, nil, err
	}

	registry, err := config.NewRegistry(pf.configPath)
	if err != nil {
		return report.Deps{}, nil, fmt.Errorf("failed to load profiles from %s: %w", pf.configPath, err)
	}
	session, err := registry.GetSession(ctx, pf.profile)
	if err != nil {
		return report.Deps{}, nil, err
	}

	// A missing item table only degrades item names to raw IDs.
	items, _ := format.LoadItemTable(settings.KeywordsFile)

	deps := report.Deps{
		Client: client.New(*session, client.Options{
			Timeout:    time.Duration(settings.Timeout) * time.Second,
			RetryCount: settings.RetryCount,
			CacheTTL:   time.Duration(settings.CacheExpiry) * time.Second,
		}),
		Format: format.NewFormatter(items),
	}
	return deps, settings, nil
}
