package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds tool-wide tunables. Everything has a default so a
// missing settings file is not an error path worth surfacing.
type Settings struct {
	Timeout      int    `mapstructure:"timeout"`
	RetryCount   int    `mapstructure:"retry_count"`
	CacheExpiry  int    `mapstructure:"cache_expiry"`
	Area         string `mapstructure:"area"`
	ExportFormat string `mapstructure:"export_format"`
	KeywordsFile string `mapstructure:"keywords_file"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("timeout", 30)
	v.SetDefault("retry_count", 3)
	v.SetDefault("cache_expiry", 300)
	v.SetDefault("area", "36")
	v.SetDefault("export_format", "txt")
	v.SetDefault("keywords_file", "keywords.json")
}

// LoadSettings reads the settings file at path; an empty path yields the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	defaults(v)

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
	return &settings, nil
}
