package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/df-tools/solrecon/pkg/server"
	"github.com/df-tools/solrecon/pkg/services/config"
	"github.com/df-tools/solrecon/pkg/services/report"
	"github.com/df-tools/solrecon/pkg/services/report/format"
	"github.com/df-tools/solrecon/pkg/store/client"
)

var (
	cfgPath      string
	profile      string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.ini",
		"Path to the credential profile file")
	rootCmd.Flags().StringVar(&profile, "profile", "default", "Credential profile to use")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to the settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}
	session, err := registry.GetSession(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", profile, err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, p := range profiles {
		logger.Info().Msgf("Profile: `%s`", p)
	}

	items, err := format.LoadItemTable(settings.KeywordsFile)
	if err != nil {
		logger.Warn().Err(err).Msg("item table unavailable, item IDs will render raw")
	}

	deps := report.Deps{
		Client: client.New(*session, client.Options{
			Timeout:    time.Duration(settings.Timeout) * time.Second,
			RetryCount: settings.RetryCount,
			CacheTTL:   time.Duration(settings.CacheExpiry) * time.Second,
		}),
		Format: format.NewFormatter(items),
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Registry: report.NewRegistry(),
			Deps:     deps,
		},
	})
	return api.Start()
}
