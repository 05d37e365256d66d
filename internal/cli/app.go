package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/ecocode-app/ecocode-cli/internal/auth"
	"github.com/ecocode-app/ecocode-cli/internal/client"
	"github.com/ecocode-app/ecocode-cli/internal/config"
	"github.com/ecocode-app/ecocode-cli/internal/domain"
	"github.com/ecocode-app/ecocode-cli/internal/render"
	"github.com/ecocode-app/ecocode-cli/internal/ui"
)

// userFacing extracts the single-line message for an error.
func userFacing(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.UserMessage()
	}
	return fmt.Sprintf("%v", err)
}

// App wires the configured client, auth gateway and panels for one command
// invocation.
type App struct {
	Config  *config.AppConfig
	Logger  *slog.Logger
	Client  *client.APIClient
	Gateway *auth.Gateway
	Surface *ui.Surface

	Analysis  *render.AnalysisPanel
	GitHub    *render.GitHubPanel
	Hosting   *render.HostingPanel
	Dashboard *render.DashboardPanel
}

// newApp assembles the application and restores any persisted session.
func newApp(ctx context.Context) (*App, error) {
	cfg := config.NewConfig()
	if apiURL != "" {
		cfg.SetAPIBaseURL(apiURL)
	} else if profile, err := GetCurrentProfile(); err == nil && profile.APIURL != "" {
		cfg.SetAPIBaseURL(profile.APIURL)
	}

	logger := newLogger(cfg)
	apiClient := client.New(cfg, logger)

	profileName := activeProfileName()
	gateway := auth.New(cfg, newProfileTokenStore(profileName), logger)
	if err := gateway.RestoreSession(ctx); err != nil {
		logger.Warn("session restore failed", "error", err)
	}

	surface := ui.NewSurface(os.Stderr)
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Client:  apiClient,
		Gateway: gateway,
		Surface: surface,

		Analysis:  render.NewAnalysisPanel(apiClient, cfg, surface, os.Stdout, logger),
		GitHub:    render.NewGitHubPanel(apiClient, surface, os.Stdout, logger),
		Hosting:   render.NewHostingPanel(apiClient, surface, os.Stdout, logger),
		Dashboard: render.NewDashboardPanel(apiClient, gateway, surface, os.Stdout, logger),
	}
	return app, nil
}

func activeProfileName() string {
	if envProfile := viper.GetString("profile"); envProfile != "" {
		return envProfile
	}
	if cfg, err := LoadConfig(); err == nil && cfg.DefaultProfile != "" {
		return cfg.DefaultProfile
	}
	return "default"
}

func newLogger(cfg *config.AppConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.GetLogLevel() {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
