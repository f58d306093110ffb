package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weathercard/backend/internal/app"
	"github.com/weathercard/backend/internal/config"
	"github.com/weathercard/backend/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "weathercard",
	Short: "WeatherCard - current weather for any city",
	Long: `WeatherCard looks up current conditions for a city from OpenWeatherMap
and remembers your light or dark theme between sessions.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openApp loads configuration and wires the widget for one command
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	cfg.LogStartup()

	widget, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return widget, nil
}
