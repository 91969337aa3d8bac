// Package cmd contains the genonaut CLI commands.
package cmd

import (
	"fmt"

	"genonaut/config"
	"genonaut/utils/logger"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "genonaut",
	Short: "Unified content listing service",
	Long: `genonaut serves keyset-paginated listings over regular and auto-generated content.

Example usage:
  genonaut serve                                   # Start the HTTP API
  genonaut cursor decode <token>                   # Inspect a pagination cursor
  genonaut tags reproject --source items --id 42   # Rebuild one record's tag_ids`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the service.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.AddCommand(serveCmd, cursorCmd, tagsCmd)
}

// loadConfig reads configuration and reconfigures the global logger from it.
func loadConfig(otelEnabled bool) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.InitLoggerWithConfig(cfg.Logging.Level, cfg.Logging.Format, otelEnabled && cfg.Telemetry.Enabled)
	return cfg, nil
}
