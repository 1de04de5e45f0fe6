package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/badgewatch/internal/config"
)

var (
	cfgFile   string
	envFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "badgewatch",
	Short: "Keep marketplace count badges in sync with the server",
	Long: `badgewatch polls the marketplace count endpoints (pending orders,
cart items, sales totals) and keeps one badge per endpoint up to date.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: built-in marketplace badges)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "dotenv file with BADGEWATCH_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "text or json")
}

// loadConfig runs Load, Validate and Normalize in that order.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}
