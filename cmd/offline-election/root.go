package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ToufeeqP/offline-election/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "offline-election",
		Short:         "Scrape and cache remote chain state for offline analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newScrapeCmd(opts))
	return cmd
}

// newLogger builds the CLI logger. Verbose mode switches to the development
// config with debug level enabled.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig returns the file configuration, or defaults when no file is
// given.
func loadConfig(opts *rootOptions, logger *zap.Logger) (*config.Config, error) {
	if opts.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(opts.configPath, logger)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
