package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"feedback-browser/internal/config"
	"feedback-browser/internal/logger"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	ConfigPath   string
	DatabasePath string
	Verbose      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "feedback-browser",
		Short:         "Browse and filter customer feedback",
		Long:          "Serves the feedback query and grouping API, or runs a filter query offline.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file (defaults are used when empty)")
	cmd.PersistentFlags().StringVar(&opts.DatabasePath, "database", "", "override database.path from the config")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newQueryCommand(opts))

	return cmd
}

// loadConfig resolves the config for a command and configures logging to w.
func loadConfig(opts *rootOptions, w io.Writer) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DatabasePath != "" {
		cfg.Database.Path = opts.DatabasePath
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}
	format, err := logger.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	logger.Configure(w, level, format)

	return cfg, nil
}
