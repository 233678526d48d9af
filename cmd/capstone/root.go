package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/capstone"
	"github.com/aretw0/capstone/internal/platform"
	"github.com/aretw0/capstone/pkg/project"
)

var (
	configPath string
	repoPath   string
	logFile    string
	verbose    bool

	cfg       capstone.Config
	logger    *slog.Logger
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "capstone",
	Short: "Charts and presentation material for the SpaceX Falcon 9 landing prediction capstone",
	Long: `capstone post-processes the SpaceX Falcon 9 first stage landing prediction project.
It extracts key insights from the coursework notebooks, prints the presentation
summary and slide templates, and renders the project charts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, source, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		if repoPath != "" {
			cfg.RepoPath = repoPath
		}
		if logFile != "" {
			cfg.LogFile = logFile
		}

		logger, logCloser = platform.NewLogger(platform.LogOptions{
			Verbose: verbose,
			File:    cfg.LogFile,
			Stderr:  cmd.ErrOrStderr(),
		})
		slog.SetDefault(logger)
		logger.Debug("configuration loaded", "source", source, "repo", cfg.RepoPath, "notebooks", len(cfg.Notebooks))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: capstone.yaml at the project root)")
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", "", "Directory holding the notebooks")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotated file instead of stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// loadConfig reads --config, or the capstone.yaml found above the working
// directory, or falls back to the defaults.
func loadConfig() (capstone.Config, string, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return capstone.Config{}, "", fmt.Errorf("failed to get working directory: %w", err)
		}
		if path, err = capstone.FindConfig(wd); err != nil {
			return capstone.Config{}, "", err
		}
	}
	if path == "" {
		return capstone.DefaultConfig(), "defaults", nil
	}

	c, err := capstone.LoadConfig(path)
	if err != nil {
		return capstone.Config{}, "", err
	}
	return c, path, nil
}

func loadFacts() (*project.Facts, error) {
	if cfg.Facts != "" {
		return project.Load(cfg.Facts)
	}
	return project.Default()
}

// logState logs the introspection state of each component at debug level.
func logState(components ...any) {
	for _, c := range components {
		intro, ok := c.(introspection.Introspectable)
		if !ok {
			continue
		}
		name := fmt.Sprintf("%T", c)
		if comp, ok := c.(introspection.Component); ok {
			name = comp.ComponentType()
		}
		logger.Debug("component state", "component", name, "state", fmt.Sprintf("%+v", intro.State()))
	}
}
