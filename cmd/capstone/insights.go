package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/capstone"
	"github.com/aretw0/capstone/pkg/core"
	"github.com/aretw0/capstone/pkg/present"
)

var (
	insightsJSON     bool
	insightsWatch    bool
	insightsDiscover string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Extract key insights from the project notebooks",
	Long: `Scan the configured notebooks for markdown cells and code outputs that
mention objectives, conclusions, results or scores and print them.
Missing or unreadable notebooks are reported in place and do not fail the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, repo, err := newService()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		results, err := svc.ExtractAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to extract insights: %w", err)
		}
		logState(svc, repo)

		out := cmd.OutOrStdout()
		w := present.NewWriter(out, nil)

		if insightsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return fmt.Errorf("failed to encode insights: %w", err)
			}
		} else if err := w.WriteInsights(results); err != nil {
			return err
		}

		if !insightsWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		updates, err := svc.Watch(ctx)
		if err != nil {
			return fmt.Errorf("failed to watch notebooks: %w", err)
		}
		logger.Info("watching notebooks", "repo", cfg.RepoPath)

		for res := range updates {
			if insightsJSON {
				if err := json.NewEncoder(out).Encode(res); err != nil {
					return fmt.Errorf("failed to encode insights: %w", err)
				}
				continue
			}
			if err := w.WriteResult(res); err != nil {
				return err
			}
		}
		logState(svc, repo)
		return nil
	},
}

// newService builds the insight service from the loaded configuration.
func newService() (*core.Service, core.Repository, error) {
	discover := cfg.Discover
	if insightsDiscover != "" {
		discover = insightsDiscover
	}

	repo, err := capstone.Open(cfg.RepoPath,
		capstone.WithLogger(logger),
		capstone.WithWatcherErrorHandler(func(err error) {
			logger.Error("watcher error", "error", err)
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open notebooks: %w", err)
	}

	svc, err := capstone.New(cfg.RepoPath,
		capstone.WithRepository(repo),
		capstone.WithLogger(logger),
		capstone.WithNotebooks(cfg.Notebooks),
		capstone.WithDiscover(discover),
	)
	if err != nil {
		return nil, nil, err
	}
	return svc, repo, nil
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "Output in JSON format")
	insightsCmd.Flags().BoolVar(&insightsWatch, "watch", false, "Re-analyze notebooks as they change")
	insightsCmd.Flags().StringVar(&insightsDiscover, "discover", "", "Also analyze notebooks matching this glob (e.g. **/*.ipynb)")
}
