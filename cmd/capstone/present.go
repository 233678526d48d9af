package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/capstone/pkg/present"
)

var (
	presentInsights bool
	noColor         bool
)

var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Print the presentation summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		facts, err := loadFacts()
		if err != nil {
			return fmt.Errorf("failed to load project facts: %w", err)
		}
		w := present.NewWriter(cmd.OutOrStdout(), facts, present.WithColor(!noColor))

		if err := w.WriteIntro(); err != nil {
			return err
		}
		if err := w.WriteSummary(); err != nil {
			return err
		}
		if presentInsights {
			if err := writeInsights(cmd.Context(), w); err != nil {
				return err
			}
		}
		return w.WriteCompletion()
	},
}

func writeInsights(ctx context.Context, w *present.Writer) error {
	svc, repo, err := newService()
	if err != nil {
		return err
	}
	results, err := svc.ExtractAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract insights: %w", err)
	}
	logState(svc, repo)
	return w.WriteInsights(results)
}

func init() {
	rootCmd.AddCommand(presentCmd)
	presentCmd.Flags().BoolVar(&presentInsights, "insights", false, "Include the insights extracted from each notebook")
	presentCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored headings")
}
