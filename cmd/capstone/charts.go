package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/capstone/pkg/chart"
)

var (
	chartsOut    string
	chartsFormat string
	chartsScale  float64
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Generate the project charts",
	Long: `Render the project overview, notebook breakdown, methodology and
technical stack charts as PNG (default) or PDF files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		facts, err := loadFacts()
		if err != nil {
			return fmt.Errorf("failed to load project facts: %w", err)
		}

		outputDir := cfg.OutputDir
		if chartsOut != "" {
			outputDir = chartsOut
		}
		format := cfg.Format
		if chartsFormat != "" {
			format = chartsFormat
		}
		scale := cfg.Scale
		if chartsScale > 0 {
			scale = chartsScale
		}

		gen, err := chart.NewGenerator(chart.Config{
			OutputDir: outputDir,
			Format:    chart.Format(format),
			Scale:     scale,
			Facts:     facts,
			Logger:    logger,
			OnChart: func(ch chart.Chart) {
				fmt.Fprintln(out, ch.Progress)
			},
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "🚀 Generating SpaceX Project Analysis Visualizations...")
		paths, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to generate charts: %w", err)
		}

		fmt.Fprintln(out, "✅ All visualizations generated successfully!")
		fmt.Fprintln(out, "\nGenerated files:")
		for _, p := range paths {
			fmt.Fprintf(out, "- %s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVar(&chartsOut, "out", "", "Output directory (default from config, or the working directory)")
	chartsCmd.Flags().StringVar(&chartsFormat, "format", "", "Output format: png or pdf")
	chartsCmd.Flags().Float64Var(&chartsScale, "scale", 0, "PNG resolution in pixels per inch")
}
