package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/capstone/pkg/adapters/fs"
	"github.com/aretw0/capstone/pkg/present"
	"github.com/aretw0/capstone/pkg/project"
)

var (
	slidesFormat string
	slidesOut    string
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Print the slide templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := present.ParseSlideFormat(slidesFormat)
		if err != nil {
			return err
		}
		facts, err := loadFacts()
		if err != nil {
			return fmt.Errorf("failed to load project facts: %w", err)
		}

		var buf bytes.Buffer
		if err := present.RenderSlides(&buf, project.Deck(facts.Slides), format); err != nil {
			return err
		}

		if slidesOut == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := fs.WriteFileAtomic(slidesOut, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write slides: %w", err)
		}
		logger.Info("slides written", "path", slidesOut, "format", format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slidesCmd)
	slidesCmd.Flags().StringVar(&slidesFormat, "format", "yaml", "Output format: yaml, json, markdown or html")
	slidesCmd.Flags().StringVarP(&slidesOut, "out", "o", "", "Write to a file instead of stdout")
}
