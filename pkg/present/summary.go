package present

import (
	"fmt"
	"strings"

	"github.com/aretw0/capstone/pkg/core"
)

// WriteIntro prints the greeting shown before the summary.
func (w *Writer) WriteIntro() error {
	w.println("SpaceX Capstone Presentation Helper")
	w.println("Generating presentation summary...")
	return w.err
}

// WriteSummary prints the canned presentation summary.
func (w *Writer) WriteSummary() error {
	w.banner("SPACEX FALCON 9 LANDING PREDICTION - PRESENTATION SUMMARY")

	w.section("🎯 KEY RESULTS:")
	for _, r := range w.facts.KeyResults {
		w.printf("- %s\n", r)
	}

	w.section("📊 MODEL PERFORMANCE COMPARISON:")
	w.printf("%-25s %-15s %-10s\n", "Model", "Validation Acc", "Test Acc")
	w.println(strings.Repeat("-", 50))
	for _, m := range w.facts.Models {
		w.printf("%-25s %-15s %-10s\n", m.Model, m.Validation, m.Test)
	}

	w.section("🔍 KEY INSIGHTS:")
	w.numbered(w.facts.Insights)

	w.section("💼 BUSINESS RECOMMENDATIONS:")
	w.numbered(w.facts.Recommendations)

	w.section("📈 PROJECT METHODOLOGY:")
	w.numbered(w.facts.Methodology)
	return w.err
}

// WriteInsights prints the extraction result of every notebook in order.
func (w *Writer) WriteInsights(results []core.Result) error {
	w.section("📓 NOTEBOOK INSIGHTS:")
	for _, res := range results {
		w.WriteResult(res)
	}
	return w.err
}

// WriteResult prints the extraction result of one notebook.
func (w *Writer) WriteResult(res core.Result) error {
	w.printf("\n%s (%s)\n", res.Key, res.File)
	if res.Failed() {
		w.styled(w.warn, "  "+res.Message)
		return w.err
	}
	if res.Title != "" {
		w.printf("  Title: %s\n", res.Title)
	}
	if len(res.Insights) == 0 {
		w.println("  No key insights found")
		return w.err
	}
	for _, in := range res.Insights {
		label := fmt.Sprintf("cell %d", in.CellIndex)
		if in.Type != "" {
			label += " " + in.Type
		}
		w.printf("  [%s]\n", label)
		for _, line := range strings.Split(strings.TrimRight(in.Content, "\n"), "\n") {
			w.printf("    %s\n", line)
		}
	}
	return w.err
}

// WriteCompletion prints the closing banner.
func (w *Writer) WriteCompletion() error {
	w.println("")
	w.banner("NOTEBOOK ANALYSIS COMPLETE")
	w.println("\nComplete presentation content available in:")
	w.println("- SpaceX_Capstone_Presentation_Content.md")
	w.println("- Use this content to populate the PowerPoint template")
	w.println("- All key insights, results, and recommendations included")
	return w.err
}
