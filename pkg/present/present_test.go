package present_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/capstone/pkg/core"
	"github.com/aretw0/capstone/pkg/present"
	"github.com/aretw0/capstone/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newWriter(t *testing.T) (*present.Writer, *bytes.Buffer) {
	t.Helper()
	facts, err := project.Default()
	require.NoError(t, err)
	var buf bytes.Buffer
	return present.NewWriter(&buf, facts, present.WithColor(false)), &buf
}

func TestWriteSummary(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteSummary())
	out := buf.String()

	lines := strings.Split(out, "\n")
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, "SPACEX FALCON 9 LANDING PREDICTION - PRESENTATION SUMMARY", lines[1])
	assert.Equal(t, strings.Repeat("=", 60), lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "🎯 KEY RESULTS:", lines[4])
	assert.Equal(t, "- Best Model: Decision Tree with 94.4% test accuracy", lines[5])

	assert.Contains(t, out, "\nModel                     Validation Acc  Test Acc  \n"+strings.Repeat("-", 50)+"\n")
	assert.Contains(t, out, "\nDecision Tree (BEST)      89.1%           94.4%     \n")
	assert.Contains(t, out, "\n🔍 KEY INSIGHTS:\n1. Flight experience improves landing success (learning curve)\n")
	assert.Contains(t, out, "\n💼 BUSINESS RECOMMENDATIONS:\n1. Use 94.4% accuracy model for competitive launch cost bidding\n")
	assert.True(t, strings.HasSuffix(out, "6. Business Translation: Actionable insights and recommendations\n"))
	assert.NotContains(t, out, "\x1b[")
}

func TestWriteInsights(t *testing.T) {
	w, buf := newWriter(t)
	results := []core.Result{
		{
			Key:   "machine_learning",
			File:  "ml.ipynb",
			Title: "Machine Learning Prediction",
			Insights: []core.Insight{
				{CellIndex: 1, Content: "## Conclusion\nDecision trees win"},
				{CellIndex: 4, Type: core.InsightOutput, Content: "Best Accuracy: 94.4%\n"},
			},
		},
		{Key: "web_scraping", File: "scrape.ipynb", Message: "Notebook not found: scrape.ipynb"},
		{Key: "empty", File: "empty.ipynb", Insights: []core.Insight{}},
	}
	require.NoError(t, w.WriteInsights(results))

	assert.Equal(t, `
📓 NOTEBOOK INSIGHTS:

machine_learning (ml.ipynb)
  Title: Machine Learning Prediction
  [cell 1]
    ## Conclusion
    Decision trees win
  [cell 4 output]
    Best Accuracy: 94.4%

web_scraping (scrape.ipynb)
  Notebook not found: scrape.ipynb

empty (empty.ipynb)
  No key insights found
`, buf.String())
}

func TestWriteCompletion(t *testing.T) {
	w, buf := newWriter(t)
	require.NoError(t, w.WriteCompletion())
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\n"+strings.Repeat("=", 60)+"\nNOTEBOOK ANALYSIS COMPLETE\n"))
	assert.Contains(t, out, "- SpaceX_Capstone_Presentation_Content.md\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_KeepsFirstError(t *testing.T) {
	facts, err := project.Default()
	require.NoError(t, err)
	w := present.NewWriter(failingWriter{}, facts, present.WithColor(false))

	assert.EqualError(t, w.WriteSummary(), "disk full")
	assert.EqualError(t, w.WriteCompletion(), "disk full")
}

func TestParseSlideFormat(t *testing.T) {
	for in, want := range map[string]present.SlideFormat{
		"":         present.SlidesYAML,
		"yml":      present.SlidesYAML,
		"JSON":     present.SlidesJSON,
		"md":       present.SlidesMarkdown,
		"markdown": present.SlidesMarkdown,
		"html":     present.SlidesHTML,
	} {
		got, err := present.ParseSlideFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := present.ParseSlideFormat("pptx")
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}

func TestRenderSlides(t *testing.T) {
	facts, err := project.Default()
	require.NoError(t, err)
	deck := project.Deck(facts.Slides)

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, present.RenderSlides(&buf, deck, present.SlidesYAML))

		var decoded map[string]map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "Decision Tree", decoded["results"]["best_model"])
		assert.True(t, strings.HasPrefix(buf.String(), "title_slide:\n"))
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, present.RenderSlides(&buf, deck, present.SlidesJSON))

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "$62M per launch", decoded["problem_statement"]["spacex_cost"])
	})

	t.Run("Markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, present.RenderSlides(&buf, deck, present.SlidesMarkdown))
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "## SpaceX Falcon 9 First Stage Landing Prediction\n\n"))
		assert.Contains(t, out, "- **Data sources**: SpaceX API, Web Scraping, Geographic Data\n")
		assert.Contains(t, out, "- **Models tested**: 4\n")
		assert.Equal(t, 3, strings.Count(out, "\n---\n"))
	})

	t.Run("HTML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, present.RenderSlides(&buf, deck, present.SlidesHTML))
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, "<h2>Business Problem &amp; Opportunity</h2>")
		assert.Contains(t, out, "<strong>Best model</strong>: Decision Tree")
		assert.Equal(t, 3, strings.Count(out, "<hr>"))
	})

	t.Run("Unknown", func(t *testing.T) {
		err := present.RenderSlides(&bytes.Buffer{}, deck, present.SlideFormat("pptx"))
		assert.ErrorIs(t, err, core.ErrUnknownFormat)
	})
}
