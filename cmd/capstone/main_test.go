package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/capstone/pkg/core"
)

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, repoPath, logFile, verbose = "", "", "", false
	chartsOut, chartsFormat, chartsScale = "", "", 0
	presentInsights, noColor = false, false
	insightsJSON, insightsWatch, insightsDiscover = false, false, ""
	slidesFormat, slidesOut = "yaml", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

// writeProject writes a config file pointing at a notebook directory with one notebook.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	nbDir := filepath.Join(dir, "notebooks")
	require.NoError(t, os.Mkdir(nbDir, 0755))

	nb := `{"cells": [
		{"cell_type": "markdown", "source": "# Launch Sites\nAnalysis of launch outcomes"},
		{"cell_type": "code", "source": "", "outputs": []}
	]}`
	require.NoError(t, os.WriteFile(filepath.Join(nbDir, "edadataviz.ipynb"), []byte(nb), 0644))

	cfg := "repo_path: notebooks\noutput_dir: charts\nscale: 10\n"
	path := filepath.Join(dir, "capstone.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "capstone version "))
}

func TestPresent(t *testing.T) {
	out, err := run(t, "present", "--no-color", "--config", writeProject(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "SpaceX Capstone Presentation Helper\nGenerating presentation summary...\n"))
	assert.Contains(t, out, "SPACEX FALCON 9 LANDING PREDICTION - PRESENTATION SUMMARY")
	assert.Contains(t, out, "NOTEBOOK ANALYSIS COMPLETE")
	assert.NotContains(t, out, "NOTEBOOK INSIGHTS")
}

func TestPresent_WithInsights(t *testing.T) {
	out, err := run(t, "present", "--no-color", "--insights", "--config", writeProject(t))
	require.NoError(t, err)

	assert.Contains(t, out, "data_collection (jupyter-labs-spacex-data-collection-api.ipynb)\n  Notebook not found: jupyter-labs-spacex-data-collection-api.ipynb")
	assert.Contains(t, out, "eda_visualization (edadataviz.ipynb)\n  Title: Launch Sites\n  [cell 0]")
}

func TestInsights_JSON(t *testing.T) {
	out, err := run(t, "insights", "--json", "--config", writeProject(t))
	require.NoError(t, err)

	var results []core.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 7)
	assert.Equal(t, "Notebook not found: jupyter-labs-webscraping.ipynb", results[1].Message)
	assert.Equal(t, "Launch Sites", results[3].Title)
	assert.Len(t, results[3].Insights, 1)
}

func TestInsights_RepoFlag(t *testing.T) {
	cfg := writeProject(t)
	out, err := run(t, "insights", "--json", "--config", cfg, "--repo", t.TempDir(), "--discover", "**/*.ipynb")
	require.NoError(t, err)

	var results []core.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	for _, r := range results {
		assert.True(t, r.Failed(), r.Key)
	}
}

func TestCharts(t *testing.T) {
	cfg := writeProject(t)
	out, err := run(t, "charts", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "📊 Creating project overview diagram...\n")
	assert.Contains(t, out, "✅ All visualizations generated successfully!")

	chartsDir := filepath.Join(filepath.Dir(cfg), "charts")
	for _, name := range []string{
		"spacex_project_overview.png",
		"notebook_analysis_breakdown.png",
		"spacex_methodology_summary.png",
		"spacex_technical_stack.png",
	} {
		assert.FileExists(t, filepath.Join(chartsDir, name))
		assert.Contains(t, out, "- "+filepath.Join(chartsDir, name)+"\n")
	}
}

func TestCharts_PDF(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "charts", "--config", writeProject(t), "--format", "pdf", "--out", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "spacex_technical_stack.pdf"))
}

func TestCharts_UnknownFormat(t *testing.T) {
	_, err := run(t, "charts", "--config", writeProject(t), "--format", "svg")
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}

func TestSlides(t *testing.T) {
	out, err := run(t, "slides", "--config", writeProject(t), "--format", "json")
	require.NoError(t, err)

	var deck map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &deck))
	assert.Equal(t, "Data Science Methodology", deck["methodology"]["title"])
}

func TestSlides_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.html")
	out, err := run(t, "slides", "--config", writeProject(t), "--format", "html", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h2>Model Performance Results</h2>")
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "capstone.log")
	_, err := run(t, "insights", "--config", writeProject(t), "--log-file", logPath, "--verbose")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "component state")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capstone.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: gif\n"), 0644))

	_, err := run(t, "version", "--config", path)
	assert.ErrorIs(t, err, core.ErrUnknownFormat)
}
