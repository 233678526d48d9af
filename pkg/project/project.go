// Package project holds the canned facts about the capstone project that the
// charts and the presentation summary are built from.
package project

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed project.yaml
var defaultFacts []byte

// Stage is one step of the project pipeline.
type Stage struct {
	Name       string   `yaml:"name"`
	Components []string `yaml:"components"`
	Color      string   `yaml:"color"`
}

// NotebookStat describes the size and focus of one coursework notebook.
type NotebookStat struct {
	Label string `yaml:"label"`
	Cells int    `yaml:"cells"`
	Focus string `yaml:"focus"`
}

// Share is one slice of a distribution.
type Share struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

// Phase is one phase of the data science lifecycle.
type Phase struct {
	Name    string   `yaml:"name"`
	Details []string `yaml:"details"`
	Color   string   `yaml:"color"`
}

// Layer is one layer of the technical stack.
type Layer struct {
	Name         string   `yaml:"name"`
	Technologies []string `yaml:"technologies"`
	Color        string   `yaml:"color"`
}

// ModelScore holds the reported accuracies of one model.
type ModelScore struct {
	Model      string `yaml:"model"`
	Validation string `yaml:"validation"`
	Test       string `yaml:"test"`
}

// Facts is the full set of project facts.
type Facts struct {
	Title             string         `yaml:"title"`
	Pipeline          []Stage        `yaml:"pipeline"`
	Notebooks         []NotebookStat `yaml:"notebooks"`
	FocusDistribution []Share        `yaml:"focus_distribution"`
	Lifecycle         []Phase        `yaml:"lifecycle"`
	Stack             []Layer        `yaml:"stack"`
	KeyResults        []string       `yaml:"key_results"`
	Models            []ModelScore   `yaml:"models"`
	Insights          []string       `yaml:"insights"`
	Recommendations   []string       `yaml:"recommendations"`
	Methodology       []string       `yaml:"methodology"`
	Slides            []Slide        `yaml:"slides"`
}

// Default returns the facts bundled with the binary.
func Default() (*Facts, error) {
	return Parse(defaultFacts)
}

// Load reads facts from a YAML file. Sections missing from the file keep their bundled values.
func Load(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project facts: %w", err)
	}
	facts, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, facts); err != nil {
		return nil, fmt.Errorf("invalid project facts %s: %w", path, err)
	}
	return facts, nil
}

// Parse decodes facts from YAML.
func Parse(data []byte) (*Facts, error) {
	var facts Facts
	if err := yaml.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("invalid project facts: %w", err)
	}
	return &facts, nil
}
