package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/capstone/pkg/chart"
	"github.com/aretw0/capstone/pkg/core"
)

// ConfigFileName is the name of the project config file.
const ConfigFileName = "capstone.yaml"

// Config is the contents of capstone.yaml.
type Config struct {
	RepoPath  string       `yaml:"repo_path"`
	Notebooks []core.Entry `yaml:"notebooks"`
	Discover  string       `yaml:"discover,omitempty"`
	OutputDir string       `yaml:"output_dir"`
	Format    string       `yaml:"format"`
	Scale     float64      `yaml:"scale"`
	Facts     string       `yaml:"facts,omitempty"`    // optional project facts override
	LogFile   string       `yaml:"log_file,omitempty"` // rotated log file
}

// DefaultNotebooks returns the capstone notebooks in report order.
func DefaultNotebooks() []core.Entry {
	return []core.Entry{
		{Key: "data_collection", File: "jupyter-labs-spacex-data-collection-api.ipynb"},
		{Key: "web_scraping", File: "jupyter-labs-webscraping.ipynb"},
		{Key: "data_wrangling", File: "labs-jupyter-spacex-Data wrangling.ipynb"},
		{Key: "eda_visualization", File: "edadataviz.ipynb"},
		{Key: "sql_analysis", File: "jupyter-labs-eda-sql-coursera_sqllite.ipynb"},
		{Key: "location_analysis", File: "lab_jupyter_launch_site_location (1).ipynb"},
		{Key: "machine_learning", File: "SpaceX_Machine Learning Prediction_Part_5.ipynb"},
	}
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		RepoPath:  ".",
		Notebooks: DefaultNotebooks(),
		OutputDir: ".",
		Format:    string(chart.FormatPNG),
		Scale:     chart.DefaultScale,
	}
}

// LoadConfig reads a config file over the defaults. Relative paths in the
// file are resolved against the directory holding it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if file.RepoPath != "" {
		cfg.RepoPath = resolve(base, file.RepoPath)
	} else {
		cfg.RepoPath = base
	}
	if file.OutputDir != "" {
		cfg.OutputDir = resolve(base, file.OutputDir)
	}
	if file.Facts != "" {
		cfg.Facts = resolve(base, file.Facts)
	}
	if file.LogFile != "" {
		cfg.LogFile = resolve(base, file.LogFile)
	}
	if file.Notebooks != nil {
		cfg.Notebooks = file.Notebooks
	}
	if file.Discover != "" {
		cfg.Discover = file.Discover
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	if file.Scale != 0 {
		cfg.Scale = file.Scale
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the notebook entries and chart settings.
func (c Config) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Notebooks))
	for i, e := range c.Notebooks {
		switch {
		case e.Key == "":
			errs = append(errs, fmt.Errorf("notebook %d: key is required", i))
		case e.File == "":
			errs = append(errs, fmt.Errorf("notebook %s: file is required", e.Key))
		case seen[e.Key]:
			errs = append(errs, fmt.Errorf("notebook %s: duplicate key", e.Key))
		}
		seen[e.Key] = true
	}
	if _, err := chart.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Scale < 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", c.Scale))
	}
	return errors.Join(errs...)
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
