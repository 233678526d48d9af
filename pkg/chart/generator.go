package chart

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/capstone/pkg/adapters/fs"
	"github.com/aretw0/capstone/pkg/core"
	"github.com/aretw0/capstone/pkg/project"
)

// Format is the output file format of the charts.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// DefaultScale is the PNG resolution in pixels per figure inch.
const DefaultScale = 100

// ParseFormat validates a format name. An empty name selects PNG.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: chart format %q", core.ErrUnknownFormat, s)
}

// Config configures a Generator.
type Config struct {
	OutputDir string
	Format    Format
	Scale     float64
	Facts     *project.Facts
	Logger    *slog.Logger
	// OnChart is called before each chart is rendered.
	OnChart func(Chart)
}

// Generator renders the project charts to files.
type Generator struct {
	config Config
}

// NewGenerator validates the config and fills in defaults.
func NewGenerator(config Config) (*Generator, error) {
	format, err := ParseFormat(string(config.Format))
	if err != nil {
		return nil, err
	}
	config.Format = format

	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.Scale <= 0 {
		config.Scale = DefaultScale
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.Facts == nil {
		facts, err := project.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load project facts: %w", err)
		}
		config.Facts = facts
	}
	return &Generator{config: config}, nil
}

// Path returns the file a chart is written to.
func (g *Generator) Path(ch Chart) string {
	return filepath.Join(g.config.OutputDir, ch.Name+"."+string(g.config.Format))
}

// Render draws a chart and encodes it to w in the configured format.
func (g *Generator) Render(ch Chart, w io.Writer) error {
	var c Canvas
	switch g.config.Format {
	case FormatPDF:
		c = NewPDFCanvas(ch.Width, ch.Height)
	default:
		rc, err := NewRasterCanvas(ch.Width, ch.Height, g.config.Scale)
		if err != nil {
			return err
		}
		c = rc
	}

	if err := ch.Draw(c, g.config.Facts); err != nil {
		return fmt.Errorf("failed to draw %s: %w", ch.Name, err)
	}
	if err := c.Encode(w); err != nil {
		return fmt.Errorf("failed to encode %s: %w", ch.Name, err)
	}
	return nil
}

// Generate writes every chart to the output directory and returns the paths in order.
// It stops at the first failure.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	var paths []string
	for _, ch := range Charts() {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if g.config.OnChart != nil {
			g.config.OnChart(ch)
		}

		var buf bytes.Buffer
		if err := g.Render(ch, &buf); err != nil {
			return paths, err
		}
		path := g.Path(ch)
		if err := fs.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		g.config.Logger.Debug("chart written", "chart", ch.Name, "path", path, "bytes", buf.Len())
		paths = append(paths, path)
	}
	return paths, nil
}
