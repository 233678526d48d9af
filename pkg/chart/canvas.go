// Package chart renders the descriptive project charts.
//
// Charts are drawn against a Canvas in figure inches with the origin at the
// bottom-left corner. Two canvases exist: a PNG rasterizer and a PDF writer.
package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is a position in figure inches, origin at the bottom-left corner.
type Point struct {
	X, Y float64
}

// Color is an opaque RGB color. Transparency is passed separately to drawing calls.
type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Gray      = Color{128, 128, 128}
	LightGray = Color{211, 211, 211}
)

var namedColors = map[string]Color{
	"black":     Black,
	"white":     White,
	"gray":      Gray,
	"grey":      Gray,
	"lightgray": LightGray,
}

// ParseColor accepts "#RRGGBB" or one of a few color names.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || hex == s {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Font selects a face of the canvas font family.
type Font struct {
	Size float64 // points
	Bold bool
}

// Metrics describes vertical font measurements, in inches.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Canvas is a drawing surface.
type Canvas interface {
	// Size returns the figure size in inches.
	Size() (w, h float64)
	// Fill paints the closed polygon.
	Fill(pts []Point, c Color, alpha float64)
	// Stroke draws the polyline with a width in points.
	Stroke(pts []Point, c Color, width, alpha float64)
	// DrawString draws a single line of text whose baseline starts at p,
	// rotated counter-clockwise by angle degrees around p.
	DrawString(p Point, s string, f Font, c Color, angle float64)
	// MeasureString returns the advance width of s in inches.
	MeasureString(s string, f Font) float64
	// FontMetrics returns the vertical metrics of f.
	FontMetrics(f Font) Metrics
	// Encode writes the finished figure.
	Encode(w io.Writer) error
}
