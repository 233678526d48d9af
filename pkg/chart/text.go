package chart

import (
	"math"
	"strings"
)

// HAlign is the horizontal anchor of a text block.
type HAlign int

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is the vertical anchor of a text block.
type VAlign int

const (
	VAlignCenter VAlign = iota
	VAlignBottom
	VAlignTop
)

// TextStyle configures Text.
type TextStyle struct {
	Font
	Color    Color
	HAlign   HAlign
	VAlign   VAlign
	Rotation float64 // degrees, counter-clockwise
}

// Text draws a possibly multi-line string anchored at p.
// Lines are centered on each other when HAlign is AlignCenter.
func Text(c Canvas, p Point, s string, st TextStyle) {
	lines := strings.Split(s, "\n")
	m := c.FontMetrics(st.Font)
	blockH := textHeight(m, len(lines))

	var top float64
	switch st.VAlign {
	case VAlignTop:
		top = 0
	case VAlignBottom:
		top = blockH
	default:
		top = blockH / 2
	}

	sin, cos := math.Sincos(st.Rotation * math.Pi / 180)
	for i, line := range lines {
		w := c.MeasureString(line, st.Font)
		var ox float64
		switch st.HAlign {
		case AlignLeft:
			ox = 0
		case AlignRight:
			ox = -w
		default:
			ox = -w / 2
		}
		oy := top - m.Ascent - float64(i)*m.LineHeight

		at := Point{
			X: p.X + ox*cos - oy*sin,
			Y: p.Y + ox*sin + oy*cos,
		}
		c.DrawString(at, line, st.Font, st.Color, st.Rotation)
	}
}

// MeasureText returns the unrotated width and height of a text block in inches.
func MeasureText(c Canvas, s string, f Font) (w, h float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = math.Max(w, c.MeasureString(line, f))
	}
	return w, textHeight(c.FontMetrics(f), len(lines))
}

func textHeight(m Metrics, lines int) float64 {
	return m.Ascent + m.Descent + float64(lines-1)*m.LineHeight
}

// BoxStyle draws a rounded box behind text.
type BoxStyle struct {
	Fill  Color
	Alpha float64
	Pad   float64 // fraction of the font size
}

// TextBox draws an unrotated text block on top of a rounded box.
func TextBox(c Canvas, p Point, s string, st TextStyle, box BoxStyle) {
	w, h := MeasureText(c, s, st.Font)
	pad := box.Pad * st.Size / 72

	var x0, y0 float64
	switch st.HAlign {
	case AlignLeft:
		x0 = p.X
	case AlignRight:
		x0 = p.X - w
	default:
		x0 = p.X - w/2
	}
	switch st.VAlign {
	case VAlignTop:
		y0 = p.Y - h
	case VAlignBottom:
		y0 = p.Y
	default:
		y0 = p.Y - h/2
	}

	c.Fill(roundedRect(x0-pad, y0-pad, w+2*pad, h+2*pad, pad), box.Fill, box.Alpha)
	st.Rotation = 0
	Text(c, p, s, st)
}
