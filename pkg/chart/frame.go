package chart

import "math"

// Frame maps data coordinates onto an axes box placed on the figure.
type Frame struct {
	X, Y, W, H             float64 // axes box in figure inches
	XMin, XMax, YMin, YMax float64
}

// UnitFrame returns a frame whose data range is [0,1] on both axes.
func UnitFrame(x, y, w, h float64) Frame {
	return Frame{X: x, Y: y, W: w, H: h, XMax: 1, YMax: 1}
}

// P converts a data point to figure inches.
func (f Frame) P(x, y float64) Point {
	return Point{
		X: f.X + (x-f.XMin)/(f.XMax-f.XMin)*f.W,
		Y: f.Y + (y-f.YMin)/(f.YMax-f.YMin)*f.H,
	}
}

// SX converts a horizontal data distance to inches.
func (f Frame) SX(d float64) float64 {
	return d / (f.XMax - f.XMin) * f.W
}

// SY converts a vertical data distance to inches.
func (f Frame) SY(d float64) float64 {
	return d / (f.YMax - f.YMin) * f.H
}

// Rect fills a rectangle given in data coordinates.
func (f Frame) Rect(c Canvas, x, y, w, h float64, fill Color, alpha float64) {
	p := f.P(x, y)
	Rect(c, p.X, p.Y, f.SX(w), f.SY(h), fill, alpha)
}

// RectEdge outlines a rectangle given in data coordinates.
func (f Frame) RectEdge(c Canvas, x, y, w, h float64, edge Color, width float64) {
	p := f.P(x, y)
	RectEdge(c, p.X, p.Y, f.SX(w), f.SY(h), edge, width)
}

// Top returns the center of the top edge of the axes box.
func (f Frame) Top() Point {
	return Point{X: f.X + f.W/2, Y: f.Y + f.H}
}

// niceTicks returns evenly spaced tick values covering [0, max] with a round step.
func niceTicks(max float64, target int) []float64 {
	if max <= 0 {
		return []float64{0}
	}
	raw := max / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	var ticks []float64
	for v := 0.0; v <= max+step*1e-9; v += step {
		ticks = append(ticks, v)
	}
	if last := ticks[len(ticks)-1]; last < max {
		ticks = append(ticks, last+step)
	}
	return ticks
}
