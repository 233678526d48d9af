package chart

import "math"

// Rect fills an axis-aligned rectangle given its bottom-left corner.
func Rect(c Canvas, x, y, w, h float64, fill Color, alpha float64) {
	c.Fill(rectPoints(x, y, w, h), fill, alpha)
}

// RectEdge outlines an axis-aligned rectangle.
func RectEdge(c Canvas, x, y, w, h float64, edge Color, width float64) {
	pts := rectPoints(x, y, w, h)
	c.Stroke(append(pts, pts[0]), edge, width, 1)
}

func rectPoints(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// Circle fills a circle.
func Circle(c Canvas, center Point, r float64, fill Color, alpha float64) {
	c.Fill(arc(center, r, 0, 2*math.Pi), fill, alpha)
}

// Wedge fills a pie slice between two angles in radians, counter-clockwise from a0.
func Wedge(c Canvas, center Point, r, a0, a1 float64, fill Color, alpha float64) {
	pts := append([]Point{center}, arc(center, r, a0, a1)...)
	c.Fill(pts, fill, alpha)
}

// arc samples points along a circular arc.
func arc(center Point, r, a0, a1 float64) []Point {
	n := int(math.Ceil(math.Abs(a1-a0) / (2 * math.Pi) * 96))
	if n < 2 {
		n = 2
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, Point{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)})
	}
	return pts
}

// Line draws a straight segment.
func Line(c Canvas, from, to Point, col Color, width, alpha float64) {
	c.Stroke([]Point{from, to}, col, width, alpha)
}

// DashedLine draws a segment as dashes of the given lengths in inches.
func DashedLine(c Canvas, from, to Point, col Color, width, alpha, dash, gap float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for s := 0.0; s < length; s += dash + gap {
		e := math.Min(s+dash, length)
		Line(c,
			Point{from.X + ux*s, from.Y + uy*s},
			Point{from.X + ux*e, from.Y + uy*e},
			col, width, alpha)
	}
}

// Arrow draws a segment ending in a filled head at to.
func Arrow(c Canvas, from, to Point, col Color, width float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	head := math.Min(width*0.08, length/2)
	half := head * 0.5

	base := Point{to.X - ux*head, to.Y - uy*head}
	Line(c, from, base, col, width, 1)
	c.Fill([]Point{
		to,
		{base.X - uy*half, base.Y + ux*half},
		{base.X + uy*half, base.Y - ux*half},
	}, col, 1)
}

// roundedRect returns the outline of a rectangle with rounded corners.
func roundedRect(x, y, w, h, r float64) []Point {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return rectPoints(x, y, w, h)
	}
	var pts []Point
	pts = append(pts, arc(Point{x + w - r, y + r}, r, -math.Pi/2, 0)...)
	pts = append(pts, arc(Point{x + w - r, y + h - r}, r, 0, math.Pi/2)...)
	pts = append(pts, arc(Point{x + r, y + h - r}, r, math.Pi/2, math.Pi)...)
	pts = append(pts, arc(Point{x + r, y + r}, r, math.Pi, 3*math.Pi/2)...)
	return pts
}
