package chart

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Helvetica vertical metrics, in font units per em.
const (
	helveticaAscent  = 0.718
	helveticaDescent = 0.207
	lineSpacing      = 1.2
)

// PDFCanvas draws onto a single-page PDF sized to the figure.
type PDFCanvas struct {
	pdf  *fpdf.Fpdf
	w, h float64
	tr   func(string) string
}

var _ Canvas = (*PDFCanvas)(nil)

// NewPDFCanvas creates a blank page of w by h inches.
func NewPDFCanvas(w, h float64) *PDFCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	return &PDFCanvas{
		pdf: pdf,
		w:   w,
		h:   h,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *PDFCanvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *PDFCanvas) Fill(pts []Point, col Color, alpha float64) {
	if len(pts) < 3 {
		return
	}
	poly := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		poly[i] = fpdf.PointType{X: p.X, Y: c.h - p.Y}
	}
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.pdf.SetAlpha(alpha, "Normal")
	c.pdf.Polygon(poly, "F")
	c.pdf.SetAlpha(1, "Normal")
}

func (c *PDFCanvas) Stroke(pts []Point, col Color, width, alpha float64) {
	if len(pts) < 2 {
		return
	}
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
	c.pdf.SetLineWidth(width / 72)
	c.pdf.SetAlpha(alpha, "Normal")
	c.pdf.MoveTo(pts[0].X, c.h-pts[0].Y)
	for _, p := range pts[1:] {
		c.pdf.LineTo(p.X, c.h-p.Y)
	}
	c.pdf.DrawPath("D")
	c.pdf.SetAlpha(1, "Normal")
}

func (c *PDFCanvas) setFont(f Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	c.pdf.SetFont("Helvetica", style, f.Size)
}

func (c *PDFCanvas) DrawString(p Point, s string, f Font, col Color, angle float64) {
	c.setFont(f)
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
	x, y := p.X, c.h-p.Y
	if angle != 0 {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(angle, x, y)
		defer c.pdf.TransformEnd()
	}
	c.pdf.Text(x, y, c.tr(s))
}

func (c *PDFCanvas) MeasureString(s string, f Font) float64 {
	c.setFont(f)
	return c.pdf.GetStringWidth(c.tr(s))
}

func (c *PDFCanvas) FontMetrics(f Font) Metrics {
	em := f.Size / 72
	return Metrics{
		Ascent:     helveticaAscent * em,
		Descent:    helveticaDescent * em,
		LineHeight: lineSpacing * em,
	}
}

func (c *PDFCanvas) Encode(w io.Writer) error {
	return c.pdf.Output(w)
}
