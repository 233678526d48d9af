package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var loadFonts = sync.OnceValues(func() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
})

// RasterCanvas draws into an RGBA image and encodes it as PNG.
type RasterCanvas struct {
	img   *image.RGBA
	w, h  float64
	scale float64 // pixels per inch
	fonts *fontSet
	faces map[Font]font.Face
	z     *vector.Rasterizer
}

var _ Canvas = (*RasterCanvas)(nil)

// NewRasterCanvas creates a white canvas of w by h inches at scale pixels per inch.
func NewRasterCanvas(w, h, scale float64) (*RasterCanvas, error) {
	if w <= 0 || h <= 0 || scale <= 0 {
		return nil, fmt.Errorf("invalid canvas size %gx%g at scale %g", w, h, scale)
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, int(math.Round(w*scale)), int(math.Round(h*scale))))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &RasterCanvas{
		img:   img,
		w:     w,
		h:     h,
		scale: scale,
		fonts: fonts,
		faces: make(map[Font]font.Face),
		z:     vector.NewRasterizer(0, 0),
	}, nil
}

func (c *RasterCanvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *RasterCanvas) px(p Point) (float64, float64) {
	return p.X * c.scale, (c.h - p.Y) * c.scale
}

func (c *RasterCanvas) Fill(pts []Point, col Color, alpha float64) {
	if len(pts) < 3 {
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = c.px(p)
	}
	c.fillPixels(xs, ys, col, alpha)
}

// fillPixels rasterizes a polygon given in pixel coordinates, restricted to its bounding box.
func (c *RasterCanvas) fillPixels(xs, ys []float64, col Color, alpha float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range xs {
		minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
		minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	c.z.MoveTo(float32(xs[0]-ox), float32(ys[0]-oy))
	for i := 1; i < len(xs); i++ {
		c.z.LineTo(float32(xs[i]-ox), float32(ys[i]-oy))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, r, image.NewUniform(nrgba(col, alpha)), image.Point{})
}

func (c *RasterCanvas) Stroke(pts []Point, col Color, width, alpha float64) {
	half := math.Max(width/72*c.scale, 1) / 2
	for i := 1; i < len(pts); i++ {
		x0, y0 := c.px(pts[i-1])
		x1, y1 := c.px(pts[i])
		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		// Extend each segment by half the width so joints overlap.
		ux, uy := dx/l*half, dy/l*half
		nx, ny := -uy, ux
		c.fillPixels(
			[]float64{x0 - ux + nx, x1 + ux + nx, x1 + ux - nx, x0 - ux - nx},
			[]float64{y0 - uy + ny, y1 + uy + ny, y1 + uy - ny, y0 - uy - ny},
			col, alpha,
		)
	}
}

func (c *RasterCanvas) face(f Font) font.Face {
	if face, ok := c.faces[f]; ok {
		return face
	}
	src := c.fonts.regular
	if f.Bold {
		src = c.fonts.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     c.scale,
		Hinting: font.HintingNone,
	})
	if err != nil {
		// NewFace only fails on invalid options, which Font sizes never produce.
		panic(fmt.Sprintf("chart: cannot create font face: %v", err))
	}
	c.faces[f] = face
	return face
}

func (c *RasterCanvas) DrawString(p Point, s string, f Font, col Color, angle float64) {
	face := c.face(f)
	x, y := c.px(p)
	src := image.NewUniform(nrgba(col, 1))

	if angle == 0 {
		d := font.Drawer{
			Dst:  c.img,
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
		}
		d.DrawString(s)
		return
	}

	// Rotated text is drawn onto a scratch image and transformed into place.
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	w := font.MeasureString(face, s).Ceil() + 1
	h := ascent + m.Descent.Ceil() + 1
	if w <= 1 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  scratch,
		Src:  src,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	sin, cos := math.Sincos(angle * math.Pi / 180)
	a := float64(ascent)
	s2d := f64.Aff3{
		cos, sin, x - sin*a,
		-sin, cos, y - cos*a,
	}
	draw.BiLinear.Transform(c.img, s2d, scratch, scratch.Bounds(), draw.Over, nil)
}

func (c *RasterCanvas) MeasureString(s string, f Font) float64 {
	adv := font.MeasureString(c.face(f), s)
	return float64(adv) / 64 / c.scale
}

func (c *RasterCanvas) FontMetrics(f Font) Metrics {
	m := c.face(f).Metrics()
	return Metrics{
		Ascent:     float64(m.Ascent) / 64 / c.scale,
		Descent:    float64(m.Descent) / 64 / c.scale,
		LineHeight: float64(m.Height) / 64 / c.scale,
	}
}

func (c *RasterCanvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

func nrgba(c Color, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
