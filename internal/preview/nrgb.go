package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

var _ = fmt.Print

// RGB8 is an opaque 8-bit sRGB colour.
type RGB8 struct {
	R, G, B uint8
}

func quantize(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

// RGB8FromDisplay quantizes encoded sRGB values in [0, 1], clipping anything
// outside that range.
func RGB8FromDisplay(v colorconv.Vec3) RGB8 {
	return RGB8{quantize(v[0]), quantize(v[1]), quantize(v[2])}
}

// Hex returns the colour as #RRGGBB.
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB8) String() string {
	return fmt.Sprintf("RGB8{%02X %02X %02X}", c.R, c.G, c.B)
}

// Luma is the Rec. 601 weighted brightness of the encoded values, in [0, 1].
func (c RGB8) Luma() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func (c RGB8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

func rgb8Model(c color.Color) color.Color {
	if _, ok := c.(RGB8); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
	case 0:
		return RGB8{}
	default:
		// un-premultiply
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
	}
	return RGB8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

var RGB8Model color.Model = color.ModelFunc(rgb8Model)

// NRGB is an opaque in-memory image storing three bytes per pixel, which is
// all a colour chart needs.
type NRGB struct {
	// Pix holds the pixels in R, G, B order. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewNRGB(r image.Rectangle) *NRGB {
	return &NRGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (p *NRGB) ColorModel() color.Model { return RGB8Model }
func (p *NRGB) Bounds() image.Rectangle { return p.Rect }
func (p *NRGB) Opaque() bool            { return true }

func (p *NRGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *NRGB) At(x, y int) color.Color { return p.RGB8At(x, y) }

func (p *NRGB) RGB8At(x, y int) RGB8 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return RGB8{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return RGB8{s[0], s[1], s[2]}
}

func (p *NRGB) Set(x, y int, c color.Color) {
	if image.Pt(x, y).In(p.Rect) {
		p.SetRGB8(x, y, RGB8Model.Convert(c).(RGB8))
	}
}

func (p *NRGB) SetRGB8(x, y int, c RGB8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.R, c.G, c.B
}

// Fill paints every pixel of r that lies inside the image with c.
func (p *NRGB) Fill(r image.Rectangle, c RGB8) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	row := p.PixOffset(r.Min.X, r.Min.Y)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		s := p.Pix[row : row+3*r.Dx()]
		for i := 0; i < len(s); i += 3 {
			s[i], s[i+1], s[i+2] = c.R, c.G, c.B
		}
		row += p.Stride
	}
}

// SubImage returns the portion of p visible through r, sharing pixels with
// p.
func (p *NRGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// an empty intersection need not lie inside p.Rect
	if r.Empty() {
		return &NRGB{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &NRGB{Pix: p.Pix[i:], Stride: p.Stride, Rect: r}
}
