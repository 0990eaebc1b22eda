// Package preview renders colour charts for visual inspection of generated
// data: as a PNG, as an animated white balance sweep and as a strip of
// true-colour blocks in a terminal.
package preview

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

// Measurement is the XYZ of one swatch, scaled so that the perfect diffuser
// has Y = 1.
type Measurement struct {
	ID  string
	XYZ colorconv.Vec3
}

type Swatch struct {
	ID    string
	Color RGB8
}

// ChartSwatches converts measurements made relative to white into gamut
// mapped display colours.
func ChartSwatches(m []Measurement, white colorconv.Vec3) ([]Swatch, error) {
	ans := make([]Swatch, len(m))
	for i, x := range m {
		srgb, err := colorconv.DisplaySRGB(x.XYZ, white)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", x.ID, err)
		}
		ans[i] = Swatch{ID: x.ID, Color: RGB8FromDisplay(srgb)}
	}
	return ans, nil
}

type ChartOptions struct {
	Columns int
	// Cell is the side of a swatch and Gap the border around it, in pixels
	// before scaling.
	Cell, Gap int
	Labels    bool
	// Scale is an integer magnification applied last.
	Scale int
}

// DefaultChartOptions lays out the classic 6x4 chart.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Columns: 6, Cell: 64, Gap: 8, Labels: true, Scale: 1}
}

var chartBackground = RGB8{0x20, 0x20, 0x20}

func label(dst *NRGB, text string, cell image.Rectangle, bg RGB8) {
	face := basicfont.Face7x13
	fg := image.Black
	if bg.Luma() < 0.5 {
		fg = image.White
	}
	d := &font.Drawer{Dst: dst, Src: fg, Face: face}
	maxWidth := fixed.I(cell.Dx() - 4)
	for len(text) > 0 && d.MeasureString(text) > maxWidth {
		text = text[:len(text)-1]
	}
	d.Dot = fixed.P(cell.Min.X+2, cell.Max.Y-face.Descent-2)
	d.DrawString(text)
}

// RenderChart draws swatches in rows of opts.Columns.
func RenderChart(swatches []Swatch, opts ChartOptions) *NRGB {
	cols := max(1, opts.Columns)
	rows := max(1, (len(swatches)+cols-1)/cols)
	pitch := opts.Cell + opts.Gap
	img := NewNRGB(image.Rect(0, 0, cols*pitch+opts.Gap, rows*pitch+opts.Gap))
	img.Fill(img.Rect, chartBackground)
	for i, s := range swatches {
		x, y := opts.Gap+(i%cols)*pitch, opts.Gap+(i/cols)*pitch
		cell := image.Rect(x, y, x+opts.Cell, y+opts.Cell)
		img.Fill(cell, s.Color)
		if opts.Labels {
			label(img, s.ID, cell, s.Color)
		}
	}
	if opts.Scale <= 1 {
		return img
	}
	b := img.Bounds()
	scaled := NewNRGB(image.Rect(0, 0, b.Dx()*opts.Scale, b.Dy()*opts.Scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Rect, img, b, draw.Src, nil)
	return scaled
}
