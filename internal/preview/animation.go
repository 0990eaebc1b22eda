package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/kettek/apng"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

type Frame struct {
	Image image.Image
	Delay time.Duration
	// CCT is the correlated colour temperature the frame is balanced for.
	CCT float64
}

type Animation struct {
	Frames    []Frame
	LoopCount uint // 0 means loop forever
}

// DefaultSweep covers the daylight locus from warm to cool.
var DefaultSweep = []float64{4000, 4500, 5000, 5500, 6000, 6504, 7000, 8000, 9000, 10000}

// WhiteBalanceSweep renders one chart per correlated colour temperature. The
// measurements, made relative to source, are adapted with cat to daylight of
// that temperature and shown on a display balanced for source, so each frame
// shows the cast of a wrong white balance.
func WhiteBalanceSweep(m []Measurement, source colorconv.Vec2, ccts []float64, cat string, delay time.Duration, opts ChartOptions) (*Animation, error) {
	white := colorconv.XYToXYZ(source)
	ans := &Animation{Frames: make([]Frame, 0, len(ccts))}
	adapted := make([]Measurement, len(m))
	for _, cct := range ccts {
		xy, err := colorconv.DaylightLocus(cct)
		if err != nil {
			return nil, err
		}
		cam, err := colorconv.AdaptationMatrix(white, colorconv.XYToXYZ(xy), cat)
		if err != nil {
			return nil, err
		}
		for i, x := range m {
			adapted[i] = Measurement{ID: x.ID, XYZ: cam.MulVec(x.XYZ)}
		}
		swatches, err := ChartSwatches(adapted, white)
		if err != nil {
			return nil, fmt.Errorf("%gK: %w", cct, err)
		}
		ans.Frames = append(ans.Frames, Frame{Image: RenderChart(swatches, opts), Delay: delay, CCT: cct})
	}
	return ans, nil
}

// delayFraction approximates d in seconds by the closest continued fraction
// convergent whose terms fit in 16 bits, as APNG frame delays require.
func delayFraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}
	val := d.Seconds()
	num, den = 0, 1
	bestError := val
	h0, h1, k0, k1 := int64(0), int64(1), int64(1), int64(0)
	f := val
	for range 100 {
		a := int64(f)
		h2, k2 := a*h1+h0, a*k1+k0
		if h2 > math.MaxUint16 || k2 > math.MaxUint16 {
			break
		}
		if e := math.Abs(val - float64(h2)/float64(k2)); e < bestError {
			bestError, num, den = e, uint16(h2), uint16(k2)
		}
		if f == float64(a) {
			break
		}
		f = 1 / (f - float64(a))
		h0, h1, k0, k1 = h1, h2, k1, k2
	}
	return
}

func (a *Animation) asAPNG() (ans apng.APNG) {
	ans.LoopCount = a.LoopCount
	for _, f := range a.Frames {
		// every frame is a complete chart of the same size
		d := apng.Frame{Image: f.Image, DisposeOp: apng.DISPOSE_OP_NONE, BlendOp: apng.BLEND_OP_SOURCE}
		d.DelayNumerator, d.DelayDenominator = delayFraction(f.Delay)
		ans.Frames = append(ans.Frames, d)
	}
	return
}

// EncodeAPNG writes the animation as an animated PNG, or as a plain PNG if
// it has a single frame.
func (a *Animation) EncodeAPNG(w io.Writer) error {
	switch len(a.Frames) {
	case 0:
		return fmt.Errorf("cannot encode an animation with no frames")
	case 1:
		return png.Encode(w, a.Frames[0].Image)
	}
	return apng.Encode(w, a.asAPNG())
}
