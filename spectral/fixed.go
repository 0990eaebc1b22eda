package spectral

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Fixed is a compact single precision distribution over a uniform shape, as
// used by renderers that evaluate many spectra per pixel and precompute
// weighting factors once.
type Fixed struct {
	Shape  Shape
	Values []float32
}

func NewFixed(shape Shape, values []float32) (*Fixed, error) {
	if n := shape.Count(); n < 2 || n != len(values) {
		return nil, fmt.Errorf("%w: %s has %d samples but %d values were given", ErrShape, shape, n, len(values))
	}
	return &Fixed{Shape: shape, Values: values}, nil
}

// FixedFrom converts d to single precision, resampled onto shape.
func FixedFrom(d *Distribution, shape Shape) (*Fixed, error) {
	a, err := d.Align(shape)
	if err != nil {
		return nil, err
	}
	v := a.Values()
	ans := make([]float32, len(v))
	for i, x := range v {
		ans[i] = float32(x)
	}
	return NewFixed(shape, ans)
}

// ValueAt linearly interpolates the value at nm, clamping to the end
// samples outside the domain.
func (f *Fixed) ValueAt(nm float32) float32 {
	n := len(f.Values)
	start, interval := float32(f.Shape.Start), float32(f.Shape.Interval)
	t := (nm - start) / interval
	i0 := int(math32.Floor(t))
	if i0 < 0 {
		return f.Values[0]
	}
	if i0 >= n-1 {
		return f.Values[n-1]
	}
	dt := math32.Max(0, math32.Min(1, t-float32(i0)))
	return f.Values[i0] + dt*(f.Values[i0+1]-f.Values[i0])
}

// Dot returns the tristimulus values of f under precomputed weighting
// factors covering the same shape.
func (f *Fixed) Dot(w Weights) (ans [3]float32, err error) {
	if w.Len() != len(f.Values) {
		return ans, fmt.Errorf("%w: %d weighting factors but %d values", ErrShape, w.Len(), len(f.Values))
	}
	for i, v := range f.Values {
		ans[0] += float32(w.X[i]) * v
		ans[1] += float32(w.Y[i]) * v
		ans[2] += float32(w.Z[i]) * v
	}
	return
}

// Finite reports whether every value is finite.
func (f *Fixed) Finite() bool {
	for _, v := range f.Values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
