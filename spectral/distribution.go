// Package spectral implements spectral distributions sampled at discrete
// wavelengths and their conversion to CIE XYZ tristimulus values following
// ASTM E308 and ASTM E2022.
package spectral

import (
	"fmt"
	"math"
	"strings"
)

// Sample is a single (wavelength, value) pair. Wavelengths are in
// nanometers.
type Sample struct {
	Nm, V float64
}

// Distribution is an immutable, ordered list of samples. All operations
// return new distributions.
type Distribution struct {
	Name    string
	samples []Sample
	shape   Shape
	uniform bool
}

// New creates a distribution from samples, which must be in increasing
// wavelength order and contain at least two entries.
func New(name string, samples []Sample) (*Distribution, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: a distribution needs at least 2 samples, got %d", ErrShape, len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Nm <= samples[i-1].Nm {
			return nil, fmt.Errorf("%w: wavelengths are not strictly increasing at %gnm", ErrShape, samples[i].Nm)
		}
	}
	ans := &Distribution{Name: name, samples: samples}
	ans.shape, ans.uniform = calculateShape(samples)
	return ans, nil
}

// FromValues creates a distribution with one value per wavelength of shape.
func FromValues(name string, shape Shape, values []float64) (*Distribution, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	wl := shape.Wavelengths()
	if len(wl) != len(values) {
		return nil, fmt.Errorf("%w: %s has %d samples but %d values were given", ErrShape, shape, len(wl), len(values))
	}
	samples := make([]Sample, len(wl))
	for i, nm := range wl {
		samples[i] = Sample{nm, values[i]}
	}
	return New(name, samples)
}

// Constant creates a distribution over shape with every value set to v.
func Constant(name string, shape Shape, v float64) (*Distribution, error) {
	values := make([]float64, shape.Count())
	for i := range values {
		values[i] = v
	}
	return FromValues(name, shape, values)
}

// MustFromValues is FromValues for static tables known to be well formed.
func MustFromValues(name string, shape Shape, values []float64) *Distribution {
	ans, err := FromValues(name, shape, values)
	if err != nil {
		panic(err)
	}
	return ans
}

func calculateShape(samples []Sample) (Shape, bool) {
	interval := samples[1].Nm - samples[0].Nm
	uniform := true
	for i := 2; i < len(samples); i++ {
		if math.Abs((samples[i].Nm-samples[i-1].Nm)-interval) > 1e-11 {
			uniform = false
			interval = min(interval, samples[i].Nm-samples[i-1].Nm)
		}
	}
	return Shape{samples[0].Nm, samples[len(samples)-1].Nm, interval}, uniform
}

// Shape returns the domain of the distribution. For distributions with a
// varying interval, Interval is the smallest spacing.
func (d *Distribution) Shape() Shape { return d.shape }

// Uniform reports whether all samples are equally spaced.
func (d *Distribution) Uniform() bool { return d.uniform }

func (d *Distribution) Len() int          { return len(d.samples) }
func (d *Distribution) Samples() []Sample { return append([]Sample(nil), d.samples...) }
func (d *Distribution) First() Sample     { return d.samples[0] }
func (d *Distribution) Last() Sample      { return d.samples[len(d.samples)-1] }

func (d *Distribution) Values() []float64 {
	ans := make([]float64, len(d.samples))
	for i, s := range d.samples {
		ans[i] = s.V
	}
	return ans
}

func (d *Distribution) Wavelengths() []float64 {
	ans := make([]float64, len(d.samples))
	for i, s := range d.samples {
		ans[i] = s.Nm
	}
	return ans
}

// Scale returns a copy with every value multiplied by k.
func (d *Distribution) Scale(k float64) *Distribution {
	samples := make([]Sample, len(d.samples))
	for i, s := range d.samples {
		samples[i] = Sample{s.Nm, s.V * k}
	}
	return &Distribution{Name: d.Name, samples: samples, shape: d.shape, uniform: d.uniform}
}

// ValueAt linearly interpolates the value at nm, clamping to the end
// samples outside the domain.
func (d *Distribution) ValueAt(nm float64) float64 {
	return linearAt(d.samples, nm)
}

// Interpolate returns a distribution over the intersection of d's domain
// and shape, sampled at shape's interval. Uniform distributions with at
// least six samples use Sprague interpolation, others are interpolated
// linearly.
func (d *Distribution) Interpolate(shape Shape) (*Distribution, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	shape.Start = max(shape.Start, d.shape.Start)
	shape.End = min(shape.End, d.shape.End)
	wl := shape.Wavelengths()
	if len(wl) < 2 {
		return nil, fmt.Errorf("%w: %s does not overlap %s in at least 2 samples", ErrShape, shape, d.shape)
	}
	eval := func(nm float64) float64 { return linearAt(d.samples, nm) }
	if d.uniform && len(d.samples) >= 6 {
		eval = newSprague(d.samples).evaluate
	}
	samples := make([]Sample, len(wl))
	for i, nm := range wl {
		samples[i] = Sample{nm, eval(nm)}
	}
	return &Distribution{Name: d.Name, samples: samples, shape: Shape{wl[0], wl[len(wl)-1], shape.Interval}, uniform: true}, nil
}

// Extrapolate extends d to cover shape by repeating its first and last
// values. New samples are spaced at d's own interval, or at shape's when d
// does not have a uniform interval.
func (d *Distribution) Extrapolate(shape Shape) (*Distribution, error) {
	interval := d.shape.Interval
	if !d.uniform {
		if shape.Interval <= 0 {
			return nil, fmt.Errorf("%w: cannot extrapolate a varying distribution with %s", ErrShape, shape)
		}
		interval = shape.Interval
	}
	first, last := d.First(), d.Last()
	var samples []Sample
	for nm := min(first.Nm, shape.Start); nm < first.Nm; nm += interval {
		samples = append(samples, Sample{nm, first.V})
	}
	samples = append(samples, d.samples...)
	for k := 1; ; k++ {
		nm := last.Nm + float64(k)*interval
		if nm > max(last.Nm, shape.End)+1e-9 {
			break
		}
		samples = append(samples, Sample{nm, last.V})
	}
	ans := &Distribution{Name: d.Name, samples: samples}
	ans.shape, ans.uniform = calculateShape(samples)
	return ans, nil
}

// Align interpolates d to shape and then extrapolates it so that it covers
// all of shape.
func (d *Distribution) Align(shape Shape) (*Distribution, error) {
	i, err := d.Interpolate(shape)
	if err != nil {
		return nil, err
	}
	return i.Extrapolate(shape)
}

// Trim drops the samples outside shape, without resampling.
func (d *Distribution) Trim(shape Shape) (*Distribution, error) {
	var samples []Sample
	for _, s := range d.samples {
		if shape.Contains(s.Nm) {
			samples = append(samples, s)
		}
	}
	ans, err := New(d.Name, samples)
	if err != nil {
		return nil, fmt.Errorf("trimming %s to %s: %w", d.shape, shape, err)
	}
	return ans, nil
}

func (d *Distribution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Distribution{%q %s [", d.Name, d.shape)
	for i, s := range d.samples {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g: %g", s.Nm, s.V)
	}
	b.WriteString("]}")
	return b.String()
}

func linearAt(samples []Sample, nm float64) float64 {
	first, last := samples[0], samples[len(samples)-1]
	switch {
	case nm <= first.Nm:
		return first.V
	case nm >= last.Nm:
		return last.V
	}
	// first index with a wavelength greater than nm
	lo, hi := 0, len(samples)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if samples[mid].Nm > nm {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	s0, s1 := samples[lo-1], samples[lo]
	t := (nm - s0.Nm) / (s1.Nm - s0.Nm)
	return s0.V + t*(s1.V-s0.V)
}
