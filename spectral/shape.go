package spectral

import (
	"errors"
	"fmt"
	"math"
)

var ErrShape = errors.New("invalid spectral shape")

// Shape describes the wavelength domain of a uniformly sampled
// distribution: Start and End are inclusive, in nanometers.
type Shape struct {
	Start, End, Interval float64
}

// ASTME308Shape is the domain over which ASTM E308 defines tristimulus
// computations.
var ASTME308Shape = Shape{360, 780, 1}

func NewShape(start, end, interval float64) Shape {
	return Shape{Start: start, End: end, Interval: interval}
}

// Count returns the number of wavelengths in the shape.
func (s Shape) Count() int {
	if s.Interval <= 0 || s.End < s.Start {
		return 0
	}
	return int(math.Floor((s.End-s.Start)/s.Interval+1e-9)) + 1
}

// Wavelengths returns every wavelength in the shape. Each one is computed
// from Start rather than accumulated so that errors do not build up.
func (s Shape) Wavelengths() []float64 {
	n := s.Count()
	ans := make([]float64, n)
	for i := range n {
		ans[i] = s.Start + float64(i)*s.Interval
	}
	return ans
}

func (s Shape) Contains(nm float64) bool {
	return nm >= s.Start && nm <= s.End
}

func (s Shape) Validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("%w: %s has a non-positive interval", ErrShape, s)
	}
	if s.End <= s.Start {
		return fmt.Errorf("%w: %s ends before it starts", ErrShape, s)
	}
	return nil
}

// WithInterval returns a copy of s with a different interval.
func (s Shape) WithInterval(interval float64) Shape {
	s.Interval = interval
	return s
}

func (s Shape) String() string {
	return fmt.Sprintf("%g-%gnm @ %gnm", s.Start, s.End, s.Interval)
}
