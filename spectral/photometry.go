package spectral

import "fmt"

// MaxLuminousEfficacy is Km, in lm/W, for photopic vision.
const MaxLuminousEfficacy = 683.0

// Luminance returns the luminance in cd/m² (nits) of an emission spectrum
// given in W/(sr·m²·nm), by a straight summation against ȳ averaged over
// the samples of sd.
func Luminance(sd *Distribution, cmfs *CMFS) (float64, error) {
	y, err := cmfs.Y.Align(sd.Shape())
	if err != nil {
		return 0, fmt.Errorf("aligning ȳ to %s: %w", sd.Shape(), err)
	}
	s, yv := sd.Values(), y.Values()
	if len(s) != len(yv) {
		return 0, fmt.Errorf("%w: %s could not be aligned to %s", ErrShape, cmfs.Name, sd.Shape())
	}
	sum := 0.0
	for i := range s {
		sum += s[i] * yv[i]
	}
	return sum * MaxLuminousEfficacy / float64(len(s)), nil
}
