package spectral

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

// Weights holds tristimulus weighting factors, one entry per wavelength of
// the reflectance they are meant to be applied to.
type Weights struct {
	X, Y, Z []float64
}

func (w Weights) Len() int { return len(w.Y) }

// Dot computes tristimulus values by weighting values, which must have
// exactly one entry per weight.
func (w Weights) Dot(values []float64) (ans colorconv.Vec3, err error) {
	if len(values) != len(w.Y) {
		return ans, fmt.Errorf("%w: %d weighting factors but %d values", ErrShape, len(w.Y), len(values))
	}
	for i, v := range values {
		ans[0] += w.X[i] * v
		ans[1] += w.Y[i] * v
		ans[2] += w.Z[i] * v
	}
	return
}

// LagrangeCoefficients returns the n Lagrange basis polynomials of the nodes
// 0..n-1 evaluated at r.
func LagrangeCoefficients(r float64, n int) []float64 {
	ans := make([]float64, n)
	for j := range n {
		ans[j] = 1
		for i := range n {
			if i != j {
				ans[j] *= (r - float64(i)) / float64(j-i)
			}
		}
	}
	return ans
}

// linspace mirrors numpy.linspace including the single step case.
func linspace(start, end float64, steps int) []float64 {
	ans := make([]float64, steps)
	if steps == 1 {
		ans[0] = start
		return ans
	}
	delta := (end - start) / float64(steps-1)
	for i := range ans {
		ans[i] = start + float64(i)*delta
	}
	return ans
}

// LagrangeCoefficientsASTME2022 returns the coefficients used to spread
// 1nm data over a measurement interval, per ASTM E2022. Inner intervals use
// four nodes, the first and last intervals three.
func LagrangeCoefficientsASTME2022(interval int, inner bool) [][]float64 {
	if interval < 2 {
		return nil
	}
	degree, offset := 3, 0.0
	if inner {
		degree, offset = 4, 1
	}
	r := linspace(1/float64(interval), 1-1/float64(interval), interval-1)
	ans := make([][]float64, len(r))
	for i, x := range r {
		ans[i] = LagrangeCoefficients(x+offset, degree)
	}
	return ans
}

// WeightingFactorsASTME2022 computes tristimulus weighting factors for
// measurements at shape.Interval from 1nm colour matching functions and
// illuminant, per ASTM E2022. The factors cover the domain of cmfs and are
// normalized so that the ȳ factors sum to 100.
func WeightingFactorsASTME2022(cmfs *CMFS, illuminant *Distribution, shape Shape) (ans Weights, err error) {
	cs := cmfs.Shape()
	if !cmfs.X.uniform || cs.Interval != 1 {
		return ans, fmt.Errorf("%w: weighting factors need 1nm colour matching functions, got %s", ErrShape, cs)
	}
	if illuminant.shape != cs || !illuminant.uniform {
		return ans, fmt.Errorf("%w: illuminant %s does not match colour matching functions %s", ErrShape, illuminant.shape, cs)
	}
	interval := int(math.Round(shape.Interval))
	if interval < 1 || float64(interval) != shape.Interval {
		return ans, fmt.Errorf("%w: weighting factor interval must be a whole number of nanometers, got %g", ErrShape, shape.Interval)
	}
	yx, yy, yz := cmfs.X.Values(), cmfs.Y.Values(), cmfs.Z.Values()
	s := illuminant.Values()
	ybar := [3][]float64{yx, yy, yz}

	c_c := LagrangeCoefficientsASTME2022(interval, false)
	c_b := LagrangeCoefficientsASTME2022(interval, true)

	var w [3][]float64
	for k := range 3 {
		for i := 0; i < len(s); i += interval {
			w[k] = append(w[k], s[i]*ybar[k][i])
		}
	}
	// total wavelength count
	w_c := len(s)
	// interpolated values per measurement interval
	r_c := len(c_b)
	// first interpolated wavelength of the last interval
	w_lif := w_c - (w_c-1)%interval - 1 - r_c
	i_c := len(w[0])
	i_cm := i_c - 1
	if r_c > 0 && i_c < 4 {
		return ans, fmt.Errorf("%w: %s is too narrow for %dnm weighting factors", ErrShape, cs, interval)
	}

	for k := range 3 {
		y, wk := ybar[k], w[k]
		// first interval
		for j := range r_c {
			for n := range 3 {
				wk[n] += c_c[j][n] * s[j+1] * y[j+1]
			}
		}
		// last interval
		for j := range r_c {
			for n := i_cm; n > i_cm-3; n-- {
				wk[n] += c_c[r_c-j-1][i_cm-n] * s[j+w_lif] * y[j+w_lif]
			}
		}
		// intermediate intervals
		for j := 0; j < i_c-3; j++ {
			for n := range r_c {
				w_i := (r_c+1)*(j+1) + 1 + n
				for m := range 4 {
					wk[j+m] += c_b[n][m] * s[w_i] * y[w_i]
				}
			}
		}
		// incomplete trailing interval
		for j := w_c - (w_c-1)%interval; j < w_c; j++ {
			wk[i_cm] += s[j] * y[j]
		}
	}

	sum := 0.0
	for _, v := range w[1] {
		sum += v
	}
	k := 100 / sum
	for c := range 3 {
		for i := range w[c] {
			w[c][i] *= k
		}
	}
	return Weights{X: w[0], Y: w[1], Z: w[2]}, nil
}

// AdjustWeightingFactorsASTME308 trims weighting factors computed over
// shapeR to the narrower shapeT. The factors of the dropped wavelengths are
// added to the first and last kept entries, as specified in ASTM E308.
func AdjustWeightingFactorsASTME308(w Weights, shapeR, shapeT Shape) (Weights, error) {
	start := int(math.Floor((shapeT.Start - shapeR.Start) / shapeR.Interval))
	end := int(math.Ceil((shapeR.End - shapeT.End) / shapeR.Interval))
	n := w.Len()
	if start < 0 || end < 0 || start+end >= n {
		return Weights{}, fmt.Errorf("%w: cannot adjust %s weighting factors to %s", ErrShape, shapeR, shapeT)
	}
	adjust := func(src []float64) []float64 {
		v := append([]float64(nil), src...)
		for i := range start {
			v[start] += v[i]
		}
		for i := range end {
			v[n-end-1] += v[n-i-1]
		}
		return v[start : n-end]
	}
	return Weights{X: adjust(w.X), Y: adjust(w.Y), Z: adjust(w.Z)}, nil
}

// WeightingFactors returns ASTM E2022 weighting factors for a measurement
// with domain shape, adjusted per ASTM E308. The colour matching functions
// and illuminant are aligned to ASTME308Shape first.
func WeightingFactors(cmfs *CMFS, illuminant *Distribution, shape Shape) (Weights, error) {
	cmfs, illuminant, err := alignForASTME308(cmfs, illuminant)
	if err != nil {
		return Weights{}, err
	}
	return weightingFactorsFor(cmfs, illuminant, shape)
}

// ValidateWeightingShape checks that weighting factors can be computed for
// shape from colour matching functions over domain: a whole number interval,
// with start and end inside domain and on its grid at that interval.
func ValidateWeightingShape(shape, domain Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.Interval != math.Trunc(shape.Interval) {
		return fmt.Errorf("%w: weighting factor interval must be a whole number of nanometers, got %g", ErrShape, shape.Interval)
	}
	if shape.Start < domain.Start || shape.End > domain.End {
		return fmt.Errorf("%w: %s is not inside %s", ErrShape, shape, domain)
	}
	for _, nm := range []float64{shape.Start, shape.End} {
		if off := math.Mod(nm-domain.Start, shape.Interval); off != 0 {
			return fmt.Errorf("%w: %gnm is %gnm off the %gnm grid starting at %gnm", ErrShape, nm, off, shape.Interval, domain.Start)
		}
	}
	return nil
}

func weightingFactorsFor(cmfs *CMFS, illuminant *Distribution, shape Shape) (Weights, error) {
	cs := cmfs.Shape()
	if err := ValidateWeightingShape(shape, cs); err != nil {
		return Weights{}, err
	}
	w, err := WeightingFactorsASTME2022(cmfs, illuminant, Shape{cs.Start, cs.End, shape.Interval})
	if err != nil {
		return w, err
	}
	shapeR := Shape{cs.Start, cs.Start + shape.Interval*float64(w.Len()-1), shape.Interval}
	return AdjustWeightingFactorsASTME308(w, shapeR, shape)
}

func alignForASTME308(cmfs *CMFS, illuminant *Distribution) (*CMFS, *Distribution, error) {
	c, err := cmfs.alignIfNeeded(ASTME308Shape)
	if err != nil {
		return nil, nil, err
	}
	i, err := alignIfNeeded(illuminant, ASTME308Shape)
	if err != nil {
		return nil, nil, fmt.Errorf("aligning illuminant: %w", err)
	}
	return c, i, nil
}

// Integrate converts sd to XYZ by direct summation after aligning sd, the
// illuminant and the colour matching functions to shape. The result is
// normalized so that the perfect diffuser has Y = 100.
func Integrate(sd, illuminant *Distribution, cmfs *CMFS, shape Shape) (ans colorconv.Vec3, err error) {
	c, err := cmfs.alignIfNeeded(shape)
	if err != nil {
		return
	}
	ill, err := alignIfNeeded(illuminant, shape)
	if err != nil {
		return ans, fmt.Errorf("aligning illuminant: %w", err)
	}
	r, err := alignIfNeeded(sd, shape)
	if err != nil {
		return ans, fmt.Errorf("aligning %s: %w", sd.Name, err)
	}
	dw := shape.Interval
	s, rv := ill.Values(), r.Values()
	xb, yb, zb := c.X.Values(), c.Y.Values(), c.Z.Values()
	norm := 0.0
	for i := range s {
		norm += s[i] * yb[i] * dw
	}
	k := 100 / norm
	for i := range s {
		ans[0] += rv[i] * s[i] * xb[i] * dw
		ans[1] += rv[i] * s[i] * yb[i] * dw
		ans[2] += rv[i] * s[i] * zb[i] * dw
	}
	return ans.Scale(k), nil
}

// ToXYZ converts a reflectance (or transmittance) distribution to XYZ under
// illuminant, following ASTM E308. The method depends on the interval of sd:
// 1nm and 5nm data is integrated directly, 10nm and 20nm data is weighted
// with ASTM E2022 factors, anything else is interpolated to 1nm first.
func ToXYZ(sd, illuminant *Distribution, cmfs *CMFS) (colorconv.Vec3, error) {
	cmfs, illuminant, err := alignForASTME308(cmfs, illuminant)
	if err != nil {
		return colorconv.Vec3{}, err
	}
	if !sd.uniform {
		s := sd.shape
		sd, err = sd.Align(Shape{s.Start, s.End, 1})
		if err != nil {
			return colorconv.Vec3{}, err
		}
		return Integrate(sd, illuminant, cmfs, sd.shape)
	}
	switch sd.shape.Interval {
	case 1:
		return Integrate(sd, illuminant, cmfs, ASTME308Shape)
	case 5:
		return Integrate(sd, illuminant, cmfs, ASTME308Shape.WithInterval(5))
	case 10, 20:
		return toXYZWeighted(sd, illuminant, cmfs)
	}
	slog.Debug("Interval is not 1, 5, 10 or 20nm, interpolating", "name", sd.Name, "interval", sd.shape.Interval)
	return Integrate(sd, illuminant, cmfs, ASTME308Shape)
}

func toXYZWeighted(sd, illuminant *Distribution, cmfs *CMFS) (colorconv.Vec3, error) {
	t, err := sd.Trim(cmfs.Shape())
	if err != nil {
		return colorconv.Vec3{}, err
	}
	if offset := math.Mod(t.shape.Start-cmfs.Shape().Start, t.shape.Interval); math.Abs(offset) > 1e-9 {
		slog.Debug("Measurement wavelengths are not on the weighting factor grid, interpolating", "name", sd.Name, "shape", t.shape)
		return Integrate(sd, illuminant, cmfs, ASTME308Shape)
	}
	w, err := weightingFactorsFor(cmfs, illuminant, t.shape)
	if err != nil {
		return colorconv.Vec3{}, fmt.Errorf("weighting factors for %s: %w", sd.Name, err)
	}
	return w.Dot(t.Values())
}
