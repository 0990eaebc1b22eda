// Package colorconv holds the small amount of linear algebra and
// colorimetry that the rest of this module is built on: 3x3 matrices,
// chromaticity conversions, CIELAB, colour differences and Von Kries style
// chromatic adaptation.
//
// It also provides a display path converting colors into in-gamut sRGB. That
// path works in CIELAB relative to D50, adapts to D65 with Bradford fused
// into a single matrix, and maps out-of-gamut colors by scaling chroma (a,b)
// towards zero until the result is inside the [0,1] cube.
package colorconv

import (
	"fmt"
	"math"
)

// Reference whites normalized so Y = 1.0. WhiteD50 uses the Z value from the
// ICC specification rather than the CIE one.
var (
	WhiteD50 = Vec3{0.96422, 1.00000, 0.82491}
	WhiteD65 = Vec3{0.95047, 1.00000, 1.08883}
)

// sRGB (linear) transform matrix from CIE XYZ (D65)
var srgbFromXYZ = Mat3{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// combinedXYZD50ToLinearSRGB = srgbFromXYZ * (Bradford D50 -> D65)
var combinedXYZD50ToLinearSRGB Mat3

func init() {
	adapt, err := AdaptationMatrix(WhiteD50, WhiteD65, "Bradford")
	if err != nil {
		panic(fmt.Sprintf("failed to build the D50 to D65 adaptation matrix: %s", err))
	}
	combinedXYZD50ToLinearSRGB = srgbFromXYZ.Mul(adapt)
}

// LabToSRGB converts a Lab color (D50) into sRGB (D65) with gamut mapping.
// Returned components are in [0,1].
func LabToSRGB(lab Vec3) Vec3 {
	rgb := labToSRGBNoGamutMap(lab)
	if inGamut(rgb) {
		return rgb
	}
	return gamutMapChromaScale(lab)
}

// LabToLinearRGB converts Lab (D50) to linear sRGB (D65).
func LabToLinearRGB(lab Vec3) Vec3 {
	return combinedXYZD50ToLinearSRGB.MulVec(LabToXYZ(lab, WhiteD50))
}

// XYZToLinearRGB_D50 converts XYZ relative to D50 to linear sRGB (D65). The
// output may be outside the [0,1] range.
func XYZToLinearRGB_D50(xyz Vec3) Vec3 {
	return combinedXYZD50ToLinearSRGB.MulVec(xyz)
}

// XYZToSRGB_D50 converts XYZ relative to D50 to clamped, companded sRGB.
func XYZToSRGB_D50(xyz Vec3) (ans Vec3) {
	ans = XYZToSRGB_D50NoClamp(xyz)
	for i := range ans {
		ans[i] = clamp01(ans[i])
	}
	return
}

func XYZToSRGB_D50NoClamp(xyz Vec3) (ans Vec3) {
	l := XYZToLinearRGB_D50(xyz)
	for i := range l {
		ans[i] = linearToSRGBComp(l[i])
	}
	return
}

// XYZToSRGB_D50GamutMap projects XYZ (D50) into CIELAB and converts it with
// LabToSRGB.
func XYZToSRGB_D50GamutMap(xyz Vec3) Vec3 {
	return LabToSRGB(XYZToLab(xyz, WhiteD50))
}

// DisplaySRGB converts XYZ relative to an arbitrary white into gamut mapped
// sRGB suitable for display. The white is mapped onto D50 with Bradford
// first. Both must have Y normalized to 1.
func DisplaySRGB(xyz, white Vec3) (Vec3, error) {
	m, err := AdaptationMatrix(white, WhiteD50, "Bradford")
	if err != nil {
		return Vec3{}, err
	}
	return XYZToSRGB_D50GamutMap(m.MulVec(xyz)), nil
}

func labToSRGBNoGamutMap(lab Vec3) (ans Vec3) {
	l := LabToLinearRGB(lab)
	for i := range l {
		ans[i] = linearToSRGBComp(l[i])
	}
	return
}

// linearToSRGBComp applies sRGB companding to a linear component.
func linearToSRGBComp(c float64) float64 {
	// clip small negative rounding noise
	if c <= 0 {
		return 0.0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func inGamut(c Vec3) bool {
	const eps = 1e-12
	return c[0] >= -eps && c[1] >= -eps && c[2] >= -eps && c[0] <= 1+eps && c[1] <= 1+eps && c[2] <= 1+eps
}

func clampVec(c Vec3) Vec3 {
	return Vec3{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

// gamutMapChromaScale binary searches for the largest factor in [0,1] by
// which (a,b) can be scaled so that the color is in gamut. L is preserved.
func gamutMapChromaScale(lab Vec3) Vec3 {
	if lab[1] == 0 && lab[2] == 0 {
		return clampVec(labToSRGBNoGamutMap(lab))
	}
	lo, hi := 0.0, 1.0
	var found Vec3
	ok := false
	for range 24 {
		mid := (lo + hi) / 2.0
		c := labToSRGBNoGamutMap(Vec3{lab[0], lab[1] * mid, lab[2] * mid})
		if inGamut(c) {
			found, ok = c, true
			lo = mid
		} else {
			hi = mid
		}
	}
	if !ok {
		return clampVec(labToSRGBNoGamutMap(Vec3{lab[0], 0, 0}))
	}
	return clampVec(found)
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}
