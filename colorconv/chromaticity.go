package colorconv

import (
	"fmt"
)

// XYToXYY returns the xyY value of the chromaticity xy at luminance Y.
func XYToXYY(xy Vec2, Y float64) Vec3 {
	return Vec3{xy[0], xy[1], Y}
}

// XYYToXYZ converts xyY to XYZ. A zero y maps to black.
func XYYToXYZ(xyY Vec3) Vec3 {
	x, y, Y := xyY[0], xyY[1], xyY[2]
	if y == 0 {
		return Vec3{}
	}
	return Vec3{x * Y / y, Y, (1 - x - y) * Y / y}
}

// XYToXYZ converts a chromaticity to XYZ with Y = 1, the normalisation used
// for whitepoints throughout this module.
func XYToXYZ(xy Vec2) Vec3 {
	return XYYToXYZ(XYToXYY(xy, 1))
}

// XYZToXYY converts XYZ to xyY. Black has no chromaticity and is assigned
// fallback.
func XYZToXYY(xyz Vec3, fallback Vec2) Vec3 {
	s := xyz[0] + xyz[1] + xyz[2]
	if s == 0 {
		return Vec3{fallback[0], fallback[1], xyz[1]}
	}
	return Vec3{xyz[0] / s, xyz[1] / s, xyz[1]}
}

func XYZToXY(xyz Vec3, fallback Vec2) Vec2 {
	v := XYZToXYY(xyz, fallback)
	return Vec2{v[0], v[1]}
}

// DaylightLocus returns the chromaticity of CIE daylight at the given
// correlated colour temperature in kelvin.
func DaylightLocus(cct float64) (Vec2, error) {
	var x float64
	t, t2, t3 := cct, cct*cct, cct*cct*cct
	switch {
	case cct >= 4000 && cct <= 7000:
		x = -4.6070e9/t3 + 2.9678e6/t2 + 0.09911e3/t + 0.244063
	case cct > 7000 && cct <= 25000:
		x = -2.0064e9/t3 + 1.9018e6/t2 + 0.24748e3/t + 0.237040
	default:
		return Vec2{}, fmt.Errorf("correlated colour temperature %gK is outside the daylight locus domain of 4000K to 25000K", cct)
	}
	return Vec2{x, -3*x*x + 2.870*x - 0.275}, nil
}
