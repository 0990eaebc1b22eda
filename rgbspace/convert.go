package rgbspace

import (
	"fmt"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

// DefaultCAT is the chromatic adaptation transform used when converting
// between XYZ and RGB with different whitepoints.
const DefaultCAT = "CAT02"

// XYZToRGB converts xyz, relative to illuminantXYZ, to linear RGB using m, a
// colour space's XYZ to RGB matrix whose whitepoint is illuminantRGB. The
// value is first adapted between the two whites with cat, unless cat is
// empty.
func XYZToRGB(xyz colorconv.Vec3, illuminantXYZ, illuminantRGB colorconv.Vec2, m colorconv.Mat3, cat string) (colorconv.Vec3, error) {
	if cat != "" {
		var err error
		if xyz, err = colorconv.Adapt(xyz, colorconv.XYToXYZ(illuminantXYZ), colorconv.XYToXYZ(illuminantRGB), cat); err != nil {
			return xyz, err
		}
	}
	return m.MulVec(xyz), nil
}

// RGBToXYZ is the inverse of XYZToRGB, m being a colour space's RGB to XYZ
// matrix.
func RGBToXYZ(rgb colorconv.Vec3, illuminantRGB, illuminantXYZ colorconv.Vec2, m colorconv.Mat3, cat string) (colorconv.Vec3, error) {
	xyz := m.MulVec(rgb)
	if cat == "" {
		return xyz, nil
	}
	return colorconv.Adapt(xyz, colorconv.XYToXYZ(illuminantRGB), colorconv.XYToXYZ(illuminantXYZ), cat)
}

// FromXYZ converts xyz, relative to illuminant, to this colour space,
// returning both the linear and the encoded value.
func (cs *ColorSpace) FromXYZ(xyz colorconv.Vec3, illuminant colorconv.Vec2, cat string) (linear, encoded colorconv.Vec3, err error) {
	if linear, err = XYZToRGB(xyz, illuminant, cs.Whitepoint, cs.XYZToRGB, cat); err != nil {
		return
	}
	return linear, cs.EncodeRGB(linear), nil
}

// ToXYZ converts a linear value in this colour space to XYZ relative to
// illuminant.
func (cs *ColorSpace) ToXYZ(linear colorconv.Vec3, illuminant colorconv.Vec2, cat string) (colorconv.Vec3, error) {
	return RGBToXYZ(linear, cs.Whitepoint, illuminant, cs.RGBToXYZ, cat)
}

// RGBToRGBMatrix returns the matrix converting linear values of src to
// linear values of dst, adapting between their whites with cat unless it is
// empty.
func RGBToRGBMatrix(src, dst *ColorSpace, cat string) (colorconv.Mat3, error) {
	m := src.RGBToXYZ
	if cat != "" {
		a, err := colorconv.AdaptationMatrix(src.WhitepointXYZ(), dst.WhitepointXYZ(), cat)
		if err != nil {
			return m, fmt.Errorf("converting %s to %s: %w", src.Name, dst.Name, err)
		}
		m = a.Mul(m)
	}
	return dst.XYZToRGB.Mul(m), nil
}

// RGBToRGB converts a linear value of src to a linear value of dst.
func RGBToRGB(rgb colorconv.Vec3, src, dst *ColorSpace, cat string) (colorconv.Vec3, error) {
	m, err := RGBToRGBMatrix(src, dst, cat)
	if err != nil {
		return rgb, err
	}
	return m.MulVec(rgb), nil
}

// XYZToSRGB converts xyz, relative to D65 and scaled so that the perfect
// diffuser has Y = 1, to encoded sRGB.
func XYZToSRGB(xyz colorconv.Vec3) (colorconv.Vec3, error) {
	srgb := MustGet("sRGB")
	_, encoded, err := srgb.FromXYZ(xyz, srgb.Whitepoint, DefaultCAT)
	return encoded, err
}
