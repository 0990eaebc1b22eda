// Package rgbspace defines tristimulus RGB colour spaces by their primaries,
// whitepoint and transfer function, and converts between them and CIE XYZ.
package rgbspace

import (
	"fmt"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

// ColorSpace is an RGB colour space. XYZToRGB and RGBToXYZ operate on
// linear (scene referred) values relative to the colour space's own
// whitepoint, with the white having Y = 1.
type ColorSpace struct {
	Name           string
	Primaries      [3]colorconv.Vec2
	Whitepoint     colorconv.Vec2
	WhitepointName string
	XYZToRGB       colorconv.Mat3
	RGBToXYZ       colorconv.Mat3
	Curve          Curve
}

// NormalisedPrimaryMatrix returns the RGB to XYZ matrix of a space with the
// given primaries and whitepoint, as defined in SMPTE RP 177.
func NormalisedPrimaryMatrix(primaries [3]colorconv.Vec2, whitepoint colorconv.Vec2) (colorconv.Mat3, error) {
	var p colorconv.Mat3
	for c, xy := range primaries {
		if xy[1] == 0 {
			return p, fmt.Errorf("primary %d has y = 0", c)
		}
		xyz := colorconv.XYToXYZ(xy)
		for r := range 3 {
			p[r][c] = xyz[r]
		}
	}
	pinv, err := p.Inverted()
	if err != nil {
		return p, fmt.Errorf("primaries are not linearly independent: %w", err)
	}
	s := pinv.MulVec(colorconv.XYToXYZ(whitepoint))
	return p.Mul(colorconv.Diag(s)), nil
}

// New creates a colour space deriving its matrices from the primaries and
// whitepoint.
func New(name string, primaries [3]colorconv.Vec2, whitepointName string, whitepoint colorconv.Vec2, curve Curve) (*ColorSpace, error) {
	rgbToXYZ, err := NormalisedPrimaryMatrix(primaries, whitepoint)
	if err != nil {
		return nil, fmt.Errorf("deriving the matrices of %s: %w", name, err)
	}
	xyzToRGB, err := rgbToXYZ.Inverted()
	if err != nil {
		return nil, fmt.Errorf("deriving the matrices of %s: %w", name, err)
	}
	return NewWithMatrices(name, primaries, whitepointName, whitepoint, xyzToRGB, rgbToXYZ, curve), nil
}

// NewWithMatrices creates a colour space using published matrices rather
// than deriving them, for spaces whose standard rounds the derived values.
func NewWithMatrices(name string, primaries [3]colorconv.Vec2, whitepointName string, whitepoint colorconv.Vec2, xyzToRGB, rgbToXYZ colorconv.Mat3, curve Curve) *ColorSpace {
	if curve == nil {
		curve = LinearCurve{}
	}
	return &ColorSpace{
		Name: name, Primaries: primaries, Whitepoint: whitepoint, WhitepointName: whitepointName,
		XYZToRGB: xyzToRGB, RGBToXYZ: rgbToXYZ, Curve: curve,
	}
}

// EncodeRGB applies the colour space's transfer function to each channel of
// a linear value.
func (cs *ColorSpace) EncodeRGB(rgb colorconv.Vec3) colorconv.Vec3 {
	return colorconv.Vec3{cs.Curve.Encode(rgb[0]), cs.Curve.Encode(rgb[1]), cs.Curve.Encode(rgb[2])}
}

// DecodeRGB is the inverse of EncodeRGB.
func (cs *ColorSpace) DecodeRGB(rgb colorconv.Vec3) colorconv.Vec3 {
	return colorconv.Vec3{cs.Curve.Decode(rgb[0]), cs.Curve.Decode(rgb[1]), cs.Curve.Decode(rgb[2])}
}

// WhitepointXYZ is the whitepoint of the space with Y = 1.
func (cs *ColorSpace) WhitepointXYZ() colorconv.Vec3 {
	return colorconv.XYToXYZ(cs.Whitepoint)
}

func (cs *ColorSpace) String() string {
	return fmt.Sprintf("%s (%s, %s)", cs.Name, cs.WhitepointName, cs.Curve)
}
