package colorconv

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sensor (cone response) matrices for Von Kries style chromatic adaptation
// transforms, mapping XYZ to the sharpened RGB space of each transform.
var sensorMatrices = map[string]Mat3{
	"XYZ Scaling": Identity(),
	"Von Kries": {
		{0.40024, 0.70760, -0.08081},
		{-0.22630, 1.16532, 0.04570},
		{0.00000, 0.00000, 0.91822},
	},
	"Bradford": {
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	},
	"Sharp": {
		{1.2694, -0.0988, -0.1706},
		{-0.8364, 1.8006, 0.0357},
		{0.0297, -0.0315, 1.0018},
	},
	"Fairchild": {
		{0.8562, 0.3372, -0.1934},
		{-0.8360, 1.8327, 0.0033},
		{0.0357, -0.0469, 1.0112},
	},
	"CMCCAT2000": {
		{0.7982, 0.3389, -0.1371},
		{-0.5918, 1.5512, 0.0406},
		{0.0008, 0.0239, 0.9753},
	},
	"CAT02": {
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	},
	"CAT16": {
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	},
	"Bianco 2010": {
		{0.8752, 0.2787, -0.1539},
		{-0.8904, 1.8709, 0.0195},
		{-0.0061, 0.0162, 0.9899},
	},
	"Bianco PC 2010": {
		{0.6489, 0.3915, -0.0404},
		{-0.3775, 1.3055, 0.0720},
		{-0.0271, 0.0888, 0.9383},
	},
}

var ErrZeroSensorResponse = errors.New("source whitepoint has a zero sensor response")

// UnsupportedTransformError is returned when a chromatic adaptation
// transform is requested by a name that is not registered.
type UnsupportedTransformError struct {
	Requested string
	Supported []string
}

func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("unsupported chromatic adaptation transform %q, supported transforms are: %s", e.Requested, strings.Join(e.Supported, ", "))
}

// SupportedTransforms returns the names of all chromatic adaptation
// transforms, sorted.
func SupportedTransforms() []string {
	ans := make([]string, 0, len(sensorMatrices))
	for k := range sensorMatrices {
		ans = append(ans, k)
	}
	slices.Sort(ans)
	return ans
}

// SensorMatrix returns the XYZ to sensor space matrix of the named
// transform. Names are matched exactly first and then case-insensitively.
func SensorMatrix(transform string) (Mat3, error) {
	if m, found := sensorMatrices[transform]; found {
		return m, nil
	}
	for k, m := range sensorMatrices {
		if strings.EqualFold(k, transform) {
			return m, nil
		}
	}
	return Mat3{}, &UnsupportedTransformError{Requested: transform, Supported: SupportedTransforms()}
}

// AdaptationMatrix returns the matrix adapting XYZ values from the source
// whitepoint src to the destination whitepoint dst using the named
// transform. The result M satisfies M·src = dst.
func AdaptationMatrix(src, dst Vec3, transform string) (Mat3, error) {
	m, err := SensorMatrix(transform)
	if err != nil {
		return Mat3{}, err
	}
	if src == dst {
		return Identity(), nil
	}
	rgb_w, rgb_wr := m.MulVec(src), m.MulVec(dst)
	var d Vec3
	for i := range 3 {
		if rgb_w[i] == 0 {
			return Mat3{}, fmt.Errorf("%w: channel %d of %v under %s", ErrZeroSensorResponse, i, src, transform)
		}
		d[i] = rgb_wr[i] / rgb_w[i]
	}
	inv, err := m.Inverted()
	if err != nil {
		return Mat3{}, fmt.Errorf("the %s sensor matrix cannot be inverted: %w", transform, err)
	}
	return inv.Mul(Diag(d).Mul(m)), nil
}

// Adapt applies chromatic adaptation to a single XYZ value.
func Adapt(xyz, src, dst Vec3, transform string) (Vec3, error) {
	m, err := AdaptationMatrix(src, dst, transform)
	if err != nil {
		return Vec3{}, err
	}
	return m.MulVec(xyz), nil
}
