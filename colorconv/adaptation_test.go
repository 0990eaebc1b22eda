package colorconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var whitepoints = map[string]Vec2{
	"A":    {0.44757, 0.40745},
	"D50":  {0.34570, 0.35850},
	"D65":  {0.31270, 0.32900},
	"ACES": {0.32168, 0.33767},
	"DCI":  {0.31400, 0.35100},
	"E":    {1. / 3, 1. / 3},
}

func TestAdaptationMatrixMapsSourceWhiteToDestinationWhite(t *testing.T) {
	for _, transform := range SupportedTransforms() {
		for sname, s := range whitepoints {
			for dname, d := range whitepoints {
				src, dst := XYToXYZ(s), XYToXYZ(d)
				m, err := AdaptationMatrix(src, dst, transform)
				require.NoError(t, err)
				got := m.MulVec(src)
				assert.InDeltaSlice(t, dst[:], got[:], 1e-10, "%s: %s -> %s", transform, sname, dname)

				inv, err := m.Inverted()
				require.NoError(t, err, "%s: %s -> %s", transform, sname, dname)
				back := inv.MulVec(dst)
				assert.InDeltaSlice(t, src[:], back[:], 1e-10, "%s: %s <- %s", transform, sname, dname)
			}
		}
	}
}

func TestAdaptationMatrixIdentityForEqualWhites(t *testing.T) {
	w := XYToXYZ(whitepoints["D65"])
	m, err := AdaptationMatrix(w, w, "CAT02")
	require.NoError(t, err)
	assert.Equal(t, Identity(), m)
}

func TestBradfordMatchesPublishedD65ToD50(t *testing.T) {
	// Lindbloom's Bradford D65 -> D50 matrix
	expected := Mat3{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	m, err := AdaptationMatrix(Vec3{0.95047, 1, 1.08883}, Vec3{0.96422, 1, 0.82521}, "Bradford")
	require.NoError(t, err)
	assert.Less(t, m.MaxAbsDiff(expected), 1e-6, "got %v", m)
}

func TestUnsupportedTransform(t *testing.T) {
	w := XYToXYZ(whitepoints["D65"])
	_, err := AdaptationMatrix(w, XYToXYZ(whitepoints["ACES"]), "Nonexistent")
	require.Error(t, err)
	var ute *UnsupportedTransformError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "Nonexistent", ute.Requested)
	assert.Equal(t, SupportedTransforms(), ute.Supported)
	assert.Contains(t, err.Error(), "Nonexistent")
	for _, name := range SupportedTransforms() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestSensorMatrixCaseInsensitive(t *testing.T) {
	a, err := SensorMatrix("cat02")
	require.NoError(t, err)
	b, err := SensorMatrix("CAT02")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestZeroSensorResponse(t *testing.T) {
	_, err := AdaptationMatrix(Vec3{}, XYToXYZ(whitepoints["D65"]), "Von Kries")
	assert.ErrorIs(t, err, ErrZeroSensorResponse)
}

func TestInverted(t *testing.T) {
	m := Mat3{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}
	assert.InDelta(t, 6, m.Determinant(), 1e-12)
	inv, err := m.Inverted()
	require.NoError(t, err)
	assert.Less(t, m.Mul(inv).MaxAbsDiff(Identity()), 1e-12)
	assert.Less(t, inv.Mul(m).MaxAbsDiff(Identity()), 1e-12)
	expected := Mat3{{4. / 6, 1. / 6, -0.5}, {0, 0.5, -0.5}, {-1. / 3, -1. / 3, 1}}
	assert.Less(t, inv.MaxAbsDiff(expected), 1e-15, "%s", inv)
	_, err = Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}.Inverted()
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestChromaticity(t *testing.T) {
	xyz := XYToXYZ(whitepoints["D65"])
	assert.InDeltaSlice(t, []float64{0.95045592705167, 1, 1.08905775075988}, xyz[:], 1e-12)
	xy := XYZToXY(xyz, Vec2{})
	d65 := whitepoints["D65"]
	assert.InDeltaSlice(t, d65[:], xy[:], 1e-15)
	fallback := Vec2{0.3127, 0.329}
	assert.Equal(t, fallback, XYZToXY(Vec3{}, fallback))
}

func TestDaylightLocus(t *testing.T) {
	xy, err := DaylightLocus(6504)
	require.NoError(t, err)
	assert.InDelta(t, 0.3127, xy[0], 5e-4)
	assert.InDelta(t, 0.3291, xy[1], 5e-4)
	_, err = DaylightLocus(2000)
	assert.Error(t, err)
}

func TestDeltaE(t *testing.T) {
	assert.InDelta(t, 5, DeltaE1976(Vec3{50, 3, 0}, Vec3{50, 0, 4}), 1e-12)
	// reference pairs from Sharma, Wu and Dalal
	cases := []struct {
		a, b     Vec3
		expected float64
	}{
		{Vec3{50, 2.6772, -79.7751}, Vec3{50, 0, -82.7485}, 2.0425},
		{Vec3{50, 3.1571, -77.2803}, Vec3{50, 0, -82.7485}, 2.8615},
		{Vec3{50, 2.5, 0}, Vec3{73, 25, -18}, 27.1492},
		{Vec3{50, 0, 0}, Vec3{50, -1, 2}, 2.3669},
	}
	for _, c := range cases {
		assert.InDelta(t, c.expected, DeltaE2000(c.a, c.b), 1e-4, "%v vs %v", c.a, c.b)
		assert.InDelta(t, c.expected, DeltaE2000(c.b, c.a), 1e-4, "%v vs %v", c.b, c.a)
	}
	assert.Zero(t, DeltaE2000(Vec3{40, 10, 10}, Vec3{40, 10, 10}))
}
