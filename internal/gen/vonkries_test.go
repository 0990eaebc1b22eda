package gen

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/rgbspace"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func srgbAndACESWhites() (colorconv.Vec3, colorconv.Vec3) {
	return rgbspace.MustGet("sRGB").WhitepointXYZ(), rgbspace.MustGet("ACES2065-1").WhitepointXYZ()
}

func TestDeriveVonKriesMatchesLibrary(t *testing.T) {
	src, dst := srgbAndACESWhites()
	for _, transform := range colorconv.SupportedTransforms() {
		derived, err := DeriveVonKries(src, dst, transform, discard)
		require.NoError(t, err, transform)
		library, err := colorconv.AdaptationMatrix(src, dst, transform)
		require.NoError(t, err, transform)
		assert.LessOrEqual(t, derived.MaxAbsDiff(library), DerivedMatrixTolerance, transform)

		mapped := derived.MulVec(src)
		assert.InDeltaSlice(t, dst[:], mapped[:], 1e-10, transform)
		back, err := derived.Inverted()
		require.NoError(t, err)
		restored := back.MulVec(mapped)
		assert.InDeltaSlice(t, src[:], restored[:], 1e-10, transform)
	}
}

func TestDeriveVonKriesLogsIntermediates(t *testing.T) {
	src, dst := srgbAndACESWhites()
	buf := bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := DeriveVonKries(src, dst, "CAT02", logger)
	require.NoError(t, err)
	for _, msg := range []string{"Von Kries inputs", "Von Kries inverse", "Von Kries cone responses", "Von Kries gain", "Von Kries result"} {
		assert.Contains(t, buf.String(), msg)
	}
}

func TestDeriveVonKriesUnsupportedTransform(t *testing.T) {
	src, dst := srgbAndACESWhites()
	_, err := DeriveVonKries(src, dst, "Hunt", discard)
	var ut *colorconv.UnsupportedTransformError
	require.True(t, errors.As(err, &ut))
	assert.Equal(t, "Hunt", ut.Requested)
	assert.Contains(t, err.Error(), "CAT02")
	assert.Contains(t, err.Error(), "Bradford")
}

func TestDeriveVonKriesZeroResponse(t *testing.T) {
	_, err := DeriveVonKries(colorconv.Vec3{0, 1, 1}, colorconv.Vec3{1, 1, 1}, "XYZ Scaling", discard)
	assert.ErrorIs(t, err, colorconv.ErrZeroSensorResponse)
}

func TestGaussJordanInverse(t *testing.T) {
	m, err := colorconv.SensorMatrix("CAT02")
	require.NoError(t, err)
	inv, err := gaussJordanInverse(m)
	require.NoError(t, err)
	assert.LessOrEqual(t, m.Mul(inv).MaxAbsDiff(colorconv.Identity()), 1e-12)

	// needs a row swap
	p := colorconv.Mat3{{0, 1, 0}, {1, 0, 0}, {0, 0, 2}}
	inv, err = gaussJordanInverse(p)
	require.NoError(t, err)
	assert.Equal(t, colorconv.Mat3{{0, 1, 0}, {1, 0, 0}, {0, 0, 0.5}}, inv)

	_, err = gaussJordanInverse(colorconv.Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}})
	assert.ErrorIs(t, err, colorconv.ErrSingularMatrix)
}
