package spectral

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(t *testing.T) *Distribution {
	d, err := New("ramp", []Sample{{380, 0.5}, {400, 0.4}, {420, 0.3}, {440, 0.2}, {460, 0.1}, {480, 0.0}})
	require.NoError(t, err)
	return d
}

func TestShape(t *testing.T) {
	s := NewShape(360, 780, 10)
	assert.Equal(t, 43, s.Count())
	wl := s.Wavelengths()
	assert.Equal(t, 360.0, wl[0])
	assert.Equal(t, 780.0, wl[len(wl)-1])
	assert.Equal(t, 421, ASTME308Shape.Count())
	assert.Error(t, NewShape(400, 300, 1).Validate())
	assert.Error(t, NewShape(300, 400, 0).Validate())
	assert.Equal(t, "360-780nm @ 10nm", s.String())
}

func TestNewValidates(t *testing.T) {
	_, err := New("x", []Sample{{400, 1}})
	assert.ErrorIs(t, err, ErrShape)
	_, err = New("x", []Sample{{400, 1}, {390, 1}})
	assert.ErrorIs(t, err, ErrShape)
	_, err = FromValues("x", NewShape(400, 500, 50), []float64{1, 2})
	assert.ErrorIs(t, err, ErrShape)

	d, err := New("x", []Sample{{400, 1}, {410, 1}, {430, 1}})
	require.NoError(t, err)
	assert.False(t, d.Uniform())
	assert.Equal(t, 10.0, d.Shape().Interval)
	c, err := Constant("c", NewShape(400, 700, 100), 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, c.Values())
}

func TestSpragueReproducesLinearData(t *testing.T) {
	d := ramp(t)
	assert.InDelta(t, 0.45, newSprague(d.samples).evaluate(390), 1e-12)

	i, err := d.Interpolate(NewShape(380, 480, 10))
	require.NoError(t, err)
	expected := []float64{0.5, 0.45, 0.4, 0.35, 0.3, 0.25, 0.2, 0.15, 0.1, 0.05, 0}
	if diff := cmp.Diff(expected, i.Values(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Sprague interpolation of a ramp differs (-want +got):\n%s", diff)
	}
	assert.Equal(t, NewShape(380, 480, 10), i.Shape())
}

func TestSpragueIsExactAtNodes(t *testing.T) {
	values := []float64{0.1, 0.7, 0.2, 0.9, 0.4, 0.3, 0.8, 0.05}
	d, err := FromValues("wiggly", NewShape(400, 470, 10), values)
	require.NoError(t, err)
	i, err := d.Interpolate(NewShape(400, 470, 10))
	require.NoError(t, err)
	assert.InDeltaSlice(t, values, i.Values(), 1e-12)
}

func TestInterpolateNarrowsToOverlap(t *testing.T) {
	i, err := ramp(t).Interpolate(NewShape(300, 420, 5))
	require.NoError(t, err)
	assert.Equal(t, NewShape(380, 420, 5), i.Shape())
	assert.Equal(t, 9, i.Len())
}

func TestInterpolateFallsBackToLinear(t *testing.T) {
	d, err := New("short", []Sample{{400, 0}, {500, 1}, {600, 0}})
	require.NoError(t, err)
	i, err := d.Interpolate(NewShape(400, 600, 50))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 0.5, 0}, i.Values())
}

func TestExtrapolate(t *testing.T) {
	e, err := ramp(t).Extrapolate(NewShape(320, 520, 10))
	require.NoError(t, err)
	assert.Equal(t, []float64{320, 340, 360, 380, 400, 420, 440, 460, 480, 500, 520}, e.Wavelengths())
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.4, 0.3, 0.2, 0.1, 0, 0, 0}, e.Values())
}

func TestAlign(t *testing.T) {
	a, err := ramp(t).Align(NewShape(360, 500, 10))
	require.NoError(t, err)
	assert.Equal(t, NewShape(360, 500, 10), a.Shape())
	assert.True(t, a.Uniform())
	assert.InDelta(t, 0.5, a.ValueAt(360), 1e-15)
	assert.InDelta(t, 0.45, a.ValueAt(390), 1e-12)
	assert.InDelta(t, 0.0, a.ValueAt(500), 1e-12)
}

func TestTrim(t *testing.T) {
	for _, s := range []Shape{NewShape(400, 440, 10), NewShape(390, 450, 10)} {
		tr, err := ramp(t).Trim(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{400, 420, 440}, tr.Wavelengths())
		assert.Equal(t, []float64{0.4, 0.3, 0.2}, tr.Values())
		assert.Equal(t, 20.0, tr.Shape().Interval)
	}
	_, err := ramp(t).Trim(NewShape(600, 700, 10))
	assert.ErrorIs(t, err, ErrShape)
}

func TestValueAtClamps(t *testing.T) {
	d := ramp(t)
	assert.Equal(t, 0.5, d.ValueAt(100))
	assert.Equal(t, 0.0, d.ValueAt(900))
	assert.InDelta(t, 0.35, d.ValueAt(410), 1e-15)
	assert.InDelta(t, 0.2, d.ValueAt(440), 1e-15)
}

func TestScale(t *testing.T) {
	s := ramp(t).Scale(2)
	assert.InDeltaSlice(t, []float64{1, 0.8, 0.6, 0.4, 0.2, 0}, s.Values(), 1e-15)
	assert.Equal(t, ramp(t).Shape(), s.Shape())
}
