package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorimetry/spectral"
)

func TestTablesHaveExpectedShapes(t *testing.T) {
	cmfs := CIE1931Observer()
	assert.Equal(t, spectral.Shape{Start: 360, End: 830, Interval: 5}, cmfs.Shape())
	assert.Equal(t, 1.0, cmfs.Y.ValueAt(555))

	d65 := IlluminantD65()
	assert.Equal(t, spectral.Shape{Start: 300, End: 830, Interval: 5}, d65.Shape())
	assert.Equal(t, 100.0, d65.ValueAt(560))

	checker := BabelColorAverage()
	require.Len(t, checker.Names, 24)
	for _, name := range checker.Names {
		sd, err := checker.Get(name)
		require.NoError(t, err)
		assert.Equal(t, babelColorShape, sd.Shape())
		for _, v := range sd.Values() {
			assert.True(t, v > 0 && v < 1, "%s has reflectance %g", name, v)
		}
	}
}

func TestEverySwatchHasAnID(t *testing.T) {
	checker := BabelColorAverage()
	seen := map[string]bool{}
	for _, name := range checker.Names {
		id, err := SwatchID(name)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, len(SwatchNames()), len(seen))
}

func TestUnknownSwatch(t *testing.T) {
	_, err := SwatchID("chartreuse")
	assert.ErrorIs(t, err, ErrUnknownSwatch)
	assert.Contains(t, err.Error(), "chartreuse")

	_, err = BabelColorAverage().Get("chartreuse")
	assert.ErrorIs(t, err, ErrUnknownSwatch)
}

func TestLookups(t *testing.T) {
	_, err := Observer(CIE1931Name)
	require.NoError(t, err)
	_, err = Observer("CIE 1964 10 Degree Standard Observer")
	assert.ErrorIs(t, err, ErrUnknownDataset)
	_, err = Illuminant("D65")
	require.NoError(t, err)
	_, err = Illuminant("F2")
	assert.ErrorIs(t, err, ErrUnknownDataset)
	_, err = ColorChecker("ColorChecker 2005")
	assert.ErrorIs(t, err, ErrUnknownDataset)
	wp, err := Whitepoint("ACES")
	require.NoError(t, err)
	assert.Equal(t, Whitepoints["D60"], wp)
	_, err = Whitepoint("D93")
	assert.ErrorIs(t, err, ErrUnknownWhitepoint)
}
