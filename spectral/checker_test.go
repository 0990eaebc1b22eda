package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorimetry/datasets"
	"github.com/kovidgoyal/colorimetry/spectral"
)

func TestCheckerXYZIsConsistentAcrossIntervals(t *testing.T) {
	cmfs, d65 := datasets.CIE1931Observer(), datasets.IlluminantD65()
	checker := datasets.BabelColorAverage()
	for _, name := range checker.Names {
		sd := checker.Spectra[name]
		ref, err := spectral.ToXYZ(sd, d65, cmfs)
		require.NoError(t, err)
		assert.True(t, ref[1] > 0 && ref[1] < 100, "%s: Y = %g", name, ref[1])

		for _, interval := range []float64{1, 5} {
			resampled, err := sd.Interpolate(sd.Shape().WithInterval(interval))
			require.NoError(t, err)
			xyz, err := spectral.ToXYZ(resampled, d65, cmfs)
			require.NoError(t, err)
			assert.InDeltaSlice(t, ref[:], xyz[:], 0.1, "%s at %gnm", name, interval)
		}
	}
}

func TestD65WhiteMatchesChromaticity(t *testing.T) {
	cmfs, d65 := datasets.CIE1931Observer(), datasets.IlluminantD65()
	white, err := spectral.Constant("white", spectral.NewShape(360, 780, 1), 1)
	require.NoError(t, err)
	xyz, err := spectral.ToXYZ(white, d65, cmfs)
	require.NoError(t, err)
	assert.InDelta(t, 100, xyz[1], 1e-9)
	s := xyz[0] + xyz[1] + xyz[2]
	assert.InDelta(t, 0.3127, xyz[0]/s, 1e-3)
	assert.InDelta(t, 0.3290, xyz[1]/s, 1e-3)
}

func TestFixedMatchesDoublePrecision(t *testing.T) {
	cmfs, d65 := datasets.CIE1931Observer(), datasets.IlluminantD65()
	shape := spectral.NewShape(380, 770, 10)
	w, err := spectral.WeightingFactors(cmfs, d65, shape)
	require.NoError(t, err)
	require.Equal(t, 40, w.Len())
	checker := datasets.BabelColorAverage()
	for _, name := range checker.Names {
		sd := checker.Spectra[name]
		f, err := spectral.FixedFrom(sd, shape)
		require.NoError(t, err)
		got, err := f.Dot(w)
		require.NoError(t, err)
		trimmed, err := sd.Align(shape)
		require.NoError(t, err)
		want, err := w.Dot(trimmed.Values())
		require.NoError(t, err)
		for i := range 3 {
			assert.InDelta(t, want[i], float64(got[i]), 1e-3, "%s", name)
		}
	}
}
