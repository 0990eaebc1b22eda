package spectral

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(v []float64) (ans float64) {
	for _, x := range v {
		ans += x
	}
	return
}

func TestLagrangeCoefficients(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0.8265, 0.2755, -0.1305, 0.0285}, LagrangeCoefficients(0.1, 4), 1e-12)
	for _, r := range []float64{0.1, 0.5, 1.3, 2.7} {
		assert.InDelta(t, 1, sum(LagrangeCoefficients(r, 4)), 1e-14)
	}
	inner := LagrangeCoefficientsASTME2022(10, true)
	require.Len(t, inner, 9)
	assert.InDeltaSlice(t, LagrangeCoefficients(1.1, 4), inner[0], 1e-15)
	boundary := LagrangeCoefficientsASTME2022(10, false)
	require.Len(t, boundary, 9)
	assert.Len(t, boundary[0], 3)
	assert.InDeltaSlice(t, LagrangeCoefficients(0.9, 3), boundary[8], 1e-15)
	assert.Nil(t, LagrangeCoefficientsASTME2022(1, true))
}

func flatInputs(t *testing.T) (*CMFS, *Distribution) {
	n := ASTME308Shape.Count()
	rows := make([][3]float64, n)
	for i := range rows {
		x := float64(i) / float64(n-1)
		rows[i] = [3]float64{x, 1 - (x-0.5)*(x-0.5), 1 - x}
	}
	cmfs, err := NewCMFS("synthetic", ASTME308Shape, rows)
	require.NoError(t, err)
	ill, err := Constant("E", ASTME308Shape, 100)
	require.NoError(t, err)
	return cmfs, ill
}

func TestWeightingFactorsAreNormalized(t *testing.T) {
	cmfs, ill := flatInputs(t)
	for _, interval := range []float64{10, 20} {
		w, err := WeightingFactorsASTME2022(cmfs, ill, ASTME308Shape.WithInterval(interval))
		require.NoError(t, err)
		assert.Equal(t, int(420/interval)+1, w.Len())
		assert.InDelta(t, 100, sum(w.Y), 1e-10)
	}
}

func TestWeightingFactorsRequire1nm(t *testing.T) {
	cmfs, ill := flatInputs(t)
	c5, err := cmfs.Align(ASTME308Shape.WithInterval(5))
	require.NoError(t, err)
	_, err = WeightingFactorsASTME2022(c5, ill, ASTME308Shape.WithInterval(10))
	assert.ErrorIs(t, err, ErrShape)
	_, err = WeightingFactorsASTME2022(cmfs, ill, ASTME308Shape.WithInterval(7.5))
	assert.ErrorIs(t, err, ErrShape)
}

func TestAdjustPreservesSums(t *testing.T) {
	cmfs, ill := flatInputs(t)
	shapeR := NewShape(360, 780, 20)
	w, err := WeightingFactorsASTME2022(cmfs, ill, shapeR)
	require.NoError(t, err)
	a, err := AdjustWeightingFactorsASTME308(w, shapeR, NewShape(400, 700, 20))
	require.NoError(t, err)
	assert.Equal(t, 16, a.Len())
	assert.InDelta(t, sum(w.X), sum(a.X), 1e-10)
	assert.InDelta(t, sum(w.Y), sum(a.Y), 1e-10)
	assert.InDelta(t, sum(w.Z), sum(a.Z), 1e-10)
	assert.InDelta(t, w.Y[0]+w.Y[1]+w.Y[2], a.Y[0], 1e-12)

	_, err = AdjustWeightingFactorsASTME308(w, shapeR, NewShape(300, 700, 20))
	assert.ErrorIs(t, err, ErrShape)
}

func TestAdjustOffGridKeepsCoveringSamples(t *testing.T) {
	cmfs, ill := flatInputs(t)
	shapeR := NewShape(360, 780, 20)
	w, err := WeightingFactorsASTME2022(cmfs, ill, shapeR)
	require.NoError(t, err)
	// 405nm lies between the 400 and 420 samples, 695nm between 680 and 700
	a, err := AdjustWeightingFactorsASTME308(w, shapeR, NewShape(405, 695, 20))
	require.NoError(t, err)
	assert.Equal(t, 15, a.Len())
	assert.InDelta(t, w.Y[0]+w.Y[1]+w.Y[2], a.Y[0], 1e-12)
	assert.InDelta(t, sum(w.Y[16:]), a.Y[14], 1e-12)
	assert.InDelta(t, sum(w.X), sum(a.X), 1e-10)
	assert.InDelta(t, sum(w.Y), sum(a.Y), 1e-10)
	assert.InDelta(t, sum(w.Z), sum(a.Z), 1e-10)
}

func TestValidateWeightingShape(t *testing.T) {
	assert.NoError(t, ValidateWeightingShape(NewShape(400, 700, 10), ASTME308Shape))
	assert.NoError(t, ValidateWeightingShape(NewShape(380, 780, 20), ASTME308Shape))
	for _, s := range []Shape{
		NewShape(385, 705, 10),
		NewShape(400, 705, 10),
		NewShape(400.5, 700.5, 10),
		NewShape(400, 700, 2.5),
		NewShape(340, 700, 10),
		NewShape(400, 800, 10),
		NewShape(700, 400, 10),
	} {
		assert.ErrorIs(t, ValidateWeightingShape(s, ASTME308Shape), ErrShape, "%s", s)
	}
}

func TestPerfectDiffuserIs100(t *testing.T) {
	cmfs, ill := flatInputs(t)
	for _, interval := range []float64{1, 5, 10, 20, 2} {
		white, err := Constant("white", NewShape(360, 780, interval), 1)
		require.NoError(t, err)
		xyz, err := ToXYZ(white, ill, cmfs)
		require.NoError(t, err)
		assert.InDelta(t, 100, xyz[1], 1e-9, "interval: %g", interval)
	}
}

func TestWeightsDot(t *testing.T) {
	w := Weights{X: []float64{1, 2}, Y: []float64{3, 4}, Z: []float64{5, 6}}
	xyz, err := w.Dot([]float64{1, 0.5})
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 5, 8}, [3]float64(xyz))
	_, err = w.Dot([]float64{1})
	assert.ErrorIs(t, err, ErrShape)
}

func TestLuminance(t *testing.T) {
	cmfs, _ := flatInputs(t)
	sd, err := Constant("flat", NewShape(400, 700, 10), 1)
	require.NoError(t, err)
	nits, err := Luminance(sd, cmfs)
	require.NoError(t, err)
	y, err := cmfs.Y.Align(sd.Shape())
	require.NoError(t, err)
	assert.InDelta(t, MaxLuminousEfficacy*sum(y.Values())/float64(sd.Len()), nits, 1e-9)
}

func TestFixed(t *testing.T) {
	f, err := NewFixed(NewShape(400, 430, 10), []float32{0, 1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f.ValueAt(405))
	assert.Equal(t, float32(0), f.ValueAt(300))
	assert.Equal(t, float32(4), f.ValueAt(500))
	assert.Equal(t, float32(3), f.ValueAt(425))
	assert.True(t, f.Finite())
	for _, bad := range []float32{math32.NaN(), math32.Inf(-1)} {
		nf, err := NewFixed(NewShape(400, 420, 10), []float32{1, bad, 2})
		require.NoError(t, err)
		assert.False(t, nf.Finite())
	}

	xyz, err := f.Dot(Weights{X: []float64{1, 1, 1, 1}, Y: []float64{0, 1, 0, 0}, Z: []float64{0, 0, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, [3]float32{7, 1, 4}, xyz)

	_, err = NewFixed(NewShape(400, 430, 10), []float32{0, 1})
	assert.ErrorIs(t, err, ErrShape)
}
