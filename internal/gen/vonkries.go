package gen

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/kovidgoyal/colorimetry/colorconv"
)

// DeriveVonKries computes the Von Kries chromatic adaptation matrix from
// XYZ white src to dst step by step: cone responses of both whites, their
// ratio as an explicit diagonal, and M⁻¹·D·M with M⁻¹ found by Gauss-Jordan
// elimination. It shares only the sensor matrices with
// colorconv.AdaptationMatrix, so the two can validate each other. Every
// intermediate quantity is logged at debug level.
func DeriveVonKries(src, dst colorconv.Vec3, transform string, logger *slog.Logger) (colorconv.Mat3, error) {
	var ans colorconv.Mat3
	m, err := colorconv.SensorMatrix(transform)
	if err != nil {
		return ans, err
	}
	logger.Debug("Von Kries inputs", "XYZ_w", src, "XYZ_wr", dst, "transform", transform, "M", m)

	minv, err := gaussJordanInverse(m)
	if err != nil {
		return ans, fmt.Errorf("inverting the %s sensor matrix: %w", transform, err)
	}
	logger.Debug("Von Kries inverse", "M_inv", minv)

	// rgb = XYZ·Mᵀ, one element at a time
	var rgb_w, rgb_wr colorconv.Vec3
	for i := range 3 {
		for j := range 3 {
			rgb_w[i] += src[j] * m[i][j]
			rgb_wr[i] += dst[j] * m[i][j]
		}
	}
	logger.Debug("Von Kries cone responses", "rgb_w", rgb_w, "rgb_wr", rgb_wr)

	var d colorconv.Mat3
	for i := range 3 {
		if rgb_w[i] == 0 {
			return ans, fmt.Errorf("%w: channel %d of %v under %s", colorconv.ErrZeroSensorResponse, i, src, transform)
		}
		d[i][i] = rgb_wr[i] / rgb_w[i]
	}
	logger.Debug("Von Kries gain", "D", d)

	var dm colorconv.Mat3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				dm[i][j] += d[i][k] * m[k][j]
			}
		}
	}
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				ans[i][j] += minv[i][k] * dm[k][j]
			}
		}
	}
	logger.Debug("Von Kries result", "M_CAT", ans)
	return ans, nil
}

func gaussJordanInverse(m colorconv.Mat3) (ans colorconv.Mat3, err error) {
	var a [3][6]float64
	for i := range 3 {
		copy(a[i][:3], m[i][:])
		a[i][3+i] = 1
	}
	for col := range 3 {
		pivot := col
		for r := col + 1; r < 3; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return ans, colorconv.ErrSingularMatrix
		}
		a[col], a[pivot] = a[pivot], a[col]
		p := a[col][col]
		for j := range 6 {
			a[col][j] /= p
		}
		for r := range 3 {
			if r != col && a[r][col] != 0 {
				k := a[r][col]
				for j := range 6 {
					a[r][j] -= k * a[col][j]
				}
			}
		}
	}
	for i := range 3 {
		copy(ans[i][:], a[i][3:])
	}
	return
}
