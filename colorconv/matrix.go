package colorconv

import (
	"errors"
	"fmt"
)

var _ = fmt.Print

// Vec2 is a chromaticity coordinate pair (x, y).
type Vec2 [2]float64

// Vec3 is a tristimulus or RGB triple.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns the diagonal matrix with v on its diagonal.
func Diag(v Vec3) Mat3 {
	return Mat3{{v[0], 0, 0}, {0, v[1], 0}, {0, 0, v[2]}}
}

func (m Mat3) Mul(o Mat3) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			ans[i][j] = sum
		}
	}
	return
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Transposed() (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[j][i]
		}
	}
	return
}

func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverted returns the inverse of m computed via the adjugate.
func (m Mat3) Inverted() (ans Mat3, err error) {
	det := m.Determinant()
	if det == 0 {
		return ans, ErrSingularMatrix
	}
	inv := 1 / det
	ans[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv
	ans[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	ans[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	ans[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv
	ans[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	ans[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv
	ans[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv
	ans[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv
	ans[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv
	return
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%v %v %v]", Vec3(m[0]), Vec3(m[1]), Vec3(m[2]))
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// MaxAbs returns the largest absolute component of v.
func (v Vec3) MaxAbs() float64 {
	return max(abs(v[0]), abs(v[1]), abs(v[2]))
}

// MaxAbsDiff returns the largest absolute element-wise difference between
// two matrices.
func (m Mat3) MaxAbsDiff(o Mat3) (ans float64) {
	for i := range 3 {
		ans = max(ans, Vec3(m[i]).Sub(Vec3(o[i])).MaxAbs())
	}
	return
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
