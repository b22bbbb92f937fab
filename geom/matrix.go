// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Matrix3 is a 3x3 matrix stored row-major; Matrix3[i][j] is row i, column j.
//
// Box dimension matrices store side vectors as columns, so the side vector
// for axis j is (M[0][j], M[1][j], M[2][j]).
type Matrix3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Diagonal3 returns a diagonal matrix with the given entries.
func Diagonal3(x, y, z float64) Matrix3 {
	return Matrix3{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, z},
	}
}

// MulVec returns M*v.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns M*N.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Scale multiplies every entry by s.
func (m Matrix3) Scale(s float64) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// Add returns M+N.
func (m Matrix3) Add(n Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] + n[i][j]
		}
	}
	return r
}

// Transpose returns M^T.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Det returns the determinant of M.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns M^-1. The caller must ensure Det(M) != 0.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Det()
	invDet := 1 / det
	var r Matrix3
	r[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	r[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return r
}

// Norm2 returns the squared Frobenius norm.
func (m Matrix3) Norm2() float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += m[i][j] * m[i][j]
		}
	}
	return sum
}

// Rotation returns the rotation matrix around the unit vector axis by angle
// (radians), using the Rodrigues formula.
func Rotation(axis Vector3, angle float64) Matrix3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	return Matrix3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}
