// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// EulerAnglesEpsilon is the tolerance used to detect a rotation matrix and a
// gimbal lock condition.
const EulerAnglesEpsilon = 1e-12

// EulerAngles holds the two external XYZ Euler-angle (Tait-Bryan) solutions
// reconstructing a given rotation matrix. Away from a gimbal lock there are
// always two distinct solutions; at a gimbal lock both collapse to the same
// angles with the Z angle (the third component) fixed at 0.
//
// Based on: http://eecs.qmul.ac.uk/~gslabaugh/publications/euler.pdf
type EulerAngles struct {
	First  [3]float64
	Second [3]float64
}

// NewEulerAngles decomposes a rotation matrix into Euler angles. matrix must
// satisfy M*M^T = I to within EulerAnglesEpsilon.
func NewEulerAngles(matrix Matrix3) EulerAngles {
	if !isRotationMatrix(matrix) {
		panic("geom: NewEulerAngles: matrix is not a rotation matrix")
	}
	first, second := eulerAnglesForMatrix(matrix)
	return EulerAngles{First: first, Second: second}
}

// HasGimbalLock reports whether the decomposition hit a gimbal lock, i.e.
// the Y angle of the first solution is +-pi/2.
func (e EulerAngles) HasGimbalLock() bool {
	return math.Abs(math.Abs(e.First[1])-math.Pi/2) < 1e-8
}

func eulerAnglesForMatrix(m Matrix3) ([3]float64, [3]float64) {
	r11, r12, r13 := m[0][0], m[0][1], m[0][2]
	r21 := m[1][0]
	r31, r32, r33 := m[2][0], m[2][1], m[2][2]

	var psi1, theta1, phi1 float64
	var psi2, theta2, phi2 float64

	if r31 > -1+EulerAnglesEpsilon && r31 < 1-EulerAnglesEpsilon {
		theta1 = -math.Asin(r31)
		theta2 = math.Pi - theta1
		c1 := math.Cos(theta1)
		c2 := math.Cos(theta2)
		psi1 = math.Atan2(r32/c1, r33/c1)
		psi2 = math.Atan2(r32/c2, r33/c2)
		phi1 = math.Atan2(r21/c1, r11/c1)
		phi2 = math.Atan2(r21/c2, r11/c2)
	} else {
		phi1, phi2 = 0, 0
		if r31 < 0 {
			theta1, theta2 = math.Pi/2, math.Pi/2
			psi1 = math.Atan2(r12, r13)
			psi2 = psi1
		} else {
			theta1, theta2 = -math.Pi/2, -math.Pi/2
			psi1 = math.Atan2(-r12, -r13)
			psi2 = psi1
		}
	}

	return [3]float64{psi1, theta1, phi1}, [3]float64{psi2, theta2, phi2}
}

func isRotationMatrix(m Matrix3) bool {
	shouldBeZero := m.Mul(m.Transpose()).Add(Identity3().Scale(-1))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(shouldBeZero[i][j]) >= EulerAnglesEpsilon {
				return false
			}
		}
	}
	return true
}

// FixRotationMatrix iteratively re-orthonormalises rotation towards the
// nearest proper rotation matrix, correcting floating-point drift.
//
// Algorithm from https://math.stackexchange.com/questions/3292034.
func FixRotationMatrix(rotation Matrix3) Matrix3 {
	for i := 0; i < 3; i++ {
		rotation = rotation.Scale(1.5).Add(rotation.Mul(rotation.Transpose()).Mul(rotation).Scale(-0.5))
		if RotationMatrixDeviation(rotation) < 1e-30 {
			break
		}
	}
	return rotation
}

// RotationMatrixDeviation returns ||R*R^T - I||^2, the squared Frobenius
// norm of the deviation from orthogonality.
func RotationMatrixDeviation(rotation Matrix3) float64 {
	diff := rotation.Mul(rotation.Transpose()).Add(Identity3().Scale(-1))
	return diff.Norm2()
}
