// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the small fixed-size vector and matrix algebra
// shared by the box, neighbour grid and domain decomposition layers.
package geom

import "math"

// Vector3 is a point or displacement in three dimensions.
type Vector3 [3]float64

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the scalar product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm2 returns the squared Euclidean norm.
func (v Vector3) Norm2() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Normalized returns v scaled to unit length; v must be non-zero.
func (v Vector3) Normalized() Vector3 {
	return v.Scale(1 / v.Norm())
}
