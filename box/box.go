// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package box implements the triclinic simulation box: the parallelepiped
// periodic cell shared by the neighbour grid, the domain decomposition and
// the Monte Carlo driver.
package box

import (
	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/geom"
)

// Box is a triclinic (parallelepiped) simulation cell. Dimensions holds the
// box side vectors as columns; its determinant must be non-zero.
type Box struct {
	dimensions    geom.Matrix3
	invDimensions geom.Matrix3
}

// New builds a box from a dimensions matrix whose columns are the side
// vectors. It panics if the matrix is singular.
func New(dimensions geom.Matrix3) Box {
	det := dimensions.Det()
	if det == 0 {
		chk.Panic("box: New: dimensions matrix is singular")
	}
	return Box{dimensions: dimensions, invDimensions: dimensions.Inverse()}
}

// Cubic returns a cubic box with the given side length.
func Cubic(side float64) Box {
	return Orthorhombic(side, side, side)
}

// Orthorhombic returns an axis-aligned box with the given side lengths.
func Orthorhombic(x, y, z float64) Box {
	return New(geom.Diagonal3(x, y, z))
}

// Dimensions returns the dimensions matrix (columns are box side vectors).
func (b Box) Dimensions() geom.Matrix3 {
	return b.dimensions
}

// AbsoluteToRelative converts absolute (lab) coordinates to box-relative
// coordinates; interior points have every component in [0, 1).
func (b Box) AbsoluteToRelative(pos geom.Vector3) geom.Vector3 {
	return b.invDimensions.MulVec(pos)
}

// RelativeToAbsolute converts box-relative coordinates to absolute (lab)
// coordinates.
func (b Box) RelativeToAbsolute(pos geom.Vector3) geom.Vector3 {
	return b.dimensions.MulVec(pos)
}

// Transform applies a linear transformation A to the box: M <- A*M. A*M must
// remain non-singular.
func (b Box) Transform(a geom.Matrix3) Box {
	newDims := a.Mul(b.dimensions)
	if newDims.Det() == 0 {
		chk.Panic("box: Transform: resulting dimensions matrix is singular")
	}
	return New(newDims)
}

// Scale performs box scaling by independent diagonal factors along the
// three axes.
func (b Box) Scale(fx, fy, fz float64) Box {
	return b.Transform(geom.Diagonal3(fx, fy, fz))
}

// Sides returns the three box side vectors in absolute coordinates.
func (b Box) Sides() [3]geom.Vector3 {
	return [3]geom.Vector3{
		b.RelativeToAbsolute(geom.Vector3{1, 0, 0}),
		b.RelativeToAbsolute(geom.Vector3{0, 1, 0}),
		b.RelativeToAbsolute(geom.Vector3{0, 0, 1}),
	}
}

// Volume returns the (unsigned) box volume.
func (b Box) Volume() float64 {
	sides := b.Sides()
	return abs(sides[0].Cross(sides[1]).Dot(sides[2]))
}

// Heights returns, for each axis, the distance between the two opposing box
// faces spanned by the other two side vectors.
func (b Box) Heights() [3]float64 {
	sides := b.Sides()
	vol := b.Volume()
	return [3]float64{
		vol / sides[1].Cross(sides[2]).Norm(),
		vol / sides[2].Cross(sides[0]).Norm(),
		vol / sides[0].Cross(sides[1]).Norm(),
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
