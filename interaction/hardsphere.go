// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interaction implements concrete pairwise Interaction models.
package interaction

import (
	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/geom"
	"github.com/pkua007/rampack/shape"
)

// HardSphere is the purely repulsive hard-core interaction between two
// Sphere shapes: they overlap whenever their centres are closer than the
// sum of their radii, and carry no soft energy term. MaxRadius must be set
// to the largest radius among every Sphere the packing holds, so
// RangeRadius can bound the neighbour grid's cell size correctly. MaxMoveRadius
// bounds the largest single-particle displacement a sampler may propose in
// one move, so TotalRangeRadius can bound a DomainDecomposition's ghost
// layers correctly.
type HardSphere struct {
	MaxRadius     float64
	MaxMoveRadius float64
}

// HasHardPart implements core.Interaction.
func (HardSphere) HasHardPart() bool { return true }

// Overlap implements core.Interaction.
func (HardSphere) Overlap(shape1, shape2 core.Shape, distance geom.Vector3, orientation1, orientation2 geom.Matrix3) bool {
	s1, ok1 := shape1.(shape.Sphere)
	s2, ok2 := shape2.(shape.Sphere)
	if !ok1 || !ok2 {
		return false
	}
	rangeSum := s1.Radius + s2.Radius
	return distance.Norm2() < rangeSum*rangeSum
}

// Energy implements core.Interaction; hard spheres carry no soft energy.
func (HardSphere) Energy(shape1, shape2 core.Shape, distance geom.Vector3, orientation1, orientation2 geom.Matrix3) float64 {
	return 0
}

// RangeRadius implements core.Interaction: two spheres can only ever
// overlap within twice the largest radius of each other.
func (h HardSphere) RangeRadius() float64 {
	return 2 * h.MaxRadius
}

// TotalRangeRadius implements core.Interaction: two spheres separated by
// more than RangeRadius plus twice the largest move either one might make
// before the next neighbour-grid rebuild can never come close enough to
// interact.
func (h HardSphere) TotalRangeRadius() float64 {
	return h.RangeRadius() + 2*h.MaxMoveRadius
}
