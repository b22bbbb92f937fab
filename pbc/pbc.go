// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pbc implements minimum-image periodic boundary conditions over a
// triclinic box.
package pbc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/geom"
)

// PeriodicBoundaryConditions applies minimum-image corrections against a
// box. Loops are used instead of modulo arithmetic so that positions already
// marginally inside the box are left bit-for-bit unchanged.
type PeriodicBoundaryConditions struct {
	box box.Box
}

// New creates periodic boundary conditions for the given box.
func New(b box.Box) *PeriodicBoundaryConditions {
	if b.Volume() == 0 {
		chk.Panic("pbc: New: box has zero volume")
	}
	return &PeriodicBoundaryConditions{box: b}
}

// SetBox replaces the underlying box, e.g. after a scaling move.
func (p *PeriodicBoundaryConditions) SetBox(b box.Box) {
	if b.Volume() == 0 {
		chk.Panic("pbc: SetBox: box has zero volume")
	}
	p.box = b
}

// Box returns the box the corrections are computed against.
func (p *PeriodicBoundaryConditions) Box() box.Box {
	return p.box
}

// GetCorrection returns c such that position+c has every relative coordinate
// in [0, 1).
func (p *PeriodicBoundaryConditions) GetCorrection(position geom.Vector3) geom.Vector3 {
	positionRel := p.box.AbsoluteToRelative(position)
	var correctionRel geom.Vector3
	for i := 0; i < 3; i++ {
		for positionRel[i]+correctionRel[i] < 0 {
			correctionRel[i] += 1
		}
		for positionRel[i]+correctionRel[i] >= 1 {
			correctionRel[i] -= 1
		}
	}
	return p.box.RelativeToAbsolute(correctionRel)
}

// GetTranslation returns the minimum-image offset bringing position2 into
// the periodic image closest to position1.
func (p *PeriodicBoundaryConditions) GetTranslation(position1, position2 geom.Vector3) geom.Vector3 {
	rel1 := p.box.AbsoluteToRelative(position1)
	rel2 := p.box.AbsoluteToRelative(position2)
	var translationRel geom.Vector3
	for i := 0; i < 3; i++ {
		for rel2[i]+translationRel[i]-rel1[i] > 0.5 {
			translationRel[i] -= 1
		}
		for rel2[i]+translationRel[i]-rel1[i] < -0.5 {
			translationRel[i] += 1
		}
	}
	return p.box.RelativeToAbsolute(translationRel)
}

// GetDistance2 returns the squared minimum-image distance between two
// absolute positions.
func (p *PeriodicBoundaryConditions) GetDistance2(position1, position2 geom.Vector3) float64 {
	rel1 := p.box.AbsoluteToRelative(position1)
	rel2 := p.box.AbsoluteToRelative(position2)
	var distanceRel geom.Vector3
	for i := 0; i < 3; i++ {
		coordDistanceRel := rel2[i] - rel1[i]
		if coordDistanceRel < 0 {
			coordDistanceRel = -coordDistanceRel
		}
		for coordDistanceRel > 0.5 {
			coordDistanceRel -= 1
		}
		distanceRel[i] = coordDistanceRel
	}
	return p.box.RelativeToAbsolute(distanceRel).Norm2()
}
