// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package packing implements a concrete core.Packing: a fixed set of rigid
// particles, their positions and orientations, a shared neighbour grid for
// fast overlap queries, and optionally a domain decomposition for
// concurrent moves.
package packing

import (
	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/domain"
	"github.com/pkua007/rampack/geom"
	"github.com/pkua007/rampack/neighbourgrid"
	"github.com/pkua007/rampack/pbc"
)

// Packing is a concrete core.Packing over a fixed list of shapes.
type Packing struct {
	b             box.Box
	pbc           *pbc.PeriodicBoundaryConditions
	grid          *neighbourgrid.Grid
	decomposition *domain.Decomposition
	interaction   core.Interaction

	shapes       []core.Shape
	positions    []geom.Vector3
	orientations []geom.Matrix3

	// pendingScaledPositions and pendingScaledGrid stash the last
	// successful TryScaling trial so CommitScaling need not redo the work.
	pendingScaledPositions []geom.Vector3
	pendingScaledGrid      *neighbourgrid.Grid
}

// New builds a packing from the given shapes, initial positions and
// orientations, inside b, using interaction to evaluate overlaps.
func New(b box.Box, shapes []core.Shape, positions []geom.Vector3, orientations []geom.Matrix3, interaction core.Interaction) *Packing {
	p := &Packing{
		b:            b,
		pbc:          pbc.New(b),
		interaction:  interaction,
		shapes:       shapes,
		positions:    positions,
		orientations: orientations,
	}
	p.grid = neighbourgrid.New(b, interaction.RangeRadius(), len(shapes))
	for i, pos := range positions {
		p.grid.Add(i, pos)
	}
	return p
}

// SetDecomposition installs a domain decomposition used to run moves from
// several goroutines concurrently.
func (p *Packing) SetDecomposition(d *domain.Decomposition) {
	p.decomposition = d
}

// NumParticles implements core.Packing.
func (p *Packing) NumParticles() int { return len(p.shapes) }

// ParticlePosition implements domain.PackingInfo, in box-relative
// coordinates as required by ActiveDomain membership tests.
func (p *Packing) ParticlePosition(idx int) [3]float64 {
	return [3]float64(p.b.AbsoluteToRelative(p.positions[idx]))
}

// AbsolutePosition returns particle idx's un-wrapped absolute position.
func (p *Packing) AbsolutePosition(idx int) geom.Vector3 {
	return p.positions[idx]
}

// ParticleOrientation implements core.Packing.
func (p *Packing) ParticleOrientation(idx int) geom.Matrix3 {
	return p.orientations[idx]
}

// Box implements core.Packing.
func (p *Packing) Box() box.Box { return p.b }

// Decomposition implements core.Packing.
func (p *Packing) Decomposition() *domain.Decomposition { return p.decomposition }

// RangeRadius implements core.Packing.
func (p *Packing) RangeRadius() float64 { return p.interaction.RangeRadius() }

// TotalRangeRadius implements core.Packing.
func (p *Packing) TotalRangeRadius() float64 { return p.interaction.TotalRangeRadius() }

// NeighbourGridCellDivisions implements core.Packing.
func (p *Packing) NeighbourGridCellDivisions() [3]int { return p.grid.CellDivisions() }

// TryMove implements core.Packing. The trial position is wrapped into the
// box before the check, as CommitMove does when storing it.
func (p *Packing) TryMove(move core.MoveData) bool {
	position := move.NewPosition.Add(p.pbc.GetCorrection(move.NewPosition))
	return p.hasOverlap(move.ParticleIdx, position, move.NewOrientation)
}

// CommitMove implements core.Packing.
func (p *Packing) CommitMove(move core.MoveData) {
	idx := move.ParticleIdx
	corrected := move.NewPosition.Add(p.pbc.GetCorrection(move.NewPosition))

	p.grid.Remove(idx, p.positions[idx])
	p.positions[idx] = corrected
	p.orientations[idx] = move.NewOrientation
	p.grid.Add(idx, corrected)
}

func (p *Packing) hasOverlap(particleIdx int, position geom.Vector3, orientation geom.Matrix3) bool {
	if !p.interaction.HasHardPart() {
		return false
	}
	shape1 := p.shapes[particleIdx]
	for _, cell := range p.grid.NeighbouringCells(position, false) {
		for _, otherIdx := range cell.Particles {
			if otherIdx == particleIdx {
				continue
			}
			otherPos := p.positions[otherIdx].Add(cell.Translation)
			distance := otherPos.Sub(position)
			if p.interaction.Overlap(shape1, p.shapes[otherIdx], distance, orientation, p.orientations[otherIdx]) {
				return true
			}
		}
	}
	return false
}

// TryScaling implements core.Packing: it rebuilds the neighbour grid at the
// trial box size and checks every particle pair for overlap, restoring the
// original grid if any is found.
func (p *Packing) TryScaling(newBox box.Box, scalingFactor geom.Vector3) bool {
	oldBox := p.b
	oldPositions := append([]geom.Vector3(nil), p.positions...)

	scaledPositions := make([]geom.Vector3, len(p.positions))
	for i, pos := range p.positions {
		rel := oldBox.AbsoluteToRelative(pos)
		scaledPositions[i] = newBox.RelativeToAbsolute(rel)
	}

	trialGrid := neighbourgrid.New(newBox, p.interaction.RangeRadius(), len(p.shapes))
	for i, pos := range scaledPositions {
		trialGrid.Add(i, pos)
	}

	overlap := false
	if p.interaction.HasHardPart() {
	outer:
		for i := range p.shapes {
			for _, cell := range trialGrid.NeighbouringCells(scaledPositions[i], false) {
				for _, j := range cell.Particles {
					if j == i {
						continue
					}
					distance := scaledPositions[j].Add(cell.Translation).Sub(scaledPositions[i])
					if p.interaction.Overlap(p.shapes[i], p.shapes[j], distance, p.orientations[i], p.orientations[j]) {
						overlap = true
						break outer
					}
				}
			}
		}
	}

	p.positions = oldPositions
	if overlap {
		return true
	}
	p.pendingScaledPositions = scaledPositions
	p.pendingScaledGrid = trialGrid
	return false
}

// CommitScaling implements core.Packing. It must only be called after a
// TryScaling call on the same newBox reported no overlap.
func (p *Packing) CommitScaling(newBox box.Box) {
	p.b = newBox
	p.pbc.SetBox(newBox)
	p.positions = p.pendingScaledPositions
	p.grid = p.pendingScaledGrid
	p.pendingScaledPositions = nil
	p.pendingScaledGrid = nil
}

// TotalEnergy implements core.Packing. Every pair is visited from both of
// its particles, so the sum is halved.
func (p *Packing) TotalEnergy() float64 {
	total := 0.0
	for i := range p.shapes {
		for _, cell := range p.grid.NeighbouringCells(p.positions[i], false) {
			for _, j := range cell.Particles {
				if j == i {
					continue
				}
				distance := p.positions[j].Add(cell.Translation).Sub(p.positions[i])
				total += p.interaction.Energy(p.shapes[i], p.shapes[j], distance, p.orientations[i], p.orientations[j])
			}
		}
	}
	return total / 2
}

// FixOrientations implements core.OrientationFixer.
func (p *Packing) FixOrientations() {
	for i, o := range p.orientations {
		p.orientations[i] = geom.FixRotationMatrix(o)
	}
}
