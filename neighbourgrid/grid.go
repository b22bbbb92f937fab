// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbourgrid implements a linked-cell acceleration structure
// (the "NG") for constant-time neighbour lookup of particles confined to a
// triclinic box with periodic boundary conditions.
package neighbourgrid

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/geom"
)

// listEnd is the sentinel marking the end of a per-cell linked list.
const listEnd = ^uint(0)

// Grid is a sparse linked-cell index over a Box. Cells are stored including
// two "ghost" layers per axis (ahead of and behind the interior cells),
// which are logical aliases onto the opposite real cell used to implement
// periodic neighbour enumeration without copying particles.
type Grid struct {
	box              box.Box
	divisions        [3]int // interior cell counts per axis (ghost layers excluded)
	relativeCellSize [3]float64
	cellHeads        []uint
	cellOwner        []int // debug-only race sanitiser: owning goroutine id per cell, -1 if reset
	successors       []uint
	translations     [27]geom.Vector3
	translationIdx   []int
	reflectedCells   []int
	numCells         int

	neighbourOffsets     []int // full 27-cell stencil, offsets relative to a cell number
	halfNeighbourOffsets []int // half 13-cell stencil, for distinct-pair enumeration

	sanitizeRaceConditions bool
}

// New builds a neighbour grid over box for a fixed number of particles
// (0..numParticles-1), with interior cells at least cellSize wide on every
// axis.
func New(b box.Box, cellSize float64, numParticles int) *Grid {
	g := &Grid{}
	g.setupSizes(b, cellSize)

	g.cellHeads = make([]uint, g.numCells)
	g.translationIdx = make([]int, g.numCells)
	g.reflectedCells = make([]int, g.numCells)
	g.cellOwner = make([]int, g.numCells)
	g.successors = make([]uint, numParticles)
	g.clear()
	g.rebuildReflections()
	g.fillNeighbourOffsets()
	return g
}

// EnableRaceConditionSanitizer turns on the debug-only cross-goroutine
// mutation sanitiser.
func (g *Grid) EnableRaceConditionSanitizer(enabled bool) {
	g.sanitizeRaceConditions = enabled
}

func (g *Grid) setupSizes(b box.Box, cellSize float64) {
	if b.Volume() <= 0 {
		chk.Panic("neighbourgrid: box has non-positive volume")
	}
	if cellSize <= 0 {
		chk.Panic("neighbourgrid: cellSize must be positive")
	}

	heights := b.Heights()
	var divisions [3]int
	for i := 0; i < 3; i++ {
		divisions[i] = int(math.Floor(heights[i] / cellSize))
		if divisions[i] < 1 {
			chk.Panic("neighbourgrid: neighbour grid cell too big on axis %d", i)
		}
	}

	g.box = b
	g.divisions = divisions
	for i := 0; i < 3; i++ {
		g.relativeCellSize[i] = 1 / float64(divisions[i])
	}
	g.calculateTranslations()
	numCells := 1
	for i := 0; i < 3; i++ {
		numCells *= divisions[i] + 2
	}
	g.numCells = numCells
}

func (g *Grid) calculateTranslations() {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				relTranslation := geom.Vector3{float64(i) - 1, float64(j) - 1, float64(k) - 1}
				idx := flattenTranslationIdx(i, j, k)
				g.translations[idx] = g.box.RelativeToAbsolute(relTranslation)
			}
		}
	}
}

func flattenTranslationIdx(i, j, k int) int {
	return i*9 + j*3 + k
}

// storedDivisions returns the actual per-axis cell count including the two
// ghost layers.
func (g *Grid) storedDivisions() [3]int {
	return [3]int{g.divisions[0] + 2, g.divisions[1] + 2, g.divisions[2] + 2}
}

func (g *Grid) cellNoToCoordinates(cellNo int) [3]int {
	stored := g.storedDivisions()
	var coords [3]int
	for i := 0; i < 3; i++ {
		coords[i] = cellNo % stored[i]
		cellNo /= stored[i]
	}
	return coords
}

func (g *Grid) coordinatesToCellNo(coords [3]int) int {
	stored := g.storedDivisions()
	result := 0
	for i := 2; i >= 0; i-- {
		result = stored[i]*result + coords[i]
	}
	return result
}

// realCoordinatesToCellNo maps interior (ghost-free) coordinates, indexed
// from 0, to the storage cell number (shifted by the ghost layer).
func (g *Grid) realCoordinatesToCellNo(coords [3]int) int {
	stored := g.storedDivisions()
	result := 0
	for i := 2; i >= 0; i-- {
		result = stored[i]*result + coords[i] + 1
	}
	return result
}

func (g *Grid) cellNeighbourToCellNo(coords [3]int, neighbour [3]int) int {
	stored := g.storedDivisions()
	result := 0
	for i := 2; i >= 0; i-- {
		ix := coords[i] + neighbour[i] - 1
		result = stored[i]*result + ix
	}
	return result
}

func (g *Grid) isCellReflected(cellNo int) bool {
	stored := g.storedDivisions()
	coords := g.cellNoToCoordinates(cellNo)
	for i := 0; i < 3; i++ {
		if coords[i] == 0 || coords[i] == stored[i]-1 {
			return true
		}
	}
	return false
}

// getReflectedCellData returns (realCellNo, translationIdx) for a possibly
// ghost cell number.
func (g *Grid) getReflectedCellData(cellNo int) (int, int) {
	if !g.isCellReflected(cellNo) {
		return cellNo, flattenTranslationIdx(1, 1, 1)
	}

	stored := g.storedDivisions()
	coords := g.cellNoToCoordinates(cellNo)
	transCoord := [3]int{1, 1, 1}
	for i := 0; i < 3; i++ {
		switch {
		case coords[i] == 0:
			coords[i] = stored[i] - 2
			transCoord[i] = 0
		case coords[i] == stored[i]-1:
			coords[i] = 1
			transCoord[i] = 2
		}
	}
	transIdx := flattenTranslationIdx(transCoord[0], transCoord[1], transCoord[2])
	return g.coordinatesToCellNo(coords), transIdx
}

func (g *Grid) rebuildReflections() {
	for i := 0; i < g.numCells; i++ {
		real, trans := g.getReflectedCellData(i)
		g.reflectedCells[i] = real
		g.translationIdx[i] = trans
	}
}

func incrementOffset(in *[3]int) bool {
	for i := 0; i < 3; i++ {
		in[i]++
		if in[i] > 2 && i < 2 {
			in[i] = 0
		} else {
			break
		}
	}
	return in[2] <= 2
}

func (g *Grid) fillNeighbourOffsets() {
	g.neighbourOffsets = g.neighbourOffsets[:0]
	g.halfNeighbourOffsets = g.halfNeighbourOffsets[:0]

	var testCellCoords [3]int
	for i := 0; i < 3; i++ {
		testCellCoords[i] = g.storedDivisions()[i] / 2
	}
	testCellNo := g.coordinatesToCellNo(testCellCoords)

	var neighbour [3]int
	for {
		neighbourNo := g.cellNeighbourToCellNo(testCellCoords, neighbour)
		offset := neighbourNo - testCellNo
		g.neighbourOffsets = append(g.neighbourOffsets, offset)
		if 9*neighbour[0]+3*neighbour[1]+neighbour[2] > 13 {
			g.halfNeighbourOffsets = append(g.halfNeighbourOffsets, offset)
		}
		if !incrementOffset(&neighbour) {
			break
		}
	}

	g.neighbourOffsets = sortUnique(g.neighbourOffsets)
	g.halfNeighbourOffsets = sortUnique(g.halfNeighbourOffsets)
}

func sortUnique(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// PositionToCellNo maps an absolute position to its storage cell number.
// Positions drifting by up to 10*epsilon outside [0, 1) relative are
// silently clamped; larger drift is a precondition violation.
func (g *Grid) PositionToCellNo(position geom.Vector3) int {
	const epsilon = 10 * 2.220446049250313e-16
	relative := g.box.AbsoluteToRelative(position)
	stored := g.storedDivisions()
	result := 0
	for i := 2; i >= 0; i-- {
		relI := relative[i]
		if relI < 0 {
			if relI <= -epsilon {
				chk.Panic("neighbourgrid: PositionToCellNo: relative coordinate %g outside tolerance", relI)
			}
			relI = 0
		} else if relI >= 1 {
			if relI >= 1+epsilon {
				chk.Panic("neighbourgrid: PositionToCellNo: relative coordinate %g outside tolerance", relI)
			}
			relI = 1 - epsilon
		}
		coord := int(relI/g.relativeCellSize[i]) + 1
		result = stored[i]*result + coord
	}
	return result
}

// Add inserts particle idx, located at position, into the grid.
func (g *Grid) Add(idx int, position geom.Vector3) {
	cellNo := g.PositionToCellNo(position)
	g.sanitize(cellNo, "Add")
	g.successors[idx] = g.cellHeads[cellNo]
	g.cellHeads[cellNo] = uint(idx)
}

// AddToCell inserts particle idx directly into the given real cell number,
// as previously computed by PositionToCellNo.
func (g *Grid) AddToCell(idx int, cellNo int) {
	g.sanitize(cellNo, "AddToCell")
	g.successors[idx] = g.cellHeads[cellNo]
	g.cellHeads[cellNo] = uint(idx)
}

// Remove unlinks particle idx, located at position, from the grid. Removing
// a non-resident id is a no-op.
func (g *Grid) Remove(idx int, position geom.Vector3) {
	cellNo := g.PositionToCellNo(position)
	g.sanitize(cellNo, "Remove")

	head := g.cellHeads[cellNo]
	if head == uint(idx) {
		g.cellHeads[cellNo] = g.successors[idx]
		g.successors[idx] = listEnd
		return
	}
	for head != listEnd {
		if g.successors[head] == uint(idx) {
			g.successors[head] = g.successors[idx]
			g.successors[idx] = listEnd
			return
		}
		head = g.successors[head]
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.clear()
}

func (g *Grid) clear() {
	for i := range g.cellHeads {
		g.cellHeads[i] = listEnd
	}
	for i := range g.cellOwner {
		g.cellOwner[i] = -1
	}
	for i := range g.successors {
		g.successors[i] = listEnd
	}
}

// ResetRaceConditionSanitizer clears per-cell goroutine ownership so a new
// parallel phase can be sanitised from scratch.
func (g *Grid) ResetRaceConditionSanitizer() {
	for i := range g.cellOwner {
		g.cellOwner[i] = -1
	}
}

func (g *Grid) sanitize(cellNo int, method string) {
	if !g.sanitizeRaceConditions {
		return
	}
	gid := goroutineSlot()
	owner := g.cellOwner[cellNo]
	if owner == -1 {
		g.cellOwner[cellNo] = gid
		return
	}
	if owner == gid {
		return
	}
	coords := g.cellNoToCoordinates(cellNo)
	panic(fmt.Sprintf("neighbourgrid: race condition in %s: cell %d (coords %v) first claimed by goroutine slot %d, touched by %d",
		method, cellNo, coords, owner, gid))
}

// Resize recomputes cell sizing for a new box/cell size and clears the
// grid. It returns false (and only rebuilds translation tables) when the
// interior cell count per axis is unchanged, or true when storage was
// resized (growing only; shrinking reuses the existing allocation).
func (g *Grid) Resize(newBox box.Box, newCellSize float64) bool {
	oldDivisions := g.divisions
	oldNumCells := g.numCells
	g.setupSizes(newBox, newCellSize)

	if g.divisions == oldDivisions {
		g.clear()
		return false
	}

	if oldNumCells < g.numCells {
		grown := make([]uint, g.numCells)
		copy(grown, g.cellHeads)
		g.cellHeads = grown

		grownOwner := make([]int, g.numCells)
		copy(grownOwner, g.cellOwner)
		g.cellOwner = grownOwner

		g.translationIdx = make([]int, g.numCells)
		g.reflectedCells = make([]int, g.numCells)
	}

	g.rebuildReflections()
	g.fillNeighbourOffsets()
	g.clear()
	return true
}

// CellList returns every particle index currently in the cell containing
// position, honouring ghost aliasing.
func (g *Grid) CellList(position geom.Vector3) []int {
	cellNo := g.PositionToCellNo(position)
	return g.cellVector(cellNo)
}

func (g *Grid) cellVector(cellNo int) []int {
	realCell := g.reflectedCells[cellNo]
	head := g.cellHeads[realCell]
	var result []int
	for head != listEnd {
		result = append(result, int(head))
		head = g.successors[head]
	}
	return result
}

// Neighbours returns every particle index in the cell containing position
// and its neighbouring cells (the full 27-cell stencil). This allocates; use
// NeighbouringCells for the hot path.
func (g *Grid) Neighbours(position geom.Vector3) []int {
	cellNo := g.PositionToCellNo(position)
	var result []int
	for _, offset := range g.neighbourOffsets {
		result = append(result, g.cellVector(cellNo+offset)...)
	}
	return result
}

// NeighbourCell is one cell visited while enumerating a cell's neighbours:
// its particle list and the absolute translation that must be added to
// particle positions read from that cell before comparing them to positions
// in the origin cell.
type NeighbourCell struct {
	Particles   []int
	Translation geom.Vector3
}

// NeighbouringCells returns, for each of the 27 (or 13 if half is true)
// periodic-image offsets around the cell containing position, the particle
// list of that cell together with the translation to apply to its members.
// Passing half=true enumerates only distinct unordered cell pairs.
func (g *Grid) NeighbouringCells(position geom.Vector3, half bool) []NeighbourCell {
	cellNo := g.PositionToCellNo(position)
	return g.neighbouringCellsAt(cellNo, half)
}

// NeighbouringCellsAtCoords is the coordinate-indexed counterpart of
// NeighbouringCells, addressing interior cells directly by [0, divisions)
// coordinates.
func (g *Grid) NeighbouringCellsAtCoords(coords [3]int, half bool) []NeighbourCell {
	g.checkInteriorCoords(coords)
	cellNo := g.realCoordinatesToCellNo(coords)
	return g.neighbouringCellsAt(cellNo, half)
}

func (g *Grid) neighbouringCellsAt(cellNo int, half bool) []NeighbourCell {
	offsets := g.neighbourOffsets
	if half {
		offsets = g.halfNeighbourOffsets
	}
	result := make([]NeighbourCell, len(offsets))
	for i, offset := range offsets {
		neighbourCellNo := cellNo + offset
		translationIdx := g.translationIdx[neighbourCellNo]
		result[i] = NeighbourCell{
			Particles:   g.cellVector(neighbourCellNo),
			Translation: g.translations[translationIdx],
		}
	}
	return result
}

func (g *Grid) checkInteriorCoords(coords [3]int) {
	for i := 0; i < 3; i++ {
		if coords[i] < 0 || coords[i] >= g.divisions[i] {
			chk.Panic("neighbourgrid: coordinate %d=%d out of interior range [0, %d)", i, coords[i], g.divisions[i])
		}
	}
}

// CellDivisions returns the number of interior (ghost-free) cells per axis.
func (g *Grid) CellDivisions() [3]int {
	return g.divisions
}

// MemoryUsage estimates the grid's memory footprint in bytes.
func (g *Grid) MemoryUsage() int {
	const wordSize = 8
	return wordSize * (len(g.cellHeads) + len(g.cellOwner) + len(g.translationIdx) + len(g.successors) +
		len(g.reflectedCells) + len(g.neighbourOffsets) + len(g.halfNeighbourOffsets))
}
