// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbourgrid

import (
	"sort"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/geom"
)

func TestGridAddRemoveFindsSelf(tst *testing.T) {
	chk.PrintTitle("GridAddRemoveFindsSelf")

	b := box.Orthorhombic(13, 10, 10)
	g := New(b, 2.0, 6)

	positions := []geom.Vector3{
		{1, 1, 1},
		{1, 9, 9},
		{6.5, 5, 5},
		{12, 1, 9},
		{6, 6, 6},
		{0.5, 0.5, 0.5},
	}
	for i, p := range positions {
		g.Add(i, p)
	}

	for i, p := range positions {
		found := false
		for _, j := range g.Neighbours(p) {
			if j == i {
				found = true
			}
		}
		if !found {
			tst.Fatalf("particle %d not found in its own neighbour cell", i)
		}
	}

	g.Remove(0, positions[0])
	for _, j := range g.Neighbours(positions[0]) {
		if j == 0 {
			tst.Fatalf("particle 0 still present after Remove")
		}
	}
}

func TestGridNeighboursAreSymmetric(tst *testing.T) {
	chk.PrintTitle("GridNeighboursAreSymmetric")

	b := box.Cubic(10)
	g := New(b, 2.0, 4)
	positions := []geom.Vector3{
		{0.1, 0.1, 0.1},
		{9.9, 0.1, 0.1},
		{5, 5, 5},
		{0.1, 9.9, 9.9},
	}
	for i, p := range positions {
		g.Add(i, p)
	}

	neighboursOf := func(i int) []int {
		var result []int
		for _, cell := range g.NeighbouringCells(positions[i], false) {
			result = append(result, cell.Particles...)
		}
		sort.Ints(result)
		return result
	}

	n0 := neighboursOf(0)
	found1 := false
	for _, j := range n0 {
		if j == 1 {
			found1 = true
		}
	}
	if !found1 {
		tst.Fatalf("particle 1 (periodic ghost image) should be a neighbour of particle 0")
	}

	n1 := neighboursOf(1)
	found0 := false
	for _, j := range n1 {
		if j == 0 {
			found0 = true
		}
	}
	if !found0 {
		tst.Fatalf("particle 0 (periodic ghost image) should be a neighbour of particle 1")
	}
}

func TestGridResizeSameDivisionsClearsOnly(tst *testing.T) {
	chk.PrintTitle("GridResizeSameDivisionsClearsOnly")

	b := box.Cubic(10)
	g := New(b, 2.0, 1)
	g.Add(0, geom.Vector3{1, 1, 1})

	resized := g.Resize(box.Cubic(10.01), 2.0)
	if resized {
		tst.Fatalf("expected Resize to report no storage change when division counts are unchanged")
	}
	if len(g.Neighbours(geom.Vector3{1, 1, 1})) != 0 {
		tst.Fatalf("expected Resize to clear the grid even when divisions are unchanged")
	}
}

func TestGridHalfStencilIsHalfOfFull(tst *testing.T) {
	chk.PrintTitle("GridHalfStencilIsHalfOfFull")

	g := New(box.Cubic(10), 2.0, 1)
	chk.IntAssert(len(g.neighbourOffsets), 27)
	chk.IntAssert(len(g.halfNeighbourOffsets), 13)
}
