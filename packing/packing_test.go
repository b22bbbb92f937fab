// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package packing

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/geom"
	"github.com/pkua007/rampack/interaction"
	"github.com/pkua007/rampack/shape"
)

func twoSpherePacking(separation float64) *Packing {
	b := box.Cubic(20)
	shapes := []core.Shape{shape.Sphere{Radius: 1}, shape.Sphere{Radius: 1}}
	positions := []geom.Vector3{{10, 10, 10}, {10 + separation, 10, 10}}
	orientations := []geom.Matrix3{geom.Identity3(), geom.Identity3()}
	return New(b, shapes, positions, orientations, interaction.HardSphere{MaxRadius: 1})
}

func TestTryMoveRejectsOverlap(tst *testing.T) {
	chk.PrintTitle("TryMoveRejectsOverlap")

	p := twoSpherePacking(3)
	move := core.MoveData{ParticleIdx: 0, NewPosition: geom.Vector3{10 + 2.5, 10, 10}, NewOrientation: geom.Identity3()}
	if !p.TryMove(move) {
		tst.Fatalf("expected overlap when moving sphere 0 within range of sphere 1")
	}
}

func TestTryMoveAcceptsNonOverlap(tst *testing.T) {
	chk.PrintTitle("TryMoveAcceptsNonOverlap")

	p := twoSpherePacking(3)
	move := core.MoveData{ParticleIdx: 0, NewPosition: geom.Vector3{9, 10, 10}, NewOrientation: geom.Identity3()}
	if p.TryMove(move) {
		tst.Fatalf("expected no overlap when moving sphere 0 further from sphere 1")
	}
	p.CommitMove(move)
	chk.Vector(tst, "committed position", 1e-12, []float64(p.AbsolutePosition(0)), []float64{9, 10, 10})
}

func TestTryScalingDetectsOverlapOnShrink(tst *testing.T) {
	chk.PrintTitle("TryScalingDetectsOverlapOnShrink")

	p := twoSpherePacking(3)
	tinyBox := box.Cubic(2.5)
	if !p.TryScaling(tinyBox, geom.Vector3{0.125, 0.125, 0.125}) {
		tst.Fatalf("expected shrinking the box to bring spheres into overlap")
	}
}

func TestTotalEnergyIsZeroForHardSpheres(tst *testing.T) {
	chk.PrintTitle("TotalEnergyIsZeroForHardSpheres")

	p := twoSpherePacking(3)
	chk.Scalar(tst, "total energy", 1e-15, p.TotalEnergy(), 0)
}
