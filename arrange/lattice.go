// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrange builds initial particle configurations - regular lattices
// sized to fit a requested number of particles without overlap - used to
// seed a Simulation before an overlap-relaxation run.
package arrange

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/geom"
)

// SimpleCubic arranges numParticles on a simple cubic lattice with the
// given spacing, packed into the smallest cube-ish orthorhombic box that
// holds them, and returns that box together with each particle's position.
// numParticles need not be a perfect cube; the lattice is filled row-major
// and any incomplete final layer is left partially filled.
func SimpleCubic(numParticles int, spacing float64) (box.Box, []geom.Vector3) {
	if numParticles <= 0 {
		chk.Panic("arrange: SimpleCubic: numParticles must be positive, got %d", numParticles)
	}
	if spacing <= 0 {
		chk.Panic("arrange: SimpleCubic: spacing must be positive, got %g", spacing)
	}

	cellsPerAxis := int(math.Ceil(math.Cbrt(float64(numParticles))))
	side := float64(cellsPerAxis) * spacing
	b := box.Cubic(side)

	positions := make([]geom.Vector3, numParticles)
	idx := 0
outer:
	for iz := 0; iz < cellsPerAxis; iz++ {
		for iy := 0; iy < cellsPerAxis; iy++ {
			for ix := 0; ix < cellsPerAxis; ix++ {
				if idx >= numParticles {
					break outer
				}
				positions[idx] = geom.Vector3{
					(float64(ix) + 0.5) * spacing,
					(float64(iy) + 0.5) * spacing,
					(float64(iz) + 0.5) * spacing,
				}
				idx++
			}
		}
	}
	return b, positions
}

// Orthorhombic arranges dimensions[0]*dimensions[1]*dimensions[2] particles
// on a simple cubic lattice with independent per-axis spacing, filling a box
// exactly that size with no slack - useful for close-packed initial
// configurations prior to an NpT compression run.
func Orthorhombic(dimensions [3]int, spacing [3]float64) (box.Box, []geom.Vector3) {
	for i := 0; i < 3; i++ {
		if dimensions[i] <= 0 {
			chk.Panic("arrange: Orthorhombic: dimensions[%d] must be positive, got %d", i, dimensions[i])
		}
		if spacing[i] <= 0 {
			chk.Panic("arrange: Orthorhombic: spacing[%d] must be positive, got %g", i, spacing[i])
		}
	}

	b := box.Orthorhombic(
		float64(dimensions[0])*spacing[0],
		float64(dimensions[1])*spacing[1],
		float64(dimensions[2])*spacing[2],
	)

	total := dimensions[0] * dimensions[1] * dimensions[2]
	positions := make([]geom.Vector3, 0, total)
	for iz := 0; iz < dimensions[2]; iz++ {
		for iy := 0; iy < dimensions[1]; iy++ {
			for ix := 0; ix < dimensions[0]; ix++ {
				positions = append(positions, geom.Vector3{
					(float64(ix) + 0.5) * spacing[0],
					(float64(iy) + 0.5) * spacing[1],
					(float64(iz) + 0.5) * spacing[2],
				})
			}
		}
	}
	return b, positions
}
