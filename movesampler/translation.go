// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package movesampler implements the concrete MoveSampler strategies:
// uniform translation within a cube, small-angle rotation about a random
// axis, and their combination.
package movesampler

import (
	"math"
	"math/rand"

	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/geom"
)

// Translation samples a uniform random displacement within a cube of side
// 2*StepSize centred on the particle's current position.
type Translation struct {
	StepSize float64
}

// Sample implements core.MoveSampler.
func (t *Translation) Sample(idx int, position geom.Vector3, orientation geom.Matrix3, prng *rand.Rand) core.MoveData {
	displacement := geom.Vector3{
		(prng.Float64()*2 - 1) * t.StepSize,
		(prng.Float64()*2 - 1) * t.StepSize,
		(prng.Float64()*2 - 1) * t.StepSize,
	}
	return core.MoveData{
		ParticleIdx:    idx,
		Type:           core.MoveTranslation,
		NewPosition:    position.Add(displacement),
		NewOrientation: orientation,
	}
}

// RegisterResult implements core.MoveSampler; Translation does not adapt on
// its own (the driver calls SetStepSize instead).
func (t *Translation) RegisterResult(accepted bool) {}

// GetStepSize implements core.MoveSampler.
func (t *Translation) GetStepSize() float64 { return t.StepSize }

// SetStepSize implements core.MoveSampler.
func (t *Translation) SetStepSize(stepSize float64) { t.StepSize = stepSize }

// randomUnitVector draws a uniformly distributed unit vector using the
// Marsaglia method.
func randomUnitVector(prng *rand.Rand) geom.Vector3 {
	for {
		x1 := prng.Float64()*2 - 1
		x2 := prng.Float64()*2 - 1
		s := x1*x1 + x2*x2
		if s >= 1 {
			continue
		}
		factor := 2 * math.Sqrt(1-s)
		return geom.Vector3{x1 * factor, x2 * factor, 1 - 2*s}
	}
}
