// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movesampler

import (
	"math/rand"

	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/geom"
)

// Rotation samples a small rotation about a uniformly random axis, by an
// angle uniform in [-StepSize, StepSize] radians.
type Rotation struct {
	StepSize float64
}

// Sample implements core.MoveSampler.
func (r *Rotation) Sample(idx int, position geom.Vector3, orientation geom.Matrix3, prng *rand.Rand) core.MoveData {
	axis := randomUnitVector(prng)
	angle := (prng.Float64()*2 - 1) * r.StepSize
	delta := geom.Rotation(axis, angle)
	return core.MoveData{
		ParticleIdx:    idx,
		Type:           core.MoveRotation,
		NewPosition:    position,
		NewOrientation: geom.FixRotationMatrix(delta.Mul(orientation)),
	}
}

// RegisterResult implements core.MoveSampler.
func (r *Rotation) RegisterResult(accepted bool) {}

// GetStepSize implements core.MoveSampler.
func (r *Rotation) GetStepSize() float64 { return r.StepSize }

// SetStepSize implements core.MoveSampler.
func (r *Rotation) SetStepSize(stepSize float64) { r.StepSize = stepSize }
