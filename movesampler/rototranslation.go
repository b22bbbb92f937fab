// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package movesampler

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/geom"
)

// Rototranslation combines a Translation and a Rotation move into a single
// trial, deriving the rotation's angular step from the translation step
// size and a characteristic shape radius, so a single adapted step size
// drives both. This keeps the two sub-moves' acceptance rates coupled: a
// shape that rejects most large translations also gets smaller rotations.
type Rototranslation struct {
	translation Translation
	rotation    Rotation
	// characteristicRadius is the shape-dependent arm length over which a
	// rotation is compared to a translation of the same step size.
	characteristicRadius float64
}

// NewRototranslation builds a Rototranslation sampler for a shape whose
// farthest point from its centre is roughly characteristicRadius away,
// starting at the given translation step size.
func NewRototranslation(initialStepSize, characteristicRadius float64) *Rototranslation {
	if characteristicRadius <= 0 {
		chk.Panic("movesampler: NewRototranslation: characteristicRadius must be positive, got %g", characteristicRadius)
	}
	r := &Rototranslation{characteristicRadius: characteristicRadius}
	r.SetStepSize(initialStepSize)
	return r
}

// Sample implements core.MoveSampler: it composes the translation and
// rotation sub-moves into one.
func (r *Rototranslation) Sample(idx int, position geom.Vector3, orientation geom.Matrix3, prng *rand.Rand) core.MoveData {
	translated := r.translation.Sample(idx, position, orientation, prng)
	rotated := r.rotation.Sample(idx, translated.NewPosition, translated.NewOrientation, prng)
	rotated.Type = core.MoveRototranslation
	return rotated
}

// RegisterResult implements core.MoveSampler.
func (r *Rototranslation) RegisterResult(accepted bool) {
	r.translation.RegisterResult(accepted)
	r.rotation.RegisterResult(accepted)
}

// GetStepSize implements core.MoveSampler, returning the translation step
// size; the rotation step is always kept derived from it.
func (r *Rototranslation) GetStepSize() float64 {
	return r.translation.StepSize
}

// SetStepSize implements core.MoveSampler. The rotation angle amplitude is
// recomputed so that a chord of length stepSize across characteristicRadius
// subtends it: solving 2*R*sin(angle/2) = stepSize for angle gives
// angle = 2*asin(stepSize/(2*R)), with the asin argument clamped to at
// most 1.
func (r *Rototranslation) SetStepSize(stepSize float64) {
	r.translation.StepSize = stepSize
	halfChordRatio := stepSize / (2 * r.characteristicRadius)
	if halfChordRatio > 1 {
		halfChordRatio = 1
	}
	r.rotation.StepSize = 2 * math.Asin(halfChordRatio)
}
