// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boxscaler

import (
	"math/rand"

	"github.com/pkua007/rampack/box"
)

// Independent scales the three orthorhombic axes independently, each by its
// own uniform random factor, allowing the box shape to relax anisotropically.
type Independent struct {
	StepSize float64
}

// SampleBox implements core.TriclinicBoxScaler.
func (ind *Independent) SampleBox(current box.Box, stepSize float64, prng *rand.Rand) box.Box {
	randomFactor := func() float64 {
		return 1 + (prng.Float64()*2-1)*stepSize
	}
	return current.Scale(randomFactor(), randomFactor(), randomFactor())
}

// RegisterResult implements core.TriclinicBoxScaler.
func (ind *Independent) RegisterResult(accepted bool) {}

// GetStepSize implements core.TriclinicBoxScaler.
func (ind *Independent) GetStepSize() float64 { return ind.StepSize }

// SetStepSize implements core.TriclinicBoxScaler.
func (ind *Independent) SetStepSize(stepSize float64) { ind.StepSize = stepSize }
