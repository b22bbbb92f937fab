// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boxscaler implements concrete TriclinicBoxScaler strategies for
// NpT box-volume trial moves.
package boxscaler

import (
	"math"
	"math/rand"

	"github.com/pkua007/rampack/box"
)

// Isotropic scales all three box axes by the same factor, sampled so that
// the logarithm of the volume performs a uniform random walk - the
// standard choice for an NpT volume move, since it samples volume space
// with constant relative step regardless of the current volume.
type Isotropic struct {
	StepSize float64
}

// SampleBox implements core.TriclinicBoxScaler.
func (i *Isotropic) SampleBox(current box.Box, stepSize float64, prng *rand.Rand) box.Box {
	logVolume := math.Log(current.Volume())
	logVolume += (prng.Float64()*2 - 1) * stepSize
	newVolume := math.Exp(logVolume)
	factor := math.Cbrt(newVolume / current.Volume())
	return current.Scale(factor, factor, factor)
}

// RegisterResult implements core.TriclinicBoxScaler.
func (i *Isotropic) RegisterResult(accepted bool) {}

// GetStepSize implements core.TriclinicBoxScaler.
func (i *Isotropic) GetStepSize() float64 { return i.StepSize }

// SetStepSize implements core.TriclinicBoxScaler.
func (i *Isotropic) SetStepSize(stepSize float64) { i.StepSize = stepSize }
