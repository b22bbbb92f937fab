// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynparam implements cycle-indexed scalar schedules used to vary
// Monte Carlo move parameters (step sizes, temperature, pressure) over the
// course of a simulation.
package dynparam

// Parameter evaluates to a scalar value for a given, non-negative, Monte
// Carlo cycle index out of a given total cycle count for the run.
type Parameter interface {
	GetValueForCycle(cycle, totalCycles int) float64
}

// Constant always evaluates to the same value.
type Constant struct {
	Value float64
}

// GetValueForCycle implements Parameter.
func (c Constant) GetValueForCycle(cycle, totalCycles int) float64 {
	return c.Value
}

// Linear interpolates linearly in cycle: value = Initial + Slope*cycle.
type Linear struct {
	Initial float64
	Slope   float64
}

// GetValueForCycle implements Parameter.
func (l Linear) GetValueForCycle(cycle, totalCycles int) float64 {
	return l.Initial + l.Slope*float64(cycle)
}
