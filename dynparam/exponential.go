// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynparam

import "math"

// Exponential decays (or grows) geometrically towards Ultimate with the
// given per-cycle rate: value = Ultimate + (Initial-Ultimate)*exp(-Rate*cycle).
type Exponential struct {
	Initial  float64
	Ultimate float64
	Rate     float64
}

// GetValueForCycle implements Parameter.
func (e Exponential) GetValueForCycle(cycle, totalCycles int) float64 {
	return e.Ultimate + (e.Initial-e.Ultimate)*math.Exp(-e.Rate*float64(cycle))
}
