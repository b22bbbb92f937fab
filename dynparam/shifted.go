// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynparam

import "github.com/cpmech/gosl/chk"

// Shifted translates both the cycle index and the total cycle count before
// delegating to an underlying parameter: cycles below Shift are clamped to
// 0, so the wrapped parameter only ever sees (cycle-Shift, totalCycles-Shift)
// for cycle >= Shift.
type Shifted struct {
	Underlying Parameter
	Shift      int
}

// NewShifted builds a Shifted parameter. It panics if shift is negative.
func NewShifted(underlying Parameter, shift int) Shifted {
	if shift < 0 {
		chk.Panic("dynparam: NewShifted: shift must be non-negative, got %d", shift)
	}
	return Shifted{Underlying: underlying, Shift: shift}
}

// GetValueForCycle implements Parameter.
func (s Shifted) GetValueForCycle(cycle, totalCycles int) float64 {
	if cycle < s.Shift {
		return s.Underlying.GetValueForCycle(0, totalCycles-s.Shift)
	}
	return s.Underlying.GetValueForCycle(cycle-s.Shift, totalCycles-s.Shift)
}
