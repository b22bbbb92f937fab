// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynparam

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// piece is one segment of a Piecewise schedule: from StartCycle onward,
// until the next piece's StartCycle, Underlying governs the value, itself
// shifted so it sees cycle 0 at StartCycle.
type piece struct {
	startCycle int
	shifted    Shifted
}

// Piecewise dispatches to one of several sub-parameters depending on which
// cycle range the queried cycle falls in. Pieces are supplied as (start
// cycle, parameter) pairs and must already be given in strictly ascending
// order of start cycle.
type Piecewise struct {
	pieces []piece
}

// NewPiecewise builds a Piecewise parameter from (startCycle, parameter)
// pairs, given in strictly ascending order of startCycle. It panics if
// fewer than one piece is given, if any startCycle is negative, if the
// starts are not strictly ascending (including duplicates), or if the
// piece starting at cycle 0 is missing.
func NewPiecewise(starts []int, parameters []Parameter) Piecewise {
	if len(starts) != len(parameters) {
		chk.Panic("dynparam: NewPiecewise: starts and parameters must have equal length")
	}
	if len(starts) == 0 {
		chk.Panic("dynparam: NewPiecewise: at least one piece is required")
	}

	if starts[0] != 0 {
		chk.Panic("dynparam: NewPiecewise: first piece must start at cycle 0")
	}
	for i := range starts {
		if starts[i] < 0 {
			chk.Panic("dynparam: NewPiecewise: start cycle must be non-negative, got %d", starts[i])
		}
		if i > 0 && starts[i] <= starts[i-1] {
			chk.Panic("dynparam: NewPiecewise: start cycles must be strictly ascending, got %d after %d",
				starts[i], starts[i-1])
		}
	}

	result := make([]piece, len(starts))
	for i := range starts {
		result[i] = piece{startCycle: starts[i], shifted: NewShifted(parameters[i], starts[i])}
	}
	return Piecewise{pieces: result}
}

// GetValueForCycle implements Parameter. It finds the last piece whose
// startCycle does not exceed cycle, mirroring an upper_bound lookup over
// sorted start cycles, and passes the shifted (cycle, totalCycles) pair on
// to that piece's parameter.
func (p Piecewise) GetValueForCycle(cycle, totalCycles int) float64 {
	idx := sort.Search(len(p.pieces), func(i int) bool {
		return p.pieces[i].startCycle > cycle
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return p.pieces[idx].shifted.GetValueForCycle(cycle, totalCycles)
}
