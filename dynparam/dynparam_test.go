// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynparam

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

const noTotal = 1000000

func TestConstant(tst *testing.T) {
	chk.PrintTitle("Constant")
	c := Constant{Value: 2.5}
	chk.Scalar(tst, "cycle 0", 1e-15, c.GetValueForCycle(0, noTotal), 2.5)
	chk.Scalar(tst, "cycle 1000", 1e-15, c.GetValueForCycle(1000, noTotal), 2.5)
}

func TestLinear(tst *testing.T) {
	chk.PrintTitle("Linear")
	l := Linear{Initial: 1, Slope: 0.1}
	chk.Scalar(tst, "cycle 0", 1e-15, l.GetValueForCycle(0, noTotal), 1)
	chk.Scalar(tst, "cycle 10", 1e-15, l.GetValueForCycle(10, noTotal), 2)
}

func TestExponential(tst *testing.T) {
	chk.PrintTitle("Exponential")
	e := Exponential{Initial: 1, Ultimate: 0, Rate: 1}
	chk.Scalar(tst, "cycle 0", 1e-15, e.GetValueForCycle(0, noTotal), 1)
	if e.GetValueForCycle(1000, noTotal) >= 0.01 {
		tst.Fatalf("expected exponential to have decayed close to its ultimate value")
	}
}

func TestShiftedClampsBeforeShift(tst *testing.T) {
	chk.PrintTitle("ShiftedClampsBeforeShift")
	s := NewShifted(Linear{Initial: 0, Slope: 1}, 100)
	chk.Scalar(tst, "cycle 0", 1e-15, s.GetValueForCycle(0, 1100), 0)
	chk.Scalar(tst, "cycle 99", 1e-15, s.GetValueForCycle(99, 1100), 0)
	chk.Scalar(tst, "cycle 100", 1e-15, s.GetValueForCycle(100, 1100), 0)
	chk.Scalar(tst, "cycle 110", 1e-15, s.GetValueForCycle(110, 1100), 10)
}

func TestPiecewiseDispatch(tst *testing.T) {
	chk.PrintTitle("PiecewiseDispatch")
	p := NewPiecewise(
		[]int{0, 50, 100},
		[]Parameter{Constant{Value: 1}, Constant{Value: 2}, Constant{Value: 3}},
	)
	chk.Scalar(tst, "cycle 0", 1e-15, p.GetValueForCycle(0, 1000), 1)
	chk.Scalar(tst, "cycle 49", 1e-15, p.GetValueForCycle(49, 1000), 1)
	chk.Scalar(tst, "cycle 50", 1e-15, p.GetValueForCycle(50, 1000), 2)
	chk.Scalar(tst, "cycle 99", 1e-15, p.GetValueForCycle(99, 1000), 2)
	chk.Scalar(tst, "cycle 100", 1e-15, p.GetValueForCycle(100, 1000), 3)
	chk.Scalar(tst, "cycle 10000", 1e-15, p.GetValueForCycle(10000, 1000), 3)
}

func TestPiecewiseRejectsNonAscendingStarts(tst *testing.T) {
	chk.PrintTitle("PiecewiseRejectsNonAscendingStarts")
	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected NewPiecewise to panic on non-ascending starts")
		}
	}()
	NewPiecewise(
		[]int{0, 100, 50},
		[]Parameter{Constant{Value: 1}, Constant{Value: 3}, Constant{Value: 2}},
	)
}

func TestPiecewiseLinearPieces(tst *testing.T) {
	chk.PrintTitle("PiecewiseLinearPieces")
	p := NewPiecewise(
		[]int{0, 10},
		[]Parameter{Linear{Initial: 0, Slope: 1}, Linear{Initial: 100, Slope: 2}},
	)
	chk.Scalar(tst, "cycle 5", 1e-15, p.GetValueForCycle(5, 20), 5)
	chk.Scalar(tst, "cycle 10", 1e-15, p.GetValueForCycle(10, 20), 100)
	chk.Scalar(tst, "cycle 12", 1e-15, p.GetValueForCycle(12, 20), 104)
}

// TestPiecewiseThreadsTotalCyclesThroughShift exercises the worked example
// where a second piece starting at cycle 300 must see (k-300, N-300).
func TestPiecewiseThreadsTotalCyclesThroughShift(tst *testing.T) {
	chk.PrintTitle("PiecewiseThreadsTotalCyclesThroughShift")
	p := NewPiecewise(
		[]int{0, 300},
		[]Parameter{Constant{Value: 1}, Linear{Initial: 0, Slope: 1}},
	)
	// at cycle 305 with totalCycles 1000, the second piece sees
	// cycle=5, totalCycles=700
	chk.Scalar(tst, "cycle 305", 1e-15, p.GetValueForCycle(305, 1000), 5)
}
