// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/dynparam"
)

func TestEnvironmentCombineOverridesOnlySetFields(tst *testing.T) {
	chk.PrintTitle("EnvironmentCombineOverridesOnlySetFields")

	base := Environment{
		Temperature: dynparam.Constant{Value: 1},
		Pressure:    dynparam.Constant{Value: 2},
	}
	override := Environment{Pressure: dynparam.Constant{Value: 5}}

	combined := base.Combine(override)
	chk.Scalar(tst, "temperature", 1e-15, combined.Temperature.GetValueForCycle(0, 100), 1)
	chk.Scalar(tst, "pressure", 1e-15, combined.Pressure.GetValueForCycle(0, 100), 5)
}

func TestEnvironmentIsCompleteReportsMissingFields(tst *testing.T) {
	chk.PrintTitle("EnvironmentIsCompleteReportsMissingFields")

	var empty Environment
	if empty.IsComplete() {
		tst.Fatalf("expected an empty Environment to be incomplete")
	}
	missing := empty.MissingFields()
	if len(missing) != 2 {
		tst.Fatalf("expected 2 missing fields, got %v", missing)
	}

	withTemperature := Environment{Temperature: dynparam.Constant{Value: 1}}
	if withTemperature.IsComplete() {
		tst.Fatalf("expected Environment with only temperature to be incomplete")
	}
}

func TestCounterAcceptanceRate(tst *testing.T) {
	chk.PrintTitle("CounterAcceptanceRate")

	var c Counter
	for i := 0; i < 10; i++ {
		c.RegisterMove(i < 3)
	}
	chk.Scalar(tst, "acceptance rate", 1e-15, c.AcceptanceRate(), 0.3)
	chk.IntAssert(int(c.Moves()), 10)
	chk.IntAssert(int(c.Accepted()), 3)

	c.Reset()
	chk.Scalar(tst, "acceptance rate after reset", 1e-15, c.AcceptanceRate(), 0)
}
