// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observables

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
)

type fakeSnapshot struct {
	n      int
	b      box.Box
	energy float64
}

func (f fakeSnapshot) NumParticles() int  { return f.n }
func (f fakeSnapshot) Box() box.Box       { return f.b }
func (f fakeSnapshot) TotalEnergy() float64 { return f.energy }

func TestPackingFractionValue(tst *testing.T) {
	chk.PrintTitle("PackingFractionValue")

	snap := fakeSnapshot{n: 10, b: box.Cubic(10)}
	pf := PackingFraction{ParticleVolume: 50}
	chk.Scalar(tst, "packing fraction", 1e-12, pf.Value(snap), 0.5)
}

func TestCollectorAveragesHistory(tst *testing.T) {
	chk.PrintTitle("CollectorAveragesHistory")

	c := NewCollector([]Observable{Volume{}, Energy{}})
	c.Sample(fakeSnapshot{n: 1, b: box.Cubic(2), energy: 1})
	c.Sample(fakeSnapshot{n: 1, b: box.Cubic(4), energy: 3})

	avg, ok := c.Average("volume")
	if !ok {
		tst.Fatalf("expected volume observable to be registered")
	}
	chk.Scalar(tst, "average volume", 1e-9, avg, (8.0+64.0)/2)

	history := c.History("energy")
	chk.IntAssert(len(history), 2)
}
