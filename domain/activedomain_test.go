// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestActiveDomainIsInsidePlainInterval(tst *testing.T) {
	chk.PrintTitle("ActiveDomainIsInsidePlainInterval")

	a := NewActiveDomain([3]float64{0.2, 0.2, 0.2}, [3]float64{0.6, 0.6, 0.6})
	if !a.IsInside([3]float64{0.3, 0.3, 0.3}) {
		tst.Fatal("expected interior point to be inside")
	}
	if a.IsInside([3]float64{0.9, 0.3, 0.3}) {
		tst.Fatal("expected point outside x range to be outside")
	}
}

func TestActiveDomainIsInsideWrapOrder(tst *testing.T) {
	chk.PrintTitle("ActiveDomainIsInsideWrapOrder")

	// x axis wraps through the periodic boundary: [0.9, 1) union [0, 0.1)
	a := NewActiveDomain([3]float64{0.9, 0, 0}, [3]float64{0.1, 1, 1})
	if !a.IsInside([3]float64{0.95, 0.5, 0.5}) {
		tst.Fatal("expected point past the seam to be inside")
	}
	if !a.IsInside([3]float64{0.05, 0.5, 0.5}) {
		tst.Fatal("expected point just after the seam to be inside")
	}
	if a.IsInside([3]float64{0.5, 0.5, 0.5}) {
		tst.Fatal("expected middle point to be outside a wrap-order domain")
	}
}

func TestActiveDomainIntersectDisjoint(tst *testing.T) {
	chk.PrintTitle("ActiveDomainIntersectDisjoint")

	a := NewActiveDomain([3]float64{0, 0, 0}, [3]float64{0.2, 1, 1})
	b := NewActiveDomain([3]float64{0.5, 0, 0}, [3]float64{0.7, 1, 1})
	_, ok := a.Intersect(b)
	if ok {
		tst.Fatal("expected disjoint domains not to intersect")
	}
}

func TestActiveDomainIntersectOverlapping(tst *testing.T) {
	chk.PrintTitle("ActiveDomainIntersectOverlapping")

	a := NewActiveDomain([3]float64{0, 0, 0}, [3]float64{0.5, 1, 1})
	b := NewActiveDomain([3]float64{0.3, 0, 0}, [3]float64{0.8, 1, 1})
	result, ok := a.Intersect(b)
	if !ok {
		tst.Fatal("expected overlapping domains to intersect")
	}
	chk.Scalar(tst, "begin.x", 1e-12, result.Begin()[0], 0.3)
	chk.Scalar(tst, "end.x", 1e-12, result.End()[0], 0.5)
}
