// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interaction

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestHardSphereRangeRadii(tst *testing.T) {
	chk.PrintTitle("HardSphereRangeRadii")

	h := HardSphere{MaxRadius: 0.5, MaxMoveRadius: 0.1}
	chk.Scalar(tst, "RangeRadius", 1e-15, h.RangeRadius(), 1)
	chk.Scalar(tst, "TotalRangeRadius", 1e-15, h.TotalRangeRadius(), 1.2)
}
