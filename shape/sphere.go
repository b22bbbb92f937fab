// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements concrete rigid-body Shape descriptions.
package shape

import "math"

// Sphere is an isotropic rigid sphere; orientation is irrelevant to its
// geometry but is still tracked by the packing so that non-spherical
// interactions (patchy potentials, say) could be layered on top.
type Sphere struct {
	Radius float64
}

// Volume implements core.Shape.
func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}
