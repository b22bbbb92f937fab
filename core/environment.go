// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/pkua007/rampack/dynparam"

// Environment holds the thermodynamic conditions (temperature, pressure)
// a Simulation run is driven under. Any field may be left nil, representing
// "not specified here"; Combine lets a run-specific Environment override
// only the fields it sets, falling back to a base Environment for the rest.
type Environment struct {
	Temperature dynparam.Parameter
	Pressure    dynparam.Parameter
}

// Combine returns an Environment with every field of override that is
// non-nil, and every other field falling back to the corresponding field
// of e. Neither e nor override is mutated.
func (e Environment) Combine(override Environment) Environment {
	result := e
	if override.Temperature != nil {
		result.Temperature = override.Temperature
	}
	if override.Pressure != nil {
		result.Pressure = override.Pressure
	}
	return result
}

// IsComplete reports whether every field required to run a simulation has
// been specified.
func (e Environment) IsComplete() bool {
	return e.Temperature != nil && e.Pressure != nil
}

// MissingFields returns the names of the fields IsComplete found missing,
// for error reporting.
func (e Environment) MissingFields() []string {
	var missing []string
	if e.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if e.Pressure == nil {
		missing = append(missing, "pressure")
	}
	return missing
}
