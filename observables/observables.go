// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observables implements ObservablesCollector, which samples scalar
// quantities from a packing snapshot over the course of a run and
// accumulates their running averages.
package observables

import "github.com/pkua007/rampack/box"

// Snapshot is the minimal packing view an Observable needs.
type Snapshot interface {
	NumParticles() int
	Box() box.Box
	TotalEnergy() float64
}

// Observable computes one named scalar quantity from a Snapshot.
type Observable interface {
	Name() string
	Value(snapshot Snapshot) float64
}

// PackingFraction is the fraction of box volume occupied by particles; it
// needs the particle volume since Snapshot does not expose shapes
// directly.
type PackingFraction struct {
	ParticleVolume float64
}

// Name implements Observable.
func (PackingFraction) Name() string { return "packingFraction" }

// Value implements Observable.
func (p PackingFraction) Value(snapshot Snapshot) float64 {
	return float64(snapshot.NumParticles()) * p.ParticleVolume / snapshot.Box().Volume()
}

// Energy reports the packing's total pairwise interaction energy.
type Energy struct{}

// Name implements Observable.
func (Energy) Name() string { return "energy" }

// Value implements Observable.
func (Energy) Value(snapshot Snapshot) float64 { return snapshot.TotalEnergy() }

// Volume reports the current box volume.
type Volume struct{}

// Name implements Observable.
func (Volume) Name() string { return "volume" }

// Value implements Observable.
func (Volume) Value(snapshot Snapshot) float64 { return snapshot.Box().Volume() }

// Collector samples a fixed set of Observables on every call to Sample and
// tracks their running history, the way a thermalised-run average is
// accumulated cycle by cycle.
type Collector struct {
	observables []Observable
	running     map[string][]float64
}

// NewCollector builds a Collector sampling the given observables.
func NewCollector(observables []Observable) *Collector {
	running := make(map[string][]float64, len(observables))
	for _, o := range observables {
		running[o.Name()] = nil
	}
	return &Collector{observables: observables, running: running}
}

// Sample evaluates every registered observable against snapshot and
// appends the result to its running history.
func (c *Collector) Sample(snapshot Snapshot) {
	for _, o := range c.observables {
		name := o.Name()
		c.running[name] = append(c.running[name], o.Value(snapshot))
	}
}

// Average returns the arithmetic mean of every sample recorded so far for
// the named observable; the bool is false if that observable is not
// registered or has no samples yet.
func (c *Collector) Average(name string) (float64, bool) {
	history, ok := c.running[name]
	if !ok || len(history) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range history {
		sum += v
	}
	return sum / float64(len(history)), true
}

// History returns every sample recorded so far for the named observable.
func (c *Collector) History(name string) []float64 {
	return c.running[name]
}
