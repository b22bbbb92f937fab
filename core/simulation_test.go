// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/domain"
	"github.com/pkua007/rampack/dynparam"
	"github.com/pkua007/rampack/geom"
)

// fakePacking is a minimal in-memory Packing that never overlaps, enough to
// exercise the Simulation cycle loop end to end.
type fakePacking struct {
	b             box.Box
	positions     []geom.Vector3
	orientations  []geom.Matrix3
	staged        MoveData
	stagedScaling box.Box
}

func newFakePacking(n int) *fakePacking {
	p := &fakePacking{b: box.Cubic(10)}
	for i := 0; i < n; i++ {
		p.positions = append(p.positions, geom.Vector3{float64(i), 0, 0})
		p.orientations = append(p.orientations, geom.Identity3())
	}
	return p
}

func (p *fakePacking) NumParticles() int { return len(p.positions) }
func (p *fakePacking) ParticlePosition(idx int) [3]float64 {
	return [3]float64(p.positions[idx])
}
func (p *fakePacking) ParticleOrientation(idx int) geom.Matrix3 { return p.orientations[idx] }
func (p *fakePacking) Box() box.Box                             { return p.b }

func (p *fakePacking) TryMove(move MoveData) bool {
	p.staged = move
	return false
}

func (p *fakePacking) CommitMove(move MoveData) {
	p.positions[move.ParticleIdx] = move.NewPosition
	p.orientations[move.ParticleIdx] = move.NewOrientation
}

func (p *fakePacking) TryScaling(newBox box.Box, scalingFactor geom.Vector3) bool {
	p.stagedScaling = newBox
	return false
}

func (p *fakePacking) CommitScaling(newBox box.Box) { p.b = newBox }
func (p *fakePacking) TotalEnergy() float64         { return 0 }
func (p *fakePacking) Decomposition() *domain.Decomposition { return nil }
func (p *fakePacking) RangeRadius() float64                { return 1 }
func (p *fakePacking) TotalRangeRadius() float64            { return 1 }
func (p *fakePacking) NeighbourGridCellDivisions() [3]int   { return [3]int{1, 1, 1} }

type identitySampler struct {
	step float64
}

func (s *identitySampler) Sample(idx int, position geom.Vector3, orientation geom.Matrix3, prng *rand.Rand) MoveData {
	return MoveData{ParticleIdx: idx, Type: MoveTranslation, NewPosition: position, NewOrientation: orientation}
}
func (s *identitySampler) RegisterResult(accepted bool) {}
func (s *identitySampler) GetStepSize() float64         { return s.step }
func (s *identitySampler) SetStepSize(step float64)     { s.step = step }

func TestSimulationRunPerformsRequestedCycles(tst *testing.T) {
	chk.PrintTitle("SimulationRunPerformsRequestedCycles")

	packing := newFakePacking(5)
	env := Environment{
		Temperature: dynparam.Constant{Value: 1},
		Pressure:    dynparam.Constant{Value: 1},
	}
	sim := NewSimulation(packing, env, 42, Logger{})
	sim.AddMoveSampler(MoveTranslation, &identitySampler{step: 0.1}, 1)

	performed, err := sim.Run(context.Background(), 50, ModeIntegrate)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(int(performed), 50)
	chk.IntAssert(int(sim.CyclesPerformed()), 50)
}

func TestSimulationCancelStopsEarly(tst *testing.T) {
	chk.PrintTitle("SimulationCancelStopsEarly")

	packing := newFakePacking(3)
	env := Environment{
		Temperature: dynparam.Constant{Value: 1},
		Pressure:    dynparam.Constant{Value: 1},
	}
	sim := NewSimulation(packing, env, 7, Logger{})
	sim.AddMoveSampler(MoveTranslation, &identitySampler{step: 0.1}, 1)
	sim.Cancel()

	performed, err := sim.Run(context.Background(), 100, ModeIntegrate)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(int(performed), 0)
}
