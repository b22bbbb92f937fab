// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"math"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/pkua007/rampack/geom"
)

// RunMode selects what a Simulation cycle performs. In every mode a
// particle move is rejected only when it creates an overlap; soft
// interaction energy is not evaluated for particle moves.
type RunMode int

const (
	// ModeRelaxOverlaps performs particle moves only, with no box-scaling
	// attempts, to pull an initial configuration out of a high-overlap
	// state.
	ModeRelaxOverlaps RunMode = iota
	// ModeIntegrate performs particle moves followed by NpT box-scaling
	// attempts. It has no separate thermalisation phase and collects no
	// observables.
	ModeIntegrate
)

// moveEntry pairs a MoveSampler with the move type it is responsible for
// and its relative attempt frequency within a cycle.
type moveEntry struct {
	moveType MoveType
	sampler  MoveSampler
	weight   float64
	counter  Counter
}

// Simulation drives a Packing through Monte Carlo cycles: particle moves,
// box-scaling attempts, step-size adaptation and periodic orientation
// re-orthonormalisation.
type Simulation struct {
	packing     Packing
	environment Environment
	logger      Logger

	moves            []moveEntry
	boxScaler        TriclinicBoxScaler
	scalingCounter   Counter
	scalingFrequency float64 // attempts per cycle, e.g. 1/numParticles

	seed int
	rngs []*rand.Rand // one per domain, or a single entry if not decomposed

	cycle       int64
	totalCycles int64 // total cycles requested by the in-progress Run call
	cancelled   int32
	cycleCount  int64 // observable: total cycles performed across Run calls

	adaptationEnabled      bool
	orthonormalizeInterval int64
}

// NewSimulation builds a simulation driver over packing. seed initialises
// the per-domain pseudo-random generators deterministically: running with
// the same seed and the same sequence of Run calls reproduces the same
// trajectory of accept/reject decisions.
func NewSimulation(packing Packing, environment Environment, seed int, logger Logger) *Simulation {
	numDomains := 1
	if decomposition := packing.Decomposition(); decomposition != nil {
		numDomains = decomposition.NumDomains()
	}
	rngs := make([]*rand.Rand, numDomains)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(int64(seed) + int64(i)*0x9e3779b9))
	}

	return &Simulation{
		packing:                packing,
		environment:            environment,
		logger:                 logger,
		seed:                   seed,
		rngs:                   rngs,
		adaptationEnabled:      true,
		orthonormalizeInterval: 1000,
	}
}

// AddMoveSampler registers sampler to propose moves of the given type with
// relative attempt weight among the registered samplers.
func (s *Simulation) AddMoveSampler(moveType MoveType, sampler MoveSampler, weight float64) {
	s.moves = append(s.moves, moveEntry{moveType: moveType, sampler: sampler, weight: weight})
}

// SetBoxScaler registers the scaler used for volume-change moves. frequency
// is the probability of a scaling attempt in each cycle: 1 attempts scaling
// every cycle, 1/numParticles once every numParticles cycles on average.
func (s *Simulation) SetBoxScaler(scaler TriclinicBoxScaler, frequency float64) {
	s.boxScaler = scaler
	s.scalingFrequency = frequency
}

// SetAdaptationEnabled turns step-size adaptation on or off. It is active
// during overlap relaxation and thermalisation, and should be turned off for
// an averaging phase whose observables must be collected at a fixed step
// size.
func (s *Simulation) SetAdaptationEnabled(enabled bool) {
	s.adaptationEnabled = enabled
}

// Cancel requests that Run stop at the next cycle boundary. Safe to call
// concurrently, typically from a signal handler.
func (s *Simulation) Cancel() {
	atomic.StoreInt32(&s.cancelled, 1)
}

func (s *Simulation) isCancelled() bool {
	return atomic.LoadInt32(&s.cancelled) != 0
}

// CyclesPerformed returns the total number of cycles completed across every
// Run call on this Simulation.
func (s *Simulation) CyclesPerformed() int64 {
	return atomic.LoadInt64(&s.cycleCount)
}

// Run performs up to numCycles cycles in the given mode, stopping early if
// the context is cancelled or Cancel is called. It returns the number of
// cycles actually performed.
func (s *Simulation) Run(ctx context.Context, numCycles int64, mode RunMode) (int64, error) {
	s.totalCycles = numCycles

	var performed int64
	for performed = 0; performed < numCycles; performed++ {
		if s.isCancelled() {
			break
		}
		select {
		case <-ctx.Done():
			return performed, ctx.Err()
		default:
		}

		if err := s.performCycle(ctx, mode); err != nil {
			return performed, err
		}
		s.cycle++
		atomic.AddInt64(&s.cycleCount, 1)

		if s.adaptationEnabled {
			s.adaptStepSizes()
		}
		if s.orthonormalizeInterval > 0 && s.cycle%s.orthonormalizeInterval == 0 {
			s.reorthonormalizeOrientations()
		}
	}
	return performed, nil
}

func (s *Simulation) performCycle(ctx context.Context, mode RunMode) error {
	if err := s.movePhase(ctx); err != nil {
		return err
	}
	if s.boxScaler != nil {
		s.attemptScaling(mode)
	}
	return nil
}

// movePhase runs one pass of particle moves. When the packing is domain
// decomposed, every domain's moves are dispatched to their own goroutine and
// run in a single parallel region with one implicit join at the end: the
// decomposition's ghost layers guarantee that no particle in one domain's
// active region can ever interact with a particle in another's, so every
// domain (including neighbouring ones) is safe to run concurrently with
// every other. The decomposition is rebuilt around a freshly drawn uniform
// random origin first, so domain boundaries do not settle on the same
// physical location cycle after cycle.
func (s *Simulation) movePhase(ctx context.Context) error {
	decomposition := s.packing.Decomposition()
	if decomposition == nil || decomposition.NumDomains() == 1 {
		s.moveDomain(0, allParticles(s.packing))
		return nil
	}

	origin := [3]float64{s.rngs[0].Float64(), s.rngs[0].Float64(), s.rngs[0].Float64()}
	if err := decomposition.Rebuild(origin); err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for domainIdx := 0; domainIdx < decomposition.NumDomains(); domainIdx++ {
		domainIdx := domainIdx
		g.Go(func() error {
			particles := decomposition.ParticlesInDomain(s.packing, domainIdx)
			s.moveDomain(domainIdx, particles)
			return nil
		})
	}
	return g.Wait()
}

func allParticles(packing Packing) []int {
	n := packing.NumParticles()
	particles := make([]int, n)
	for i := range particles {
		particles[i] = i
	}
	return particles
}

func (s *Simulation) moveDomain(domainIdx int, particles []int) {
	prng := s.rngs[domainIdx%len(s.rngs)]
	for _, particleIdx := range particles {
		s.tryParticleMove(particleIdx, prng)
	}
}

func (s *Simulation) tryParticleMove(particleIdx int, prng *rand.Rand) {
	if len(s.moves) == 0 {
		return
	}
	entry := s.pickMoveEntry(prng)

	position := geom.Vector3(s.packing.ParticlePosition(particleIdx))
	orientation := s.packing.ParticleOrientation(particleIdx)
	move := entry.sampler.Sample(particleIdx, position, orientation, prng)
	move.ParticleIdx = particleIdx

	overlaps := s.packing.TryMove(move)
	accepted := !overlaps
	if accepted {
		s.packing.CommitMove(move)
	}

	entry.sampler.RegisterResult(accepted)
	entry.counter.RegisterMove(accepted)
}

func (s *Simulation) pickMoveEntry(prng *rand.Rand) *moveEntry {
	total := 0.0
	for _, m := range s.moves {
		total += m.weight
	}
	r := prng.Float64() * total
	for i := range s.moves {
		r -= s.moves[i].weight
		if r <= 0 {
			return &s.moves[i]
		}
	}
	return &s.moves[len(s.moves)-1]
}

// attemptScaling proposes and, if accepted, commits a single box-scaling
// move. ModeRelaxOverlaps never proposes scaling, since it has no defined
// pressure to evaluate the Metropolis criterion against.
func (s *Simulation) attemptScaling(mode RunMode) {
	if mode == ModeRelaxOverlaps {
		return
	}
	if s.scalingFrequency <= 0 {
		return
	}
	prng := s.rngs[0]
	if prng.Float64() > s.scalingFrequency {
		return
	}

	oldBox := s.packing.Box()
	oldVolume := oldBox.Volume()
	stepSize := s.boxScaler.GetStepSize()
	newBox := s.boxScaler.SampleBox(oldBox, stepSize, prng)
	newVolume := newBox.Volume()

	// Short-circuit: the NpT term alone gives the exponent
	// -beta*(p*dV - N/beta*ln(Vnew/Vold)). An overlap can only reject the
	// trial further, so the uniform draw is compared against this term
	// first and the overlap scan runs only when the draw does not already
	// reject.
	pressure := s.environment.Pressure.GetValueForCycle(int(s.cycle), int(s.totalCycles))
	temperature := s.environment.Temperature.GetValueForCycle(int(s.cycle), int(s.totalCycles))
	n := float64(s.packing.NumParticles())
	logAcceptance := -pressure*(newVolume-oldVolume)/temperature + n*math.Log(newVolume/oldVolume)

	logRoll := math.Log(prng.Float64())

	// logAcceptance >= 0 means the NpT term alone already guarantees
	// acceptance: an overlap found during the scan is the only way to
	// reject, so the scan cannot be skipped. logAcceptance < logRoll means
	// no overlap scan result can raise the term above the roll, so the
	// move is rejected without ever running the scan.
	if logAcceptance < logRoll {
		s.scalingCounter.RegisterMove(false)
		s.boxScaler.RegisterResult(false)
		return
	}

	scalingFactor := geom.Vector3{
		newBox.Dimensions()[0][0] / oldBox.Dimensions()[0][0],
		newBox.Dimensions()[1][1] / oldBox.Dimensions()[1][1],
		newBox.Dimensions()[2][2] / oldBox.Dimensions()[2][2],
	}
	overlaps := s.packing.TryScaling(newBox, scalingFactor)
	accepted := !overlaps
	if accepted {
		s.packing.CommitScaling(newBox)
	}
	s.scalingCounter.RegisterMove(accepted)
	s.boxScaler.RegisterResult(accepted)
}

// adaptStepSizes evaluates every sampler's and the box scaler's
// (accepted, attempted) counters accumulated since their last evaluation.
// A sampler is evaluated once its attempts reach 100 times its per-cycle
// requested-moves weight (a fixed 100 attempts for the box scaler); once
// evaluated, its acceptance rate triggers a step-size increase above 0.2,
// a decrease below 0.1, or no change in between, and its counter resets
// regardless of whether a change was triggered.
func (s *Simulation) adaptStepSizes() {
	for i := range s.moves {
		entry := &s.moves[i]
		threshold := 100 * entry.weight
		if float64(entry.counter.Moves()) < threshold {
			continue
		}
		adjustStepSize(entry.sampler.GetStepSize, entry.sampler.SetStepSize, entry.counter.AcceptanceRate())
		entry.counter.Reset()
	}
	if s.boxScaler != nil && float64(s.scalingCounter.Moves()) >= 100 {
		adjustStepSize(s.boxScaler.GetStepSize, s.boxScaler.SetStepSize, s.scalingCounter.AcceptanceRate())
		s.scalingCounter.Reset()
	}
}

// adjustStepSize increases step size by a tenth if rate exceeds 0.2, or
// decreases it by a tenth if rate falls below 0.1; rates inside [0.1, 0.2]
// leave the step size untouched.
func adjustStepSize(getStep func() float64, setStep func(float64), rate float64) {
	switch {
	case rate > 0.2:
		setStep(getStep() * 1.1)
	case rate < 0.1:
		setStep(getStep() * 0.9)
	}
}

// OrientationFixer is an optional Packing capability: a packing whose
// particles carry rotation matrices can implement it to let the driver
// correct floating-point drift away from orthogonality.
type OrientationFixer interface {
	FixOrientations()
}

// reorthonormalizeOrientations re-orthonormalises every particle's
// orientation matrix if the packing opts into OrientationFixer. Left as a
// no-op for packings using an orientation representation immune to this
// drift (e.g. quaternions renormalised on every move).
func (s *Simulation) reorthonormalizeOrientations() {
	if fixer, ok := s.packing.(OrientationFixer); ok {
		fixer.FixOrientations()
	}
}
