// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rampack runs a hard-sphere NpT Monte Carlo packing simulation
// from a small set of command-line parameters and writes the final
// configuration as a single-frame RAMTRJ-style trajectory.
package main

import (
	"context"
	"os"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/pkua007/rampack/arrange"
	"github.com/pkua007/rampack/boxscaler"
	"github.com/pkua007/rampack/core"
	"github.com/pkua007/rampack/domain"
	"github.com/pkua007/rampack/dynparam"
	"github.com/pkua007/rampack/geom"
	"github.com/pkua007/rampack/interaction"
	"github.com/pkua007/rampack/movesampler"
	"github.com/pkua007/rampack/packing"
	"github.com/pkua007/rampack/shape"
	"github.com/pkua007/rampack/trajectory"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	numParticles := io.ArgToInt(0, 500)
	radius := io.ArgToFloat64(1, 0.5)
	spacing := io.ArgToFloat64(2, 1.2)
	temperature := io.ArgToFloat64(3, 1.0)
	pressure := io.ArgToFloat64(4, 5.0)
	numCycles := io.ArgToInt(5, 10000)
	seed := io.ArgToInt(6, 1)
	trjFnamepath, _ := io.ArgToFilename(7, "rampack", ".trj", false)
	verbose := io.ArgToBool(8, true)

	if verbose {
		io.PfWhite("\nRAMPACK -- rigid anisotropic particle Monte Carlo packing\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"number of particles", "numParticles", numParticles,
			"sphere radius", "radius", radius,
			"initial lattice spacing", "spacing", spacing,
			"temperature", "temperature", temperature,
			"pressure", "pressure", pressure,
			"number of cycles", "numCycles", numCycles,
			"random seed", "seed", seed,
			"trajectory file", "trjFnamepath", trjFnamepath,
		))
	}

	b, positions := arrange.SimpleCubic(numParticles, spacing)

	shapes := make([]core.Shape, numParticles)
	orientations := make([]geom.Matrix3, numParticles)
	for i := range shapes {
		shapes[i] = shape.Sphere{Radius: radius}
		orientations[i] = geom.Identity3()
	}

	translationStep := radius * 0.1
	pack := packing.New(b, shapes, positions, orientations,
		interaction.HardSphere{MaxRadius: radius, MaxMoveRadius: translationStep})

	if numDomains := runtime.NumCPU(); numDomains > 1 {
		domainDivisions := [3]int{numDomains, 1, 1}
		decomposition, err := domain.NewDecomposition(b, pack.NeighbourGridCellDivisions(), domainDivisions,
			pack.RangeRadius(), pack.TotalRangeRadius(), [3]float64{})
		if err != nil {
			if verbose {
				io.Pf("-- running single-domain: %v\n", err)
			}
		} else {
			pack.SetDecomposition(decomposition)
		}
	}

	env := core.Environment{
		Temperature: dynparam.Constant{Value: temperature},
		Pressure:    dynparam.Constant{Value: pressure},
	}
	if !env.IsComplete() {
		chk.Panic("incomplete environment, missing: %v", env.MissingFields())
	}

	logger := core.Logger{Verbose: verbose}
	sim := core.NewSimulation(pack, env, seed, logger)
	sim.AddMoveSampler(core.MoveRototranslation, movesampler.NewRototranslation(translationStep, radius), float64(numParticles))
	sim.SetBoxScaler(&boxscaler.Isotropic{StepSize: 0.01}, 1.0/float64(numParticles))

	stop := sim.InstallSignalHandler()
	defer stop()

	f, err := os.Create(trjFnamepath)
	if err != nil {
		chk.Panic("cannot create trajectory file: %v", err)
	}
	defer f.Close()
	writer := trajectory.NewWriter(f, numParticles)

	logger.Milestone("relaxing initial overlaps...")
	if _, err := sim.Run(context.Background(), 1000, core.ModeRelaxOverlaps); err != nil {
		chk.Panic("overlap relaxation failed: %v", err)
	}

	logger.Milestone("running %d integration cycles...", numCycles)
	performed, err := sim.Run(context.Background(), int64(numCycles), core.ModeIntegrate)
	if err != nil {
		chk.Panic("integration run failed: %v", err)
	}

	if err := writer.WriteFrame(snapshotFrame(pack, performed)); err != nil {
		chk.Panic("cannot write trajectory frame: %v", err)
	}
	if err := writer.Flush(); err != nil {
		chk.Panic("cannot flush trajectory: %v", err)
	}

	logger.Milestone("completed %d cycles", performed)
}

func snapshotFrame(pack *packing.Packing, cycle int64) trajectory.Frame {
	n := pack.NumParticles()
	positions := make([]geom.Vector3, n)
	orientations := make([]geom.Matrix3, n)
	for i := 0; i < n; i++ {
		positions[i] = pack.AbsolutePosition(i)
		orientations[i] = pack.ParticleOrientation(i)
	}
	return trajectory.Frame{
		Cycle:        cycle,
		Box:          pack.Box(),
		Positions:    positions,
		Orientations: orientations,
	}
}
