// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"fmt"
	"math"

	"github.com/pkua007/rampack/box"
)

// TooNarrowDomainError reports that the requested number of domains on some
// axis would leave a subdomain whose width minus its ghost-layer width is
// not more than one neighbour-grid cell, making race-free parallel moves
// impossible.
type TooNarrowDomainError struct {
	Axis           int
	WholeDomainRel float64
	GhostRel       float64
	NGCellRel      float64
}

func (e *TooNarrowDomainError) Error() string {
	return fmt.Sprintf("domain: axis %d's domain width %.6g minus its ghost width %.6g "+
		"does not leave more than one neighbour-grid cell (%.6g) of interior",
		e.Axis, e.WholeDomainRel, e.GhostRel, e.NGCellRel)
}

// Decomposition splits a box into a grid of rectangular subdomains
// separated by a ghost layer wide enough that no interaction reaching out
// to totalRange can ever cross from one subdomain's active region into
// another's. Two goroutines operating in disjoint active regions can
// therefore never touch the same neighbour-grid cell, so moves attempted
// concurrently are race-free.
type Decomposition struct {
	b                box.Box
	domainDivisions  [3]int
	cellDivisions    [3]int
	interactionRange float64
	totalRange       float64
	ghostRel         [3]float64 // 0 on axes with domainDivisions == 1
	origin           [3]float64
	domains          []ActiveDomain // len() == product(domainDivisions); ghost layers excluded
	domainsWithGhost []ActiveDomain // same domains expanded by their ghost layer
}

// NewDecomposition builds a decomposition of b into domainDivisions[i]
// domains along axis i, over a neighbour grid with cellDivisions[i] cells
// per axis, given the interaction's range and totalRange and a relative
// origin used to offset every subdomain boundary (see Rebuild). An axis
// with domainDivisions[i] == 1 is not partitioned: every particle is
// inside its single domain regardless of origin.
func NewDecomposition(b box.Box, cellDivisions, domainDivisions [3]int, interactionRange, totalRange float64, origin [3]float64) (*Decomposition, error) {
	if totalRange < interactionRange {
		return nil, fmt.Errorf("domain: totalRange (%g) must be at least interactionRange (%g)", totalRange, interactionRange)
	}
	for i := 0; i < 3; i++ {
		if domainDivisions[i] < 1 {
			return nil, fmt.Errorf("domain: axis %d must have at least 1 domain, got %d", i, domainDivisions[i])
		}
	}

	heights := b.Heights()
	var ghostRel [3]float64
	for axis := 0; axis < 3; axis++ {
		if domainDivisions[axis] < 2 {
			continue
		}
		ngCell := heights[axis] / float64(cellDivisions[axis])
		ghostRel[axis] = (totalRange - interactionRange + ngCell) / heights[axis]
		wholeDomainRel := 1.0 / float64(domainDivisions[axis])
		ngCellRel := 1.0 / float64(cellDivisions[axis])
		if wholeDomainRel-ghostRel[axis] <= ngCellRel {
			return nil, &TooNarrowDomainError{
				Axis:           axis,
				WholeDomainRel: wholeDomainRel,
				GhostRel:       ghostRel[axis],
				NGCellRel:      ngCellRel,
			}
		}
	}

	d := &Decomposition{
		b:                b,
		domainDivisions:  domainDivisions,
		cellDivisions:    cellDivisions,
		interactionRange: interactionRange,
		totalRange:       totalRange,
		ghostRel:         ghostRel,
	}
	if err := d.Rebuild(origin); err != nil {
		return nil, err
	}
	return d, nil
}

// Rebuild recomputes every domain's bounds around a new relative origin,
// without altering the decomposition's division counts, range or ghost
// width. The Monte Carlo driver calls this once per cycle with a freshly
// drawn uniform random origin (spec's multi-domain move phase, step 1-2),
// so domain boundaries do not coincide with the same physical location
// cycle after cycle. It fails with the same TooNarrowDomainError class if
// the new origin produces non-monotonic (degenerately overlapping) ghost
// bounds on some axis.
func (d *Decomposition) Rebuild(origin [3]float64) error {
	d.origin = origin

	var middles [3][]float64 // per axis, domainDivisions[axis]+1 unwrapped middles
	for axis := 0; axis < 3; axis++ {
		divisions := d.domainDivisions[axis]
		if divisions < 2 {
			middles[axis] = nil
			continue
		}
		ngDiv := float64(d.cellDivisions[axis])
		wholeDomainRel := 1.0 / float64(divisions)
		ms := make([]float64, divisions+1)
		for k := 0; k <= divisions; k++ {
			theoretical := origin[axis] + float64(k)*wholeDomainRel
			x := theoretical * ngDiv
			n := math.Round(x - 0.5)
			ms[k] = (n + 0.5) / ngDiv
		}
		for k := 1; k <= divisions; k++ {
			if ms[k] <= ms[k-1] {
				return &TooNarrowDomainError{
					Axis:           axis,
					WholeDomainRel: wholeDomainRel,
					GhostRel:       d.ghostRel[axis],
					NGCellRel:      1.0 / ngDiv,
				}
			}
		}
		middles[axis] = ms
	}

	total := d.domainDivisions[0] * d.domainDivisions[1] * d.domainDivisions[2]
	d.domains = make([]ActiveDomain, total)
	d.domainsWithGhost = make([]ActiveDomain, total)

	idx := 0
	for iz := 0; iz < d.domainDivisions[2]; iz++ {
		for iy := 0; iy < d.domainDivisions[1]; iy++ {
			for ix := 0; ix < d.domainDivisions[0]; ix++ {
				coords := [3]int{ix, iy, iz}
				d.domains[idx] = d.domainBounds(coords, middles, false)
				d.domainsWithGhost[idx] = d.domainBounds(coords, middles, true)
				idx++
			}
		}
	}
	return nil
}

// domainBounds computes the relative-coordinate interval of domain coords.
// On an axis with domainDivisions == 1 the bounds span the whole axis.
// Otherwise the ghost-free domain spans from just past the ghost band
// centred on its lower middle to just before the ghost band centred on
// its upper middle; withGhost extends half a ghost width further on each
// side to include those bands.
func (d *Decomposition) domainBounds(coords [3]int, middles [3][]float64, withGhost bool) ActiveDomain {
	var begin, end [3]float64
	for axis := 0; axis < 3; axis++ {
		if d.domainDivisions[axis] < 2 {
			begin[axis] = 0
			end[axis] = 1
			continue
		}
		half := d.ghostRel[axis] / 2
		lower := middles[axis][coords[axis]]
		upper := middles[axis][coords[axis]+1]
		if withGhost {
			begin[axis] = wrapToUnit(lower - half)
			end[axis] = wrapToUnit(upper + half)
		} else {
			begin[axis] = wrapToUnit(lower + half)
			end[axis] = wrapToUnit(upper - half)
		}
	}
	return NewActiveDomain(begin, end)
}

func wrapToUnit(x float64) float64 {
	for x < 0 {
		x += 1
	}
	for x >= 1 {
		x -= 1
	}
	return x
}

// NumDomains returns the total number of domains.
func (d *Decomposition) NumDomains() int {
	return len(d.domains)
}

// Domain returns the ghost-free active domain with the given linear index.
func (d *Decomposition) Domain(index int) ActiveDomain {
	return d.domains[index]
}

// DomainWithGhost returns the active domain at index expanded by its
// ghost layer, used to keep concurrent domains race-free.
func (d *Decomposition) DomainWithGhost(index int) ActiveDomain {
	return d.domainsWithGhost[index]
}

// DomainDivisions returns the number of domains per axis.
func (d *Decomposition) DomainDivisions() [3]int {
	return d.domainDivisions
}

// NeighbouringDomains returns, for domain index, the indices of every other
// domain whose ghost-expanded region intersects it.
func (d *Decomposition) NeighbouringDomains(index int) []int {
	var result []int
	this := d.domainsWithGhost[index]
	for i, other := range d.domainsWithGhost {
		if i == index {
			continue
		}
		if _, intersects := this.Intersect(other); intersects {
			result = append(result, i)
		}
	}
	return result
}

// PackingInfo is the minimal structural view of a particle packing that
// DomainDecomposition-aware coordination needs. Kept independent of any
// simulation-level interface to avoid a package import cycle.
type PackingInfo interface {
	NumParticles() int
	ParticlePosition(idx int) [3]float64
}

// ParticlesInDomain returns the indices of every particle in packing whose
// relative position lies in the ghost-free domain at index.
func (d *Decomposition) ParticlesInDomain(packing PackingInfo, index int) []int {
	active := d.domains[index]
	var result []int
	for i := 0; i < packing.NumParticles(); i++ {
		if active.IsInside(packing.ParticlePosition(i)) {
			result = append(result, i)
		}
	}
	return result
}
