// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Counter accumulates acceptance statistics for one kind of move over a
// cycle or a whole run.
type Counter struct {
	moves     int64
	accepted  int64
}

// RegisterMove records one attempted move and whether it was accepted.
func (c *Counter) RegisterMove(accepted bool) {
	c.moves++
	if accepted {
		c.accepted++
	}
}

// Moves returns the number of attempted moves.
func (c *Counter) Moves() int64 {
	return c.moves
}

// Accepted returns the number of accepted moves.
func (c *Counter) Accepted() int64 {
	return c.accepted
}

// AcceptanceRate returns accepted/moves, or 0 if no moves were attempted.
func (c *Counter) AcceptanceRate() float64 {
	if c.moves == 0 {
		return 0
	}
	return float64(c.accepted) / float64(c.moves)
}

// Reset zeroes the counter, e.g. at the start of a new adaptation interval.
func (c *Counter) Reset() {
	c.moves = 0
	c.accepted = 0
}

// Merge folds other's counts into c, for combining per-goroutine counters
// after a domain-parallel move phase.
func (c *Counter) Merge(other Counter) {
	c.moves += other.moves
	c.accepted += other.accepted
}
