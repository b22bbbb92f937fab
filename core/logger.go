// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/cpmech/gosl/io"

// Logger reports simulation progress to the console. The zero value is
// ready to use and writes through gosl/io's colour-aware Pf family.
type Logger struct {
	// Verbose mirrors io.Verbose: when false, Info is silenced but
	// Warn/Error are not.
	Verbose bool
}

// Info prints a cycle-progress style message in the default colour, only
// when l.Verbose is set.
func (l Logger) Info(msg string, args ...interface{}) {
	if !l.Verbose {
		return
	}
	io.Pf(msg+"\n", args...)
}

// Warn prints a message in yellow, regardless of Verbose.
func (l Logger) Warn(msg string, args ...interface{}) {
	io.Pfyel(msg+"\n", args...)
}

// Error prints a message in red, regardless of Verbose.
func (l Logger) Error(msg string, args ...interface{}) {
	io.Pfred(msg+"\n", args...)
}

// Milestone prints a message in green, used for cycle/phase boundaries.
func (l Logger) Milestone(msg string, args ...interface{}) {
	io.Pfgreen(msg+"\n", args...)
}
