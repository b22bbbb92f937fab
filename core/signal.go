// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"os"
	"os/signal"
	"syscall"
)

// InstallSignalHandler arranges for SIGINT and SIGTERM to call s.Cancel,
// letting a long Run finish its current cycle and return cleanly instead of
// being killed mid-write. It returns a function that stops the handler.
func (s *Simulation) InstallSignalHandler() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-ch:
			s.logger.Warn("received interrupt, finishing current cycle before exiting")
			s.Cancel()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
