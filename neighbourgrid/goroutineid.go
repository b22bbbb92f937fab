// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbourgrid

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineSlot extracts the calling goroutine's id from its stack trace
// header. It exists only to back the debug-only race sanitiser: production
// code never depends on goroutine identity.
func goroutineSlot() int {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return -2
	}
	id, err := strconv.Atoi(string(fields[1]))
	if err != nil {
		return -2
	}
	return id
}
