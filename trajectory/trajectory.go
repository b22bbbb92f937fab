// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trajectory implements a compact binary recording of packing
// snapshots over the course of a run, in the vein of the RAMTRJ format: a
// fixed header followed by one fixed-size frame per recorded cycle.
package trajectory

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/cpmech/gosl/chk"

	"github.com/pkua007/rampack/box"
	"github.com/pkua007/rampack/geom"
)

const magic = "RAMTRJ01"

// header is written once, at the start of the file.
type header struct {
	NumParticles uint32
}

// Frame is one recorded simulation snapshot.
type Frame struct {
	Cycle        int64
	Box          box.Box
	Positions    []geom.Vector3
	Orientations []geom.Matrix3
}

// Writer appends Frames to an io.Writer in RAMTRJ-like binary form.
type Writer struct {
	w            *bufio.Writer
	numParticles int
	wroteHeader  bool
}

// NewWriter creates a Writer for a trajectory of numParticles particles per
// frame.
func NewWriter(w io.Writer, numParticles int) *Writer {
	return &Writer{w: bufio.NewWriter(w), numParticles: numParticles}
}

func (w *Writer) writeHeader() error {
	if _, err := w.w.WriteString(magic); err != nil {
		return err
	}
	return binary.Write(w.w, binary.LittleEndian, header{NumParticles: uint32(w.numParticles)})
}

// WriteFrame appends one frame. frame.Positions and frame.Orientations must
// each have exactly numParticles entries.
func (w *Writer) WriteFrame(frame Frame) error {
	if len(frame.Positions) != w.numParticles || len(frame.Orientations) != w.numParticles {
		chk.Panic("trajectory: WriteFrame: frame has %d/%d particles, expected %d",
			len(frame.Positions), len(frame.Orientations), w.numParticles)
	}
	if !w.wroteHeader {
		if err := w.writeHeader(); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	if err := binary.Write(w.w, binary.LittleEndian, frame.Cycle); err != nil {
		return err
	}
	dims := frame.Box.Dimensions()
	if err := binary.Write(w.w, binary.LittleEndian, dims); err != nil {
		return err
	}
	for i := 0; i < w.numParticles; i++ {
		if err := binary.Write(w.w, binary.LittleEndian, frame.Positions[i]); err != nil {
			return err
		}
		if err := binary.Write(w.w, binary.LittleEndian, frame.Orientations[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Reader reads Frames previously written by a Writer.
type Reader struct {
	r            io.Reader
	numParticles int
}

// NewReader opens a trajectory for reading, validating the magic header and
// returning the per-frame particle count it declares.
func NewReader(r io.Reader) (*Reader, error) {
	var magicBuf [8]byte
	if _, err := io.ReadFull(r, magicBuf[:]); err != nil {
		return nil, err
	}
	if string(magicBuf[:]) != magic {
		return nil, chk.Err("trajectory: NewReader: bad magic %q, expected %q", magicBuf, magic)
	}
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	return &Reader{r: r, numParticles: int(h.NumParticles)}, nil
}

// NumParticles returns the per-frame particle count declared by the header.
func (r *Reader) NumParticles() int {
	return r.numParticles
}

// ReadFrame reads the next frame, or returns io.EOF when the trajectory is
// exhausted.
func (r *Reader) ReadFrame() (Frame, error) {
	var frame Frame
	if err := binary.Read(r.r, binary.LittleEndian, &frame.Cycle); err != nil {
		return Frame{}, err
	}
	var dims geom.Matrix3
	if err := binary.Read(r.r, binary.LittleEndian, &dims); err != nil {
		return Frame{}, err
	}
	frame.Box = box.New(dims)

	frame.Positions = make([]geom.Vector3, r.numParticles)
	frame.Orientations = make([]geom.Matrix3, r.numParticles)
	for i := 0; i < r.numParticles; i++ {
		if err := binary.Read(r.r, binary.LittleEndian, &frame.Positions[i]); err != nil {
			return Frame{}, err
		}
		if err := binary.Read(r.r, binary.LittleEndian, &frame.Orientations[i]); err != nil {
			return Frame{}, err
		}
	}
	return frame, nil
}
