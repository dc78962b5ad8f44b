// SPDX-License-Identifier: EPL-2.0

package iqtest

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by FailingReader once its data is used up.
var ErrInjected = errors.New("injected read failure")

// Encode serializes samples the way a capture tool would: I then Q, each
// written in order. It takes the type name rather than an iq.SampleType so
// that package iq can use it in its own tests. kind is one
// of "u8", "i8", "u16", "i16", "f32", "f64". Values are converted with a plain
// Go conversion, so callers pass values that fit the target type.
func Encode(kind string, order binary.AppendByteOrder, samples []complex128) []byte {
	var out []byte
	for _, s := range samples {
		out = appendScalar(out, kind, order, real(s))
		out = appendScalar(out, kind, order, imag(s))
	}
	return out
}

func appendScalar(out []byte, kind string, order binary.AppendByteOrder, v float64) []byte {
	switch kind {
	case "u8":
		return append(out, uint8(v))
	case "i8":
		return append(out, byte(int8(v)))
	case "u16":
		return order.AppendUint16(out, uint16(v))
	case "i16":
		return order.AppendUint16(out, uint16(int16(v)))
	case "f32":
		return order.AppendUint32(out, math.Float32bits(float32(v)))
	case "f64":
		return order.AppendUint64(out, math.Float64bits(v))
	default:
		panic("iqtest: unknown kind " + kind)
	}
}

// Ramp returns n samples with I = (start+k) mod 100 and Q = I+1, small enough
// for every encoding to hold exactly.
func Ramp(n int, start int) []complex128 {
	samples := make([]complex128, n)
	for k := range n {
		v := float64((start + k) % 100)
		samples[k] = complex(v, v+1)
	}
	return samples
}

// FailingReader returns its data and then ErrInjected instead of io.EOF.
type FailingReader struct {
	data []byte
	pos  int
}

func NewFailingReader(data []byte) *FailingReader {
	return &FailingReader{data: data}
}

func (f *FailingReader) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, ErrInjected
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

// ReadStep is one Read result of a ScriptedReader.
type ReadStep struct {
	Data []byte
	Err  error
}

// ScriptedReader plays back its Steps in order. A step whose Data does not
// fit the caller's buffer is split across calls, and its Err is returned with
// the last piece. Once the steps are used up it returns io.EOF.
type ScriptedReader struct {
	Steps []ReadStep
}

func (s *ScriptedReader) Read(p []byte) (int, error) {
	if len(s.Steps) == 0 {
		return 0, io.EOF
	}
	step := &s.Steps[0]
	n := copy(p, step.Data)
	if n < len(step.Data) {
		step.Data = step.Data[n:]
		return n, nil
	}
	err := step.Err
	s.Steps = s.Steps[1:]
	return n, err
}

// CountingReader records how many bytes were pulled from the wrapped reader.
type CountingReader struct {
	R     io.Reader
	Bytes int
	Calls int
}

func (c *CountingReader) Read(p []byte) (int, error) {
	c.Calls++
	n, err := c.R.Read(p)
	c.Bytes += n
	return n, err
}

// ClosingReader wraps a reader and records Close calls.
type ClosingReader struct {
	io.Reader
	Closed int
	Err    error
}

func (c *ClosingReader) Close() error {
	c.Closed++
	return c.Err
}
