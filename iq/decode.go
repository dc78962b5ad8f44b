// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// scalarDecoder turns the bytes of one I or Q component into a float64.
// Every supported encoding fits a float64 exactly, so the 32-bit output path
// narrows from here and both precisions agree.
type scalarDecoder func(b []byte) float64

func decodeU8(b []byte) float64 { return float64(b[0]) }

func decodeI8(b []byte) float64 { return float64(int8(b[0])) }

func decodeU16(order binary.ByteOrder) scalarDecoder {
	return func(b []byte) float64 { return float64(order.Uint16(b)) }
}

func decodeI16(order binary.ByteOrder) scalarDecoder {
	return func(b []byte) float64 { return float64(int16(order.Uint16(b))) }
}

func decodeF32(order binary.ByteOrder) scalarDecoder {
	return func(b []byte) float64 { return float64(math.Float32frombits(order.Uint32(b))) }
}

func decodeF64(order binary.ByteOrder) scalarDecoder {
	return func(b []byte) float64 { return math.Float64frombits(order.Uint64(b)) }
}

func decoderFor(t SampleType, order binary.ByteOrder) scalarDecoder {
	if order == nil {
		order = binary.NativeEndian
	}
	switch t {
	case U8:
		return decodeU8
	case I8:
		return decodeI8
	case U16:
		return decodeU16(order)
	case I16:
		return decodeI16(order)
	case F32:
		return decodeF32(order)
	case F64:
		return decodeF64(order)
	default:
		return nil
	}
}

// DecodeSample decodes one IQ record from the start of b, I component first.
// A b shorter than t.SampleWidth() yields an error wrapping
// io.ErrShortBuffer. A nil order means binary.NativeEndian.
func DecodeSample(t SampleType, order binary.ByteOrder, b []byte) (complex128, error) {
	if !t.Valid() {
		return 0, ErrUnknownSampleType
	}
	w := t.ElementWidth()
	if len(b) < 2*w {
		return 0, fmt.Errorf("%w: %v record needs %d bytes, got %d", io.ErrShortBuffer, t, 2*w, len(b))
	}
	dec := decoderFor(t, order)
	return complex(dec(b[:w]), dec(b[w:2*w])), nil
}

// DecodeChunk64 decodes buf into dst and returns the number of samples
// written, which is min(len(dst), len(buf)/t.SampleWidth()). Trailing bytes
// that do not form a whole record are ignored, and an invalid t decodes
// nothing.
func DecodeChunk64(dst []complex128, t SampleType, order binary.ByteOrder, buf []byte) int {
	dec := decoderFor(t, order)
	if dec == nil {
		return 0
	}
	w := t.ElementWidth()
	sw := 2 * w
	n := min(len(dst), len(buf)/sw)
	for i := range n {
		rec := buf[i*sw : (i+1)*sw]
		dst[i] = complex(dec(rec[:w]), dec(rec[w:]))
	}
	return n
}

// DecodeChunk32 is DecodeChunk64 with float32 components. F64 input is
// narrowed using the usual float64 to float32 rounding.
func DecodeChunk32(dst []complex64, t SampleType, order binary.ByteOrder, buf []byte) int {
	dec := decoderFor(t, order)
	if dec == nil {
		return 0
	}
	w := t.ElementWidth()
	sw := 2 * w
	n := min(len(dst), len(buf)/sw)
	for i := range n {
		rec := buf[i*sw : (i+1)*sw]
		dst[i] = complex(float32(dec(rec[:w])), float32(dec(rec[w:])))
	}
	return n
}
