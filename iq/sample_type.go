// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// SampleType describes how one scalar (I or Q) is stored on disk.
// You will have to look up what your SDR software writes; see Registry for
// the defaults of common capture tools.
type SampleType int

const (
	// Unknown is the zero value and is rejected by NewReader.
	Unknown SampleType = iota
	// U8 stores each component as an unsigned 8-bit integer (rtl_sdr).
	U8
	// I8 stores each component as a signed 8-bit integer (hackrf_transfer).
	I8
	// U16 stores each component as an unsigned 16-bit integer.
	U16
	// I16 stores each component as a signed 16-bit integer.
	I16
	// F32 stores each component as an IEEE-754 single (gqrx, GNU Radio).
	F32
	// F64 stores each component as an IEEE-754 double.
	F64
)

// SampleTypes lists every valid sample type in declaration order.
var SampleTypes = []SampleType{U8, I8, U16, I16, F32, F64}

// ElementWidth is the number of bytes of one I or Q component.
// It returns 0 for an invalid type.
func (t SampleType) ElementWidth() int {
	switch t {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case F32:
		return 4
	case F64:
		return 8
	default:
		return 0
	}
}

// SampleWidth is the number of bytes of one IQ record (I followed by Q).
func (t SampleType) SampleWidth() int { return 2 * t.ElementWidth() }

// Valid reports whether t is one of U8..F64.
func (t SampleType) Valid() bool { return t.ElementWidth() > 0 }

func (t SampleType) String() string {
	switch t {
	case U8:
		return "u8"
	case I8:
		return "i8"
	case U16:
		return "u16"
	case I16:
		return "i16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return fmt.Sprintf("SampleType(%d)", int(t))
	}
}

// ParseSampleType converts a type name to a SampleType. Besides the names
// returned by String it understands the aliases used by common SDR tools
// (cu8, cs8, cs16, cf32, fc32 ...). Matching is case-insensitive.
func ParseSampleType(s string) (SampleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u8", "uint8", "cu8":
		return U8, nil
	case "i8", "int8", "s8", "cs8":
		return I8, nil
	case "u16", "uint16", "cu16":
		return U16, nil
	case "i16", "int16", "s16", "cs16":
		return I16, nil
	case "f32", "float32", "cf32", "fc32":
		return F32, nil
	case "f64", "float64", "cf64", "fc64":
		return F64, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownSampleType, s)
	}
}

// ParseByteOrder maps "native", "little" and "big" (or "le"/"be") to a
// binary.ByteOrder. An empty string means native.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native", "ne":
		return binary.NativeEndian, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, s)
	}
}
