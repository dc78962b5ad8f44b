// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/ik5/sdriq/iq"

// Normalize maps a raw component value of type t to full scale [-1, 1].
//
// Unsigned types are centred on the middle of their range, so an rtl_sdr
// byte of 127.5 (never actually stored) would be 0. Signed types are divided
// by the magnitude of their minimum. Float types are assumed to be at full
// scale already and are returned unchanged, as are values of an invalid t.
func Normalize(t iq.SampleType, v float64) float64 {
	switch t {
	case iq.U8:
		return (v - 127.5) / 127.5
	case iq.I8:
		return v / 128.0
	case iq.U16:
		return (v - 32767.5) / 32767.5
	case iq.I16:
		return v / 32768.0
	default:
		return v
	}
}

// NormalizeSample applies Normalize to both components of s.
func NormalizeSample(t iq.SampleType, s complex128) complex128 {
	return complex(Normalize(t, real(s)), Normalize(t, imag(s)))
}
