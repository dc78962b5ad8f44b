// SPDX-License-Identifier: EPL-2.0

// Package sdriq reads raw IQ recordings made by software-defined radios.
//
// Capture tools such as gqrx, rtl_sdr and hackrf_transfer write IQ samples
// as a flat stream of I/Q pairs with no header. This module turns such files
// into complex64 or complex128 samples for further signal processing.
//
// # Supported Encodings
//
// Each I and Q component may be stored as:
//   - unsigned or signed 8-bit integers (iq.U8, iq.I8)
//   - unsigned or signed 16-bit integers (iq.U16, iq.I16)
//   - 32-bit or 64-bit IEEE-754 floats (iq.F32, iq.F64)
//
// The file does not say which one it uses; see iq.DefaultRegistry for the
// defaults of common tools.
//
// # Quick Start
//
// The simplest way to load a whole capture is ReadFile64:
//
//	samples, err := sdriq.ReadFile64("capture.raw", iq.Config{
//	    SamplesPerChunk: 4096,
//	    SampleType:      iq.F32,
//	})
//
// For large files, stream chunk by chunk with the iq package:
//
//	r, _ := iq.Open("capture.raw", iq.Config{SamplesPerChunk: 4096, SampleType: iq.U8})
//	defer r.Close()
//
//	for {
//	    chunk, err := r.ReadChunk32()
//	    if err == io.EOF {
//	        break
//	    }
//	    // ...
//	}
//
// # Other Packages
//
//   - stats summarizes a capture (DC offset, power, peak, clipping range)
//   - formats/wav exports IQ as a stereo WAV file (I left, Q right)
//   - utils normalizes raw values to full scale
//   - cmd/sdriq is a command-line front end for all of the above
package sdriq
