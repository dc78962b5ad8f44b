// SPDX-License-Identifier: EPL-2.0

// Package iq decodes raw IQ recordings made by software-defined radio tools.
//
// A raw IQ file has no header. It is a flat run of records, each holding the
// in-phase (I) component followed by the quadrature (Q) component, both in
// the same encoding. The encoding is not stored anywhere, so the caller has
// to supply it.
//
// # Sample Types
//
//	Type  Component        Record size
//	U8    uint8            2 bytes   (rtl_sdr)
//	I8    int8             2 bytes   (hackrf_transfer)
//	U16   uint16           4 bytes
//	I16   int16            4 bytes   (bladeRF, PlutoSDR)
//	F32   float32          8 bytes   (gqrx, GNU Radio)
//	F64   float64          16 bytes
//
// Integer components are not rescaled: a U8 byte of 0xFF decodes to 255.
//
// # Reading Chunks
//
//	r, err := iq.Open("gqrx_20240929_015218_580206500_2400000_fc.raw", iq.Config{
//	    SamplesPerChunk: 1024,
//	    SampleType:      iq.F32,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer r.Close()
//
//	for {
//	    samples, err := r.ReadChunk32()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // ErrTruncatedChunk or an I/O error
//	    }
//	    // len(samples) == 1024
//	}
//
// Every successful read returns exactly SamplesPerChunk samples. A file that
// ends partway through a chunk yields ErrTruncatedChunk instead of a short or
// zero-padded chunk.
//
// # Byte Order
//
// Multi-byte components are read in Config.ByteOrder, which defaults to the
// byte order of the running machine. Set it explicitly when decoding a file
// recorded on a machine with a different byte order.
package iq
