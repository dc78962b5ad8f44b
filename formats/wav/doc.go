// SPDX-License-Identifier: EPL-2.0

// Package wav exports decoded IQ samples as WAV files.
//
// Many SDR applications (SDR#, SDRuno, HDSDR) store IQ recordings as
// two-channel WAV files with I in the left channel and Q in the right. This
// package writes that layout with 16-bit PCM samples, using the
// github.com/go-audio/wav encoder.
//
// # Writing
//
//	out, _ := os.Create("capture.wav")
//	defer out.Close()
//
//	w, err := wav.NewIQWriter(out, 2400000, iq.U8)
//	if err != nil {
//	    // Handle error
//	}
//
//	for {
//	    chunk, err := r.ReadChunk64()
//	    if err == io.EOF {
//	        break
//	    }
//	    // ...
//	    w.WriteSamples(chunk)
//	}
//	err = w.Close()
//
// # Scaling
//
// Integer samples are mapped to full scale with utils.Normalize before
// quantizing, so an rtl_sdr byte of 255 becomes 32767 and 0 becomes -32767.
// Float samples are assumed to already be in [-1, 1]; anything outside is
// clipped.
//
// The sample rate is not stored in raw IQ files; pass the rate the capture
// was made at (gqrx encodes it in the file name).
package wav
