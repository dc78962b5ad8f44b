// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/sdriq/iq"
	"github.com/ik5/sdriq/utils"
)

const (
	bitDepth      = 16
	numChannels   = 2 // I left, Q right
	wavFormatPCM  = 1
	initialFrames = 4096
)

// IQWriter writes decoded IQ samples as a stereo 16-bit PCM WAV file.
type IQWriter struct {
	enc        *gowav.Encoder
	sampleType iq.SampleType
	buf        *goaudio.IntBuffer
	frames     int
	closed     bool
}

// NewIQWriter prepares a WAV writer on ws. sampleRate is the IQ sample rate
// of the capture in Hz; t is the encoding the samples were decoded from and
// selects the full-scale normalization applied before quantizing.
// The RIFF header is finalized by Close, which needs ws to be seekable.
func NewIQWriter(ws io.WriteSeeker, sampleRate int, t iq.SampleType) (*IQWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", iq.ErrUnknownSampleType, t)
	}

	return &IQWriter{
		enc:        gowav.NewEncoder(ws, sampleRate, bitDepth, numChannels, wavFormatPCM),
		sampleType: t,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: numChannels, SampleRate: sampleRate},
			Data:           make([]int, 0, initialFrames*numChannels),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Frames is the number of IQ samples written so far.
func (w *IQWriter) Frames() int { return w.frames }

// WriteSamples appends samples to the file.
func (w *IQWriter) WriteSamples(samples []complex128) error {
	if w.closed {
		return ErrWriterClosed
	}

	data := w.buf.Data[:0]
	for _, s := range samples {
		n := utils.NormalizeSample(w.sampleType, s)
		data = append(data, int(utils.Float64ToInt16(real(n))), int(utils.Float64ToInt16(imag(n))))
	}
	return w.flush(data, len(samples))
}

// WriteSamples32 is WriteSamples for complex64 samples.
func (w *IQWriter) WriteSamples32(samples []complex64) error {
	if w.closed {
		return ErrWriterClosed
	}

	data := w.buf.Data[:0]
	for _, s := range samples {
		n := utils.NormalizeSample(w.sampleType, complex128(s))
		data = append(data, int(utils.Float64ToInt16(real(n))), int(utils.Float64ToInt16(imag(n))))
	}
	return w.flush(data, len(samples))
}

func (w *IQWriter) flush(data []int, frames int) error {
	w.buf.Data = data
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing IQ WAV data: %w", err)
	}
	w.frames += frames
	return nil
}

// Close finalizes the WAV header. It does not close the underlying writer.
func (w *IQWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	// Make sure the header and data chunk exist even for an empty capture.
	if w.frames == 0 {
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("writing IQ WAV header: %w", err)
		}
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing IQ WAV: %w", err)
	}
	return nil
}
