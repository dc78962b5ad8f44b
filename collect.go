// SPDX-License-Identifier: EPL-2.0

package sdriq

import (
	"errors"
	"io"

	"github.com/ik5/sdriq/iq"
)

// ChunkReader64 is implemented by *iq.Reader.
type ChunkReader64 interface {
	ReadChunk64() ([]complex128, error)
}

// ChunkReader32 is implemented by *iq.Reader.
type ChunkReader32 interface {
	ReadChunk32() ([]complex64, error)
}

// ReadAll64 drains r and returns every decoded sample.
//
// Reaching io.EOF is not an error. When the stream is truncated or a read
// fails, the samples decoded so far are returned together with the error, so
//
//	samples, err := sdriq.ReadAll64(r)
//	if errors.Is(err, iq.ErrTruncatedChunk) {
//	    // samples holds every whole chunk before the damaged tail
//	}
func ReadAll64(r ChunkReader64) ([]complex128, error) {
	var samples []complex128
	for {
		chunk, err := r.ReadChunk64()
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return samples, err
		}
		samples = append(samples, chunk...)
	}
}

// ReadAll32 is ReadAll64 at 32-bit precision.
func ReadAll32(r ChunkReader32) ([]complex64, error) {
	var samples []complex64
	for {
		chunk, err := r.ReadChunk32()
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return samples, err
		}
		samples = append(samples, chunk...)
	}
}

// ReadFile64 opens the raw IQ file at path and decodes it completely.
func ReadFile64(path string, cfg iq.Config) ([]complex128, error) {
	r, err := iq.Open(path, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadAll64(r)
}

// ReadFile32 is ReadFile64 at 32-bit precision.
func ReadFile32(path string, cfg iq.Config) ([]complex64, error) {
	r, err := iq.Open(path, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadAll32(r)
}
