// SPDX-License-Identifier: EPL-2.0

package iq

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Config describes how a raw IQ stream is laid out and how much of it is
// decoded per call.
type Config struct {
	// SamplesPerChunk is the number of IQ samples returned by every
	// successful read. It must be at least 1.
	SamplesPerChunk int

	// SampleType is the on-disk encoding of each I and Q component.
	SampleType SampleType

	// ByteOrder of multi-byte components. The raw format carries no
	// marker, so it has to match the machine that made the recording.
	// nil means binary.NativeEndian.
	ByteOrder binary.ByteOrder
}

// Validate reports whether c can be used to build a Reader.
func (c Config) Validate() error {
	if c.SamplesPerChunk < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, c.SamplesPerChunk)
	}
	if !c.SampleType.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownSampleType, c.SampleType)
	}
	return nil
}

// ChunkBytes is the number of stream bytes consumed by one chunk.
func (c Config) ChunkBytes() int { return c.SamplesPerChunk * c.SampleType.SampleWidth() }

// Reader decodes a headerless IQ stream chunk by chunk.
//
// A Reader is not safe for concurrent use. Decode in parallel by opening the
// file once per Reader.
type Reader struct {
	r      io.Reader
	closer io.Closer
	cfg    Config
	buf    []byte

	// err is returned by every read once the stream can no longer be
	// decoded on record boundaries.
	err error
}

// NewReader returns a Reader decoding r, which must be positioned at the
// first sample. If r is an io.Closer, Close closes it.
func NewReader(r io.Reader, cfg Config) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ByteOrder == nil {
		cfg.ByteOrder = binary.NativeEndian
	}

	rd := &Reader{
		r:   r,
		cfg: cfg,
		buf: make([]byte, cfg.ChunkBytes()),
	}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd, nil
}

// Open opens the raw IQ file at path and returns a buffered Reader over it.
func Open(path string, cfg Config) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening IQ file: %w", err)
	}

	rd, err := NewReader(bufio.NewReader(f), cfg)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	rd.closer = f
	return rd, nil
}

// SamplesPerChunk is the fixed number of samples per successful read.
func (r *Reader) SamplesPerChunk() int { return r.cfg.SamplesPerChunk }

// SampleType is the on-disk encoding of each component.
func (r *Reader) SampleType() SampleType { return r.cfg.SampleType }

// ByteOrder is the effective byte order; never nil.
func (r *Reader) ByteOrder() binary.ByteOrder { return r.cfg.ByteOrder }

// Close releases the underlying stream when the Reader owns it. Reads after
// Close return ErrClosed.
func (r *Reader) Close() error {
	r.err = ErrClosed
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing IQ stream: %w", err)
	}
	return nil
}

// fill reads exactly one chunk into r.buf.
func (r *Reader) fill() error {
	if r.err != nil {
		return r.err
	}

	n, err := io.ReadFull(r.r, r.buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		r.err = io.EOF
		return io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.err = io.EOF
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedChunk, n, len(r.buf))
	case n > 0:
		// The stream now sits inside a chunk; a retry would pair the wrong
		// bytes as I and Q.
		r.err = err
		return err
	default:
		return err
	}
}

// ReadChunk64 reads and decodes the next chunk as complex128 samples.
//
// It returns exactly SamplesPerChunk samples, or (nil, io.EOF) once the
// stream is exhausted at a chunk boundary. A stream ending partway through a
// chunk yields an error wrapping ErrTruncatedChunk; the partial data is
// dropped. After io.EOF or a truncated chunk every further call returns
// io.EOF.
//
// Other read errors are returned as they are. A failure before any byte of
// the chunk was consumed leaves the Reader usable; a failure partway through
// a chunk is returned again by every further call.
func (r *Reader) ReadChunk64() ([]complex128, error) {
	if err := r.fill(); err != nil {
		return nil, err
	}
	samples := make([]complex128, r.cfg.SamplesPerChunk)
	DecodeChunk64(samples, r.cfg.SampleType, r.cfg.ByteOrder, r.buf)
	return samples, nil
}

// ReadChunk32 is ReadChunk64 with complex64 output.
func (r *Reader) ReadChunk32() ([]complex64, error) {
	if err := r.fill(); err != nil {
		return nil, err
	}
	samples := make([]complex64, r.cfg.SamplesPerChunk)
	DecodeChunk32(samples, r.cfg.SampleType, r.cfg.ByteOrder, r.buf)
	return samples, nil
}
