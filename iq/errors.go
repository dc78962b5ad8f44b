// SPDX-License-Identifier: EPL-2.0

package iq

import "errors"

var (
	// ErrTruncatedChunk indicates the stream ended partway through a chunk.
	ErrTruncatedChunk = errors.New("truncated IQ chunk")

	// ErrInvalidChunkSize indicates a non-positive samples-per-chunk value.
	ErrInvalidChunkSize = errors.New("samples per chunk must be positive")

	// ErrUnknownSampleType indicates a sample type outside U8..F64.
	ErrUnknownSampleType = errors.New("unknown sample type")

	// ErrClosed is returned by reads on a closed Reader.
	ErrClosed = errors.New("IQ reader closed")

	// ErrUnknownByteOrder indicates an unrecognized byte order name.
	ErrUnknownByteOrder = errors.New("unknown byte order")
)
