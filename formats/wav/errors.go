// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrWriterClosed      = errors.New("IQ WAV writer is closed")
)
