// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("unknown or unsupported audio format")
	ErrMalformedAudio = errors.New("malformed decoded audio")
	ErrNoProgress     = errors.New("source returned no samples repeatedly")
)

// DecodeError is returned when the input bytes could not be decoded as any
// supported audio format.
type DecodeError struct {
	// Format is the detected container, or "unknown".
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
