// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrInvalidStreamInfo indicates a STREAMINFO block with no channels or no rate.
	ErrInvalidStreamInfo = errors.New("invalid FLAC stream info")

	// ErrUnsupportedBitDepth indicates a sample size outside 4..32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrChannelMismatch indicates a frame carrying fewer subframes than
	// the stream declares.
	ErrChannelMismatch = errors.New("flac frame channel mismatch")
)
