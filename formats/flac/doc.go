// SPDX-License-Identifier: EPL-2.0

// Package flac decodes native FLAC streams through github.com/mewkiz/flac.
//
// Frames are parsed one at a time and their subframes interleaved, so
// memory use is bounded by the largest block. Samples are scaled by
// 2^(bits-1) using the bit depth from STREAMINFO.
//
// Close releases the underlying stream, and closes the reader passed to
// Decode when it implements io.Closer.
package flac
