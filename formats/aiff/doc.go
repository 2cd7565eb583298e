// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFF-C audio through
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported with any channel
// count. AIFF stores signed big-endian samples at every depth; they are
// scaled by 2^(bits-1) into [-1, 1).
//
//	src, err := aiff.Decoder{}.Decode(r)
//	if err != nil {
//	    // aiff.ErrNotAiffFile, aiff.ErrUnsupportedBitDepth ...
//	}
//	defer src.Close()
//	decoded, err := audio.Collect(src)
package aiff
