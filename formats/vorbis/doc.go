// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through github.com/jfreymuth/oggvorbis.
//
// Samples are produced as interleaved float32 in the stream's native
// channel count and sample rate. The underlying reader only emits whole
// frames, so buffers passed to ReadSamples must hold a multiple of
// Channels() values; audio.Collect takes care of this.
//
//	src, err := vorbis.Decoder{}.Decode(r)
//	if err != nil {
//	    // not an Ogg Vorbis stream
//	}
//	defer src.Close()
//	decoded, err := audio.Collect(src)
package vorbis
