// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III audio through github.com/hajimehoshi/go-mp3.
//
// The decoder always yields two interleaved channels, even for mono
// streams, with samples scaled from int16 into [-1, 1). The sample rate is
// taken from the first frame header.
//
//	src, err := mp3.Decoder{}.Decode(r)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	defer src.Close()
//	decoded, err := audio.Collect(src)
package mp3
