// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio model and the processing steps
// of the normalisation pipeline.
//
// This package contains:
//   - Source and Decoder, the streaming interfaces implemented by formats/*
//   - Registry, mapping a format key to its Decoder
//   - Decoded, a fully decoded asset held as one slice per channel
//   - Capability, the swappable "bytes in, Decoded out" boundary
//   - Collect, EffectiveFrames and Downmix
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns interleaved float32 values nominally in [-1, 1] and
// io.EOF once the stream is exhausted.
//
// # Collecting
//
// Collect drains a Source and splits it per channel:
//
//	src, _ := decoder.Decode(r)
//	defer src.Close()
//	decoded, err := audio.Collect(src)
//
// Every channel of the result has the same length; a trailing partial
// frame is dropped.
//
// # Trimming and Mixing
//
//	frames := audio.EffectiveFrames(decoded, 30) // first 30 seconds at most
//	mono := audio.Downmix(decoded, frames)
//
// EffectiveFrames ignores non-positive or non-finite durations. Downmix is
// a plain arithmetic mean of the channels; out-of-range values are kept
// and only clamped when the container is written.
//
// # Errors
//
// A failure to interpret input bytes is reported as *DecodeError, which
// wraps the underlying cause:
//
//	var de *audio.DecodeError
//	if errors.As(err, &de) {
//	    log.Printf("cannot decode %s input: %v", de.Format, de.Err)
//	}
package audio
