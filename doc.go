// SPDX-License-Identifier: EPL-2.0

// Package audnorm normalizes arbitrary audio assets into a single canonical
// form: a mono, 16-bit PCM RIFF/WAVE file at the source sample rate,
// optionally cut to a leading duration.
//
// # Quick Start
//
//	out, err := audnorm.Convert(audnorm.Input{
//	    Data:      data,
//	    Filename:  "take-3.flac",
//	    MediaType: "audio/flac",
//	}, audnorm.Options{Duration: 30})
//	if err != nil {
//	    // err wraps *audio.DecodeError
//	}
//	os.WriteFile(out.Filename, out.Data, 0o644) // take-3.wav
//
// # Pipeline
//
// An asset named *.wav or typed audio/wav is returned byte for byte
// (Output.Bypassed). Anything else is decoded through an audio.Capability,
// cut to audio.EffectiveFrames, folded to one channel by audio.Downmix and
// written by wav.Encode. The sample rate is never changed.
//
// # Supported Formats
//
// The built-in capability (formats.NewCapability) decodes:
//   - WAV (8/16/24/32-bit integer PCM) via formats/wav
//   - AIFF and AIFF-C (8/16/24/32-bit) via formats/aiff
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// Formats are recognized by their magic bytes, not by name. M4A and ADTS
// AAC are recognized but fail with audio.ErrUnknownFormat.
//
// # Custom Decoders
//
// Any audio.Capability can back a Converter, which is how tests inject a
// deterministic fake:
//
//	conv := audnorm.NewConverter(myCapability).WithOptions(audnorm.Options{Duration: 5})
//	out, err := conv.Convert(in)
//
// # Error Handling
//
// By default a decode failure is returned as an error. With
// Options.PassthroughOnError the input is returned unchanged instead and
// Output.Fallback carries the cause, so the caller can decide whether
// forwarding non-WAV bytes is acceptable.
package audnorm
