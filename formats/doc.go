// SPDX-License-Identifier: EPL-2.0

// Package formats wires the format decoders into a single decoding
// capability.
//
// Detect looks only at magic bytes:
//
//	RIFF....WAVE        wav
//	FORM....AIFF/AIFC   aiff
//	fLaC                flac
//	OggS                ogg vorbis
//	ID3 / MPEG sync     mp3
//	....ftyp            m4a (no decoder)
//	ADTS sync           aac (no decoder)
//
// Capability.Decode turns a whole asset into an audio.Decoded, failing with
// a *audio.DecodeError that names the detected format.
package formats
