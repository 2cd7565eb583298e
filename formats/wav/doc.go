// SPDX-License-Identifier: EPL-2.0

// Package wav reads PCM WAV input and writes the canonical output container.
//
// # Decoding
//
// Decoder parses WAV files through github.com/go-audio/wav, so unknown
// chunks and non-canonical layouts are handled. Integer PCM at 8, 16, 24
// and 32 bits with any channel count is supported:
//
//	src, err := wav.Decoder{}.Decode(r)
//	if err != nil {
//	    // wav.ErrNotWavFile, wav.ErrNotPCM, wav.ErrUnsupportedBitDepth ...
//	}
//	defer src.Close()
//
// # Encoding
//
// The output container is always mono, 16-bit, uncompressed PCM:
//
//	data := wav.Encode(mono, sampleRate)
//
// Encode clamps each sample to [-1, 1] and scales negative values by 32768
// and non-negative values by 32767 before rounding (see utils.Float32ToInt16).
// Encode serializes through WriteWAV16, which streams already-quantized
// samples to any io.Writer.
//
// # File Format
//
//	offset  field           value
//	0       "RIFF"
//	4       ChunkSize       36 + dataSize
//	8       "WAVE"
//	12      "fmt "
//	16      Subchunk1Size   16
//	20      AudioFormat     1
//	22      NumChannels     1
//	24      SampleRate
//	28      ByteRate        SampleRate * 2
//	32      BlockAlign      2
//	34      BitsPerSample   16
//	36      "data"
//	40      dataSize        frames * 2
//	44      samples, little-endian int16
//
// All multi-byte fields are little-endian.
package wav
