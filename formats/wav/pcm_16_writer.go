// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audnorm/utils"
)

const (
	// Extension is the canonical file extension of the output container.
	Extension = ".wav"
	// MediaType is the canonical media type of the output container.
	MediaType = "audio/wav"
	// HeaderSize is the size of the canonical PCM WAV header.
	HeaderSize = 44

	numChannels    = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	blockAlign     = numChannels * bytesPerSample
)

// PutHeader writes the 44-byte header of a mono 16-bit PCM WAV holding
// frames samples at sampleRate into dst, which must be at least HeaderSize long.
func PutHeader(dst []byte, sampleRate, frames int) {
	dataSize := uint32(frames * blockAlign)
	byteRate := uint32(sampleRate * blockAlign)

	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(dst[22:24], numChannels)
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], byteRate)
	binary.LittleEndian.PutUint16(dst[32:34], blockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// Encode quantizes mono to 16-bit PCM and returns a complete WAV file:
// the 44-byte header followed by len(mono) little-endian int16 samples.
// Samples outside [-1, 1] are clamped.
func Encode(mono []float32, sampleRate int) []byte {
	pcm := make([]int16, len(mono))
	for i, s := range mono {
		pcm[i] = utils.Float32ToInt16(s)
	}

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(pcm)*bytesPerSample))
	// bytes.Buffer never returns a write error
	_ = WriteWAV16(buf, sampleRate, pcm)

	return buf.Bytes()
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	header := make([]byte, HeaderSize)
	PutHeader(header, sampleRate, len(samples))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	return nil
}
