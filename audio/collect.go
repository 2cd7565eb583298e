// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads Collect tolerates in a row.
const maxEmptyReads = 100

// Collect drains src until io.EOF and splits the interleaved stream into
// one slice per channel. A trailing partial frame is dropped so every
// channel ends up with the same length. Collect does not close src.
func Collect(src Source) (*Decoded, error) {
	channels := src.Channels()
	if channels <= 0 || src.SampleRate() <= 0 {
		return nil, ErrMalformedAudio
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	// Keep reads frame aligned for sources that insist on it
	bufSize -= bufSize % channels
	buf := make([]float32, bufSize)

	var interleaved []float32
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrNoProgress
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	frames := len(interleaved) / channels
	out := &Decoded{
		SampleRate: src.SampleRate(),
		Channels:   make([][]float32, channels),
	}
	for c := range channels {
		out.Channels[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			out.Channels[c][f] = interleaved[base+c]
		}
	}

	return out, nil
}
