// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/internal/audiotest"
)

// Example_collect drains a streaming source into per-channel buffers.
func Example_collect() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0) // 1 second stereo
	defer source.Close()

	decoded, err := audio.Collect(source)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", decoded.SampleRate)
	fmt.Printf("Channels: %d\n", decoded.NumChannels())
	fmt.Printf("Frames: %d\n", decoded.Frames())
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 2
	// Frames: 16000
}

// Example_downmix trims a stereo buffer to half a second and folds it to mono.
func Example_downmix() {
	decoded := &audio.Decoded{
		SampleRate: 8,
		Channels: [][]float32{
			{1, 1, 1, 1, 1, 1, 1, 1},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	frames := audio.EffectiveFrames(decoded, 0.5)
	mono := audio.Downmix(decoded, frames)

	fmt.Println(frames, mono)
	// Output: 4 [0.5 0.5 0.5 0.5]
}

type oneFormat struct{}

func (oneFormat) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 80), nil
}

// Example_registry shows registering decoders under a format key.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", oneFormat{})
	registry.Register("flac", oneFormat{})

	_, ok := registry.Get("m4a")
	fmt.Println(registry.Formats(), ok)
	// Output: [flac wav] false
}

// Example_decodeError shows how callers recognise a decode failure.
func Example_decodeError() {
	var err error = &audio.DecodeError{Format: "unknown", Err: audio.ErrUnknownFormat}

	var de *audio.DecodeError
	if errors.As(err, &de) {
		fmt.Println("format:", de.Format)
	}
	fmt.Println(errors.Is(err, audio.ErrUnknownFormat))
	// Output:
	// format: unknown
	// true
}
