// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audnorm/audio"
)

// mockOggVorbisReader stands in for oggvorbis.Reader. Like the real reader it
// returns a count of values, always a whole number of frames. maxFrames caps
// each read to mimic packet-sized output.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	maxFrames  int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if len(m.samples) == 0 {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	frames := len(buf) / m.channels
	if m.maxFrames > 0 {
		frames = min(frames, m.maxFrames)
	}
	n := copy(buf[:frames*m.channels], m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func newTestSource(m *mockOggVorbisReader) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("OggS but not really an ogg vorbis stream")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockOggVorbisReader{sampleRate: 48000, channels: 3})

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 3 {
		t.Errorf("Channels() = %d, want 3", src.Channels())
	}
	if src.BufSize()%3 != 0 || src.BufSize() == 0 {
		t.Errorf("BufSize() = %d, want a positive multiple of 3", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_ReturnsValueCount(t *testing.T) {
	t.Parallel()

	want := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: append([]float32(nil), want...)})

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if n, err = src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: []float32{1}})

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: make([]float32, 10)})

	_, err := src.ReadSamples(make([]float32, 3))
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSource_Collect_Channels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		channels  int
		maxFrames int
	}{
		{"mono", 1, 0},
		{"stereo", 2, 0},
		{"stereo small packets", 2, 7},
		{"5.1", 6, 0},
		{"5.1 single frames", 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const frames = 1000
			samples := make([]float32, frames*tt.channels)
			for f := range frames {
				for c := range tt.channels {
					samples[f*tt.channels+c] = float32(c) / 10
				}
			}

			d, err := audio.Collect(newTestSource(&mockOggVorbisReader{
				sampleRate: 44100,
				channels:   tt.channels,
				samples:    samples,
				maxFrames:  tt.maxFrames,
			}))
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}

			if d.NumChannels() != tt.channels || d.Frames() != frames {
				t.Fatalf("got %d ch x %d frames, want %d x %d", d.NumChannels(), d.Frames(), tt.channels, frames)
			}
			for c := range tt.channels {
				if d.Channels[c][frames-1] != float32(c)/10 {
					t.Errorf("channel %d last sample = %v, want %v", c, d.Channels[c][frames-1], float32(c)/10)
				}
			}
		})
	}
}

func TestSource_ReadSamples_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("ogg: missing capture pattern")
	src := newTestSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: []float32{0.5}, err: boom})

	_, err := audio.Collect(src)
	if !errors.Is(err, boom) {
		t.Errorf("Collect() error = %v, want %v", err, boom)
	}
}

func BenchmarkSource_Collect(b *testing.B) {
	samples := make([]float32, 44100*2)

	b.ReportAllocs()

	for b.Loop() {
		src := newTestSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples})
		if _, err := audio.Collect(src); err != nil {
			b.Fatal(err)
		}
	}
}
