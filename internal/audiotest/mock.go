// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fakes shared by the tests of several packages.
package audiotest

import (
	"io"
	"math"
	"sync/atomic"

	"github.com/ik5/audnorm/audio"
)

// MockSource is an audio.Source that synthesizes frames from a waveform.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	waveform   func(frame int, channel int) float32

	// ReadErr, when set, is returned once the source is exhausted instead
	// of io.EOF.
	ReadErr error
	// CloseErr is returned by Close.
	CloseErr error
	// Closed reports whether Close has been called.
	Closed bool
}

var _ audio.Source = (*MockSource)(nil)

// NewMockSource creates a source of frames frames whose samples come from waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource creates a source with the same sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source where every sample equals value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return m.CloseErr
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		if m.ReadErr != nil {
			return 0, m.ReadErr
		}
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += n

	return n * m.channels, nil
}

// FakeCapability is an audio.Capability returning a fixed result.
type FakeCapability struct {
	Decoded *audio.Decoded
	Err     error

	calls atomic.Int64
}

var _ audio.Capability = (*FakeCapability)(nil)

// Decode returns f.Decoded and f.Err and counts the call.
func (f *FakeCapability) Decode([]byte) (*audio.Decoded, error) {
	f.calls.Add(1)
	return f.Decoded, f.Err
}

// Calls reports how many times Decode ran.
func (f *FakeCapability) Calls() int { return int(f.calls.Load()) }
