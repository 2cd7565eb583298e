// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource generates interleaved samples from a waveform function.
type mockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int // frames generated so far
	bufSize    int
	waveform   func(frame int, channel int) float32

	// failAt makes ReadSamples return failErr once generated reaches it
	failAt  int
	failErr error
	closed  bool
}

func newMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		bufSize:    4096,
		waveform:   waveform,
		failAt:     -1,
	}
}

func newSilentSource(sampleRate, channels, frames int) *mockSource {
	return newConstantSource(sampleRate, channels, frames, 0)
}

func newConstantSource(sampleRate, channels, frames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func newSineSource(sampleRate, channels, frames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return m.bufSize }
func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAt >= 0 && m.generated >= m.failAt {
		return 0, m.failErr
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	toWrite := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAt >= 0 {
		toWrite = min(toWrite, m.failAt-m.generated)
	}

	for f := range toWrite {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += toWrite

	if m.generated >= m.frames {
		return toWrite * m.channels, io.EOF
	}

	return toWrite * m.channels, nil
}

// sliceSource replays a fixed interleaved slice in reads of at most step values,
// which need not be frame aligned.
type sliceSource struct {
	sampleRate int
	channels   int
	data       []float32
	step       int
	pos        int
}

func (s *sliceSource) SampleRate() int { return s.sampleRate }
func (s *sliceSource) Channels() int   { return s.channels }
func (s *sliceSource) BufSize() int    { return 64 }
func (s *sliceSource) Close() error    { return nil }

func (s *sliceSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), s.step)], s.data[s.pos:])
	s.pos += n

	return n, nil
}

// stallSource never makes progress.
type stallSource struct{}

func (stallSource) SampleRate() int                    { return 8000 }
func (stallSource) Channels() int                      { return 1 }
func (stallSource) BufSize() int                       { return 16 }
func (stallSource) Close() error                       { return nil }
func (stallSource) ReadSamples([]float32) (int, error) { return 0, nil }
