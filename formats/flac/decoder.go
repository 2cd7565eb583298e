// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of goflac.Stream used by source, mockable in tests.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int

	// interleaved samples of the current frame not yet handed out
	pending []float32
	done    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 - 4096%s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("closing flac stream: %w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.nextFrame(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}

	return n, nil
}

// nextFrame decodes one FLAC frame into pending, or marks the stream done.
func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	if len(f.Subframes) < s.channels {
		return fmt.Errorf("%w: frame has %d subframes, stream has %d channels",
			ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	blockSize := int(f.BlockSize)
	for _, sub := range f.Subframes[:s.channels] {
		blockSize = min(blockSize, len(sub.Samples))
	}

	scale := float32(int64(1) << (s.bitDepth - 1))
	if cap(s.pending) < blockSize*s.channels {
		s.pending = make([]float32, blockSize*s.channels)
	}
	s.pending = s.pending[:blockSize*s.channels]

	for i := range blockSize {
		for ch := range s.channels {
			s.pending[i*s.channels+ch] = float32(f.Subframes[ch].Samples[i]) / scale
		}
	}

	return nil
}

// Decoder reads native FLAC streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrInvalidStreamInfo
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
