// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Capability turns a complete encoded asset into per-channel samples.
// Implementations either return a fully decoded buffer or fail; a failure
// caused by the input bytes is reported as a *DecodeError.
type Capability interface {
	Decode(data []byte) (*Decoded, error)
}

// Decoded holds a fully decoded asset as one sample slice per channel.
type Decoded struct {
	SampleRate int
	Channels   [][]float32
}

// NumChannels returns len(d.Channels).
func (d *Decoded) NumChannels() int { return len(d.Channels) }

// Frames returns the number of samples per channel.
func (d *Decoded) Frames() int {
	if len(d.Channels) == 0 {
		return 0
	}
	return len(d.Channels[0])
}

// Validate reports ErrMalformedAudio when d has no channels, a non-positive
// sample rate, or channels of different lengths.
func (d *Decoded) Validate() error {
	if d == nil || d.SampleRate <= 0 || len(d.Channels) == 0 {
		return ErrMalformedAudio
	}

	frames := len(d.Channels[0])
	for _, ch := range d.Channels[1:] {
		if len(ch) != frames {
			return ErrMalformedAudio
		}
	}

	return nil
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
