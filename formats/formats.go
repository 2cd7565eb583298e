// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/aiff"
	"github.com/ik5/audnorm/formats/flac"
	"github.com/ik5/audnorm/formats/mp3"
	"github.com/ik5/audnorm/formats/vorbis"
	"github.com/ik5/audnorm/formats/wav"
)

// Format keys returned by Detect and used by the default registry.
const (
	WAV     = "wav"
	AIFF    = "aiff"
	FLAC    = "flac"
	Vorbis  = "ogg vorbis"
	MP3     = "mp3"
	M4A     = "m4a"
	AAC     = "aac"
	Unknown = "unknown"
)

// Detect names the container of data from its leading bytes. Filenames and
// media types are never consulted.
func Detect(data []byte) string {
	switch {
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return WAV
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("FORM")) &&
		(bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return AIFF
	case bytes.HasPrefix(data, []byte("fLaC")):
		return FLAC
	case bytes.HasPrefix(data, []byte("OggS")):
		return Vorbis
	case bytes.HasPrefix(data, []byte("ID3")):
		return MP3
	case len(data) >= 8 && bytes.Equal(data[4:8], []byte("ftyp")):
		return M4A
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xF6 == 0xF0:
		// ADTS: 12-bit sync, layer always 00
		return AAC
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0 && data[1]&0x06 != 0:
		// MPEG audio frame: 11-bit sync, layer I, II or III
		return MP3
	}

	return Unknown
}

// NewRegistry returns a registry holding every decoder this module ships.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(WAV, wav.Decoder{})
	r.Register(AIFF, aiff.Decoder{})
	r.Register(FLAC, flac.Decoder{})
	r.Register(Vorbis, vorbis.Decoder{})
	r.Register(MP3, mp3.Decoder{})

	return r
}

// Capability is the default audio.Capability: it sniffs the container,
// picks a decoder from its registry and collects the whole stream.
// It is safe for concurrent use.
type Capability struct {
	registry *audio.Registry
}

var _ audio.Capability = (*Capability)(nil)

// NewCapability returns a Capability backed by NewRegistry.
func NewCapability() *Capability {
	return NewCapabilityWithRegistry(NewRegistry())
}

// NewCapabilityWithRegistry returns a Capability using r for decoder lookup.
func NewCapabilityWithRegistry(r *audio.Registry) *Capability {
	return &Capability{registry: r}
}

// Decode returns all of data's samples or a *audio.DecodeError. No partial
// result is ever returned, and the per-call source is closed on every path.
func (c *Capability) Decode(data []byte) (decoded *audio.Decoded, err error) {
	format := Detect(data)

	dec, ok := c.registry.Get(format)
	if !ok {
		return nil, &audio.DecodeError{Format: format, Err: audio.ErrUnknownFormat}
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &audio.DecodeError{Format: format, Err: err}
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			decoded, err = nil, &audio.DecodeError{Format: format, Err: cerr}
		}
	}()

	d, err := audio.Collect(src)
	if err != nil {
		return nil, &audio.DecodeError{Format: format, Err: err}
	}

	if err := d.Validate(); err != nil {
		return nil, &audio.DecodeError{Format: format, Err: err}
	}

	return d, nil
}
