// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats"
	"github.com/ik5/audnorm/formats/wav"
)

// Input is an encoded asset with its advisory metadata. Convert never
// modifies it.
type Input struct {
	Data      []byte
	Filename  string
	MediaType string
}

// Output is the result of a conversion.
type Output struct {
	Data      []byte
	Filename  string
	MediaType string

	// Bypassed is set when the input was already WAV and Data is the input slice.
	Bypassed bool
	// Fallback holds the decode error when Options.PassthroughOnError
	// returned the input unchanged.
	Fallback error
}

// Options tunes a conversion.
type Options struct {
	// Duration keeps only the first Duration seconds. Zero, negative or
	// non-finite values keep everything.
	Duration float64

	// PassthroughOnError returns the original input, with Output.Fallback
	// set, instead of failing when the asset cannot be decoded. Callers
	// enabling it must cope with non-WAV bytes in Output.Data.
	PassthroughOnError bool
}

// DefaultOptions returns Options with no trimming and strict error handling.
func DefaultOptions() Options {
	return Options{
		Duration:           0,
		PassthroughOnError: false,
	}
}

// Converter normalizes assets to mono 16-bit PCM WAV.
type Converter struct {
	Capability audio.Capability
	Options    Options
}

// NewConverter creates a Converter decoding through c. A nil c selects the
// built-in formats.Capability.
func NewConverter(c audio.Capability) *Converter {
	if c == nil {
		c = formats.NewCapability()
	}

	return &Converter{
		Capability: c,
		Options:    DefaultOptions(),
	}
}

// WithOptions sets conversion options
func (c *Converter) WithOptions(opts Options) *Converter {
	c.Options = opts
	return c
}

// Convert turns in into a mono 16-bit PCM WAV named after in.Filename.
// Inputs that ShouldBypass accepts are returned as is without decoding.
// Decode failures are returned as errors wrapping *audio.DecodeError.
func (c *Converter) Convert(in Input) (Output, error) {
	if ShouldBypass(in.Filename, in.MediaType) {
		return passthrough(in, nil), nil
	}

	decoded, err := c.Capability.Decode(in.Data)
	if err != nil {
		if c.Options.PassthroughOnError {
			return passthrough(in, err), nil
		}
		return Output{}, fmt.Errorf("converting %q: %w", in.Filename, err)
	}

	if err := decoded.Validate(); err != nil {
		return Output{}, fmt.Errorf("converting %q: %w", in.Filename, err)
	}

	frames := audio.EffectiveFrames(decoded, c.Options.Duration)
	mono := audio.Downmix(decoded, frames)

	return Output{
		Data:      wav.Encode(mono, decoded.SampleRate),
		Filename:  TargetFilename(in.Filename),
		MediaType: wav.MediaType,
	}, nil
}

func passthrough(in Input, cause error) Output {
	return Output{
		Data:      in.Data,
		Filename:  in.Filename,
		MediaType: in.MediaType,
		Bypassed:  cause == nil,
		Fallback:  cause,
	}
}

// Convert runs in through a Converter using the built-in decoders.
func Convert(in Input, opts Options) (Output, error) {
	return NewConverter(nil).WithOptions(opts).Convert(in)
}
