// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"math"
	"strconv"
	"strings"

	"github.com/ik5/audnorm/formats/wav"
)

// ShouldBypass reports whether an asset is already in the output format and
// must be passed through untouched. It trusts the advisory metadata only:
// a name ending in .wav (any case) or the exact media type audio/wav.
func ShouldBypass(filename, mediaType string) bool {
	return strings.HasSuffix(strings.ToLower(filename), wav.Extension) || mediaType == wav.MediaType
}

// TargetFilename replaces the last extension of name with .wav. An
// extension is a dot followed by at least one non-dot character at the end
// of name; a name without one keeps all of its characters.
func TargetFilename(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		name = name[:i]
	}

	return name + wav.Extension
}

// ParseDuration turns free-form user input into a trim duration in seconds.
// Anything that is not a finite positive number yields 0, meaning no trim.
func ParseDuration(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}

	return v
}
