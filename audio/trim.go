// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// EffectiveFrames returns how many frames of d survive a cut at seconds.
// A seconds value that is not a finite positive number disables trimming.
// The result never exceeds d.Frames().
func EffectiveFrames(d *Decoded, seconds float64) int {
	frames := d.Frames()
	if !(seconds > 0) || math.IsInf(seconds, 1) {
		return frames
	}

	limit := math.Floor(float64(d.SampleRate) * seconds)
	if limit >= float64(frames) {
		return frames
	}

	return int(limit)
}
