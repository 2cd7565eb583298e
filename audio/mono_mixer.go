// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages the first frames samples of every channel into a single
// mono buffer. Each channel contributes sample/channels, summed in channel
// order, so a mono input is copied through unchanged.
// frames is clamped to [0, d.Frames()].
func Downmix(d *Decoded, frames int) []float32 {
	frames = max(0, min(frames, d.Frames()))
	mono := make([]float32, frames)

	channels := len(d.Channels)
	if channels == 1 {
		copy(mono, d.Channels[0][:frames])
		return mono
	}

	div := float32(channels)
	for _, ch := range d.Channels {
		data := ch[:frames]
		for i, v := range data {
			mono[i] += v / div
		}
	}

	return mono
}
