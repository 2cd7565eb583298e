// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and quantizes it to 16-bit PCM.
// Negative values scale by 32768 and non-negative ones by 32767, so both
// -1 and 1 land exactly on the int16 limits. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	if v != v {
		return 0
	}

	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	if v < 0 {
		return int16(math.Round(v * 32768))
	}
	return int16(math.Round(v * 32767))
}
