// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNoSampleRate is returned when the first frame header carries no usable rate.
var ErrNoSampleRate = errors.New("mp3 stream has no sample rate")
