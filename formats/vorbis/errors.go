// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidHeader is returned when the identification header names no
// channels or no sample rate.
var ErrInvalidHeader = errors.New("vorbis identification header is invalid")
