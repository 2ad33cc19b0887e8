// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrUnknownShape = errors.New("unknown waveform shape")
)
