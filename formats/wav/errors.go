// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrSizeOverflow        = errors.New("WAV field overflows its header width")
	ErrInvalidChannelCount = errors.New("invalid WAV channel count")
	ErrInvalidSampleRate   = errors.New("invalid WAV sample rate")
	ErrUnsupportedFormat   = errors.New("unsupported WAV format tag")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrPartialFrame        = errors.New("sample count is not a whole number of frames")
	ErrNilBuffer           = errors.New("nil audio buffer")
)
