// SPDX-License-Identifier: EPL-2.0

package wavsynth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTone = errors.New("invalid tone")

	ErrInvalidFrequency  = fmt.Errorf("%w: frequency must be finite and not negative", ErrInvalidTone)
	ErrInvalidAmplitude  = fmt.Errorf("%w: amplitude must be within [0, 1]", ErrInvalidTone)
	ErrInvalidChannels   = fmt.Errorf("%w: channels must be within [1, 65535]", ErrInvalidTone)
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive", ErrInvalidTone)
	ErrInvalidDuration   = fmt.Errorf("%w: duration must not be negative", ErrInvalidTone)
)
