// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/wavsynth/sample"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate < 0 || int64(sampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = sample.AppendLE(data, s)
	}

	return newWaveFile[int16](1, uint32(sampleRate), data).Write(w)
}
