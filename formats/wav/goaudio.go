// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"

	"github.com/ik5/wavsynth/sample"
)

func checkBufferFormat(f *audio.Format, samples int) (int, uint32, error) {
	if f == nil {
		return 0, 0, fmt.Errorf("%w: missing format", ErrNilBuffer)
	}
	if !validChannels(f.NumChannels) {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidChannelCount, f.NumChannels)
	}
	if f.SampleRate <= 0 || int64(f.SampleRate) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}
	if samples%f.NumChannels != 0 {
		return 0, 0, fmt.Errorf("%w: %d samples over %d channels", ErrPartialFrame, samples, f.NumChannels)
	}
	return f.NumChannels, uint32(f.SampleRate), nil
}

func encodeInts[T sample.Type](data []int) []byte {
	out := make([]byte, 0, len(data)*int(sample.KindOf[T]().Width()))
	for _, v := range data {
		out = sample.AppendLE(out, T(v))
	}
	return out
}

// FromIntBuffer encodes a go-audio integer buffer as PCM at its
// SourceBitDepth. 8-bit buffers hold unsigned values as WAVE expects; 16, 24
// and 32-bit buffers hold signed values. Values outside the bit depth are
// truncated.
func FromIntBuffer(buf *audio.IntBuffer) (*WaveFile, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	channels, rate, err := checkBufferFormat(buf.Format, len(buf.Data))
	if err != nil {
		return nil, err
	}

	switch buf.SourceBitDepth {
	case 8:
		return newWaveFile[uint8](channels, rate, encodeInts[uint8](buf.Data)), nil
	case 16:
		return newWaveFile[int16](channels, rate, encodeInts[int16](buf.Data)), nil
	case 24:
		return newWaveFile[sample.Int24](channels, rate, encodeInts[sample.Int24](buf.Data)), nil
	case 32:
		return newWaveFile[int32](channels, rate, encodeInts[int32](buf.Data)), nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, buf.SourceBitDepth)
}

// FromFloat32Buffer encodes a go-audio float buffer as 32-bit IEEE float.
func FromFloat32Buffer(buf *audio.Float32Buffer) (*WaveFile, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	channels, rate, err := checkBufferFormat(buf.Format, len(buf.Data))
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(buf.Data)*4)
	for _, v := range buf.Data {
		data = sample.AppendLE(data, v)
	}

	return newWaveFile[float32](channels, rate, data), nil
}
