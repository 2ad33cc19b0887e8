// SPDX-License-Identifier: EPL-2.0

package wavsynth

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"time"

	"github.com/ik5/wavsynth/formats/wav"
	"github.com/ik5/wavsynth/sample"
	"github.com/ik5/wavsynth/waveform"
)

// Tone describes a fixed-length periodic signal to be rendered as a WAVE
// file.
type Tone struct {
	Shape     waveform.Shape
	Frequency float64 // Hz
	// Amplitude is a fraction of full scale in [0, 1]. Unsigned kinds swing
	// around their midpoint.
	Amplitude  float64
	Kind       sample.Kind
	Channels   int
	SampleRate uint32
	Duration   time.Duration
}

// Validate reports the first problem with t. Every error wraps
// ErrInvalidTone.
func (t Tone) Validate() error {
	switch {
	case !t.Shape.Valid():
		return fmt.Errorf("%w: %w: %v", ErrInvalidTone, waveform.ErrUnknownShape, t.Shape)
	case !t.Kind.Valid():
		return fmt.Errorf("%w: %w: %v", ErrInvalidTone, sample.ErrUnknownKind, t.Kind)
	case math.IsNaN(t.Frequency) || math.IsInf(t.Frequency, 0) || t.Frequency < 0:
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, t.Frequency)
	case !(t.Amplitude >= 0 && t.Amplitude <= 1):
		return fmt.Errorf("%w: %v", ErrInvalidAmplitude, t.Amplitude)
	case t.Channels < 1 || t.Channels > wav.MaxChannels:
		return fmt.Errorf("%w: %d", ErrInvalidChannels, t.Channels)
	case t.SampleRate == 0:
		return ErrInvalidSampleRate
	case t.Duration < 0:
		return fmt.Errorf("%w: %v", ErrInvalidDuration, t.Duration)
	}

	size, ok := t.dataSize()
	if limit := maxDataSize(t.Kind); !ok || size > limit {
		return fmt.Errorf("%w: %w: %v at %d Hz exceeds %d data bytes",
			ErrInvalidDuration, wav.ErrSizeOverflow, t.Duration, t.SampleRate, limit)
	}
	return nil
}

// maxDataSize is the largest data chunk the RIFF size field can describe
// for samples of kind k.
func maxDataSize(k sample.Kind) uint64 {
	empty := wav.WaveFile{Format: k.Format()}
	return math.MaxUint32 - empty.RIFFSize()
}

// frames is the number of whole frames in Duration. ok is false when the
// count does not fit 64 bits.
func (t Tone) frames() (n uint64, ok bool) {
	if t.Duration <= 0 {
		return 0, true
	}
	rate := uint64(t.SampleRate)

	hi, whole := bits.Mul64(uint64(t.Duration/time.Second), rate)
	part := uint64(t.Duration%time.Second) * rate / uint64(time.Second)

	n, carry := bits.Add64(whole, part, 0)
	return n, hi == 0 && carry == 0
}

// dataSize is the length of the encoded sample data.
func (t Tone) dataSize() (uint64, bool) {
	n, ok := t.frames()
	if !ok || t.Channels < 0 {
		return 0, false
	}
	hi, size := bits.Mul64(n, uint64(t.Channels)*uint64(t.Kind.Width()))
	return size, hi == 0
}

// Frames is the number of whole frames that fit in Duration, capped at
// math.MaxInt.
func (t Tone) Frames() int {
	n, ok := t.frames()
	if !ok || n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// WaveFile renders the tone.
func (t Tone) WaveFile() (*wav.WaveFile, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	switch t.Kind {
	case sample.KindInt8:
		return render[int8](t)
	case sample.KindInt16:
		return render[int16](t)
	case sample.KindInt24:
		return render[sample.Int24](t)
	case sample.KindInt32:
		return render[int32](t)
	case sample.KindInt48:
		return render[sample.Int48](t)
	case sample.KindInt64:
		return render[int64](t)
	case sample.KindUint8:
		return render[uint8](t)
	case sample.KindUint16:
		return render[uint16](t)
	case sample.KindUint24:
		return render[sample.Uint24](t)
	case sample.KindUint32:
		return render[uint32](t)
	case sample.KindUint48:
		return render[sample.Uint48](t)
	case sample.KindUint64:
		return render[uint64](t)
	case sample.KindFloat32:
		return render[float32](t)
	case sample.KindFloat64:
		return render[float64](t)
	}

	return nil, fmt.Errorf("%w: %w: %v", ErrInvalidTone, sample.ErrUnknownKind, t.Kind)
}

func render[T sample.Type](t Tone) (*wav.WaveFile, error) {
	gen, err := waveform.New(t.Shape, t.Channels, t.Frequency, sample.FromFloat64[T](t.Amplitude))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTone, err)
	}

	blocks := make([]sample.Block[T], t.Frames())
	waveform.NewCursor(gen, t.SampleRate).Read(blocks)

	f, ok := wav.FromBlocks(t.Channels, t.SampleRate, blocks)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, t.Channels)
	}
	return f, nil
}

// WriteTone renders t and writes it to w as a WAVE file. Nothing is written
// when t is invalid.
func WriteTone(w io.Writer, t Tone) (int64, error) {
	f, err := t.WaveFile()
	if err != nil {
		return 0, err
	}
	return f.WriteTo(w)
}
