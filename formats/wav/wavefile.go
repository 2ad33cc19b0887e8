// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"math"
	"sync"
	"time"

	"github.com/ik5/wavsynth/sample"
)

// Format is the fmt chunk's format tag.
type Format = sample.Format

const (
	PulseCodeModulation = sample.PulseCodeModulation
	FloatingPoint       = sample.FloatingPoint
)

const (
	// MaxChannels is the largest channel count the fmt chunk can hold.
	MaxChannels = math.MaxUint16

	pcmHeaderSize   = 44
	floatHeaderSize = 58
)

// WaveFile is format metadata plus interleaved little-endian sample data,
// ready to be written as a RIFF/WAVE container.
//
// Data is never modified by this package. A WaveFile built by FromRawData
// shares the caller's slice, so the caller must not change it while the
// WaveFile is in use.
type WaveFile struct {
	Format         Format
	Channels       uint16
	SampleRate     uint32
	BytesPerSample uint16
	Data           []byte
}

func validChannels(channels int) bool {
	return channels > 0 && channels <= MaxChannels
}

func newWaveFile[T sample.Type](channels int, sampleRate uint32, data []byte) *WaveFile {
	kind := sample.KindOf[T]()

	return &WaveFile{
		Format:         kind.Format(),
		Channels:       uint16(channels),
		SampleRate:     sampleRate,
		BytesPerSample: kind.Width(),
		Data:           data,
	}
}

// FromSamples encodes every frame of frames, in order, into a new WaveFile.
// Format and bytes per sample come from T. It reports false when channels is
// 0 or above MaxChannels, or when a frame is not exactly channels wide.
// frames must be finite.
func FromSamples[T sample.Type](channels int, sampleRate uint32, frames iter.Seq[sample.Block[T]]) (*WaveFile, bool) {
	if !validChannels(channels) {
		return nil, false
	}

	data := []byte{}
	for b := range frames {
		if len(b) != channels {
			return nil, false
		}
		data = b.AppendLE(data)
	}

	return newWaveFile[T](channels, sampleRate, data), true
}

// shardFrames is the number of frames FromBlocks encodes per goroutine.
const shardFrames = 1 << 14

// FromBlocks is FromSamples over a slice. Large inputs are encoded in
// parallel shards; the output is identical to FromSamples.
func FromBlocks[T sample.Type](channels int, sampleRate uint32, blocks []sample.Block[T]) (*WaveFile, bool) {
	if !validChannels(channels) {
		return nil, false
	}
	for _, b := range blocks {
		if len(b) != channels {
			return nil, false
		}
	}

	stride := channels * int(sample.KindOf[T]().Width())
	data := make([]byte, len(blocks)*stride)

	var wg sync.WaitGroup
	for start := 0; start < len(blocks); start += shardFrames {
		end := min(start+shardFrames, len(blocks))

		wg.Go(func() {
			// Each shard appends into its own fixed window of data.
			buf := data[start*stride : start*stride : end*stride]
			for _, b := range blocks[start:end] {
				buf = b.AppendLE(buf)
			}
		})
	}
	wg.Wait()

	return newWaveFile[T](channels, sampleRate, data), true
}

// FromRawData wraps already encoded bytes. Nothing checks that data matches
// the declared layout. It reports false when channels or bytesPerSample is
// 0 or does not fit 16 bits, or when format is not PCM or float.
func FromRawData(data []byte, format Format, channels int, sampleRate uint32, bytesPerSample int) (*WaveFile, bool) {
	if !validChannels(channels) || bytesPerSample <= 0 || bytesPerSample > math.MaxUint16 {
		return nil, false
	}
	if format != PulseCodeModulation && format != FloatingPoint {
		return nil, false
	}

	return &WaveFile{
		Format:         format,
		Channels:       uint16(channels),
		SampleRate:     sampleRate,
		BytesPerSample: uint16(bytesPerSample),
		Data:           data,
	}, true
}

// HeaderSize is the number of bytes written before the sample data.
func (f *WaveFile) HeaderSize() int {
	if f.Format == FloatingPoint {
		return floatHeaderSize
	}
	return pcmHeaderSize
}

// RIFFSize is the value of the RIFF chunk size field: everything after the
// first eight bytes. It is not range checked.
func (f *WaveFile) RIFFSize() uint64 {
	return f.riffSize(uint64(len(f.Data)))
}

func (f *WaveFile) riffSize(dataLen uint64) uint64 {
	return uint64(f.HeaderSize()-8) + dataLen
}

// ByteRate is SampleRate × Channels × BytesPerSample. It is not range
// checked.
func (f *WaveFile) ByteRate() uint64 {
	return uint64(f.SampleRate) * f.BlockAlign()
}

// BlockAlign is the size of one frame in bytes. It is not range checked.
func (f *WaveFile) BlockAlign() uint64 {
	return uint64(f.Channels) * uint64(f.BytesPerSample)
}

// Frames is the number of whole frames in Data.
func (f *WaveFile) Frames() int {
	align := f.BlockAlign()
	if align == 0 {
		return 0
	}
	return int(uint64(len(f.Data)) / align)
}

// Duration is the playing time of the whole frames in Data.
func (f *WaveFile) Duration() time.Duration {
	if f.SampleRate == 0 {
		return 0
	}
	frames := uint64(f.Frames())
	rate := uint64(f.SampleRate)

	return time.Duration(frames/rate)*time.Second +
		time.Duration(frames%rate)*time.Second/time.Duration(rate)
}

func (f *WaveFile) validate() error {
	return f.checkLayout(uint64(len(f.Data)))
}

// checkLayout checks every header field for a data chunk of dataLen bytes.
func (f *WaveFile) checkLayout(dataLen uint64) error {
	switch {
	case f.Channels == 0:
		return ErrInvalidChannelCount
	case f.BytesPerSample == 0:
		return fmt.Errorf("%w: 0 bytes per sample", ErrUnsupportedBitDepth)
	case f.Format != PulseCodeModulation && f.Format != FloatingPoint:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f.Format)
	case f.riffSize(dataLen) > math.MaxUint32:
		return fmt.Errorf("%w: RIFF size %d", ErrSizeOverflow, f.riffSize(dataLen))
	case f.ByteRate() > math.MaxUint32:
		return fmt.Errorf("%w: byte rate %d", ErrSizeOverflow, f.ByteRate())
	case f.BlockAlign() > math.MaxUint16:
		return fmt.Errorf("%w: block align %d", ErrSizeOverflow, f.BlockAlign())
	case uint32(f.BytesPerSample)*8 > math.MaxUint16:
		return fmt.Errorf("%w: %d bits per sample", ErrSizeOverflow, uint32(f.BytesPerSample)*8)
	}
	return nil
}

// AppendHeader appends the RIFF, fmt (and for float data, fact) headers and
// the data chunk header. Every field is checked before anything is appended.
func (f *WaveFile) AppendHeader(dst []byte) ([]byte, error) {
	if err := f.validate(); err != nil {
		return dst, err
	}

	le := binary.LittleEndian
	dataSize := uint32(len(f.Data))

	dst = append(dst, "RIFF"...)
	dst = le.AppendUint32(dst, uint32(f.RIFFSize()))
	dst = append(dst, "WAVEfmt "...)

	if f.Format == FloatingPoint {
		dst = le.AppendUint32(dst, 18)
	} else {
		dst = le.AppendUint32(dst, 16)
	}
	dst = le.AppendUint16(dst, uint16(f.Format))
	dst = le.AppendUint16(dst, f.Channels)
	dst = le.AppendUint32(dst, f.SampleRate)
	dst = le.AppendUint32(dst, uint32(f.ByteRate()))
	dst = le.AppendUint16(dst, uint16(f.BlockAlign()))
	dst = le.AppendUint16(dst, f.BytesPerSample*8)

	if f.Format == FloatingPoint {
		dst = le.AppendUint16(dst, 0) // cbSize
		dst = append(dst, "fact"...)
		dst = le.AppendUint32(dst, 4)
		dst = le.AppendUint32(dst, dataSize/uint32(f.BytesPerSample))
	}

	dst = append(dst, "data"...)
	dst = le.AppendUint32(dst, dataSize)

	return dst, nil
}

// WriteTo writes the complete container to w. Nothing is written when a
// header field overflows. A failing writer may leave a partial container
// behind; the returned count says how much got through.
func (f *WaveFile) WriteTo(w io.Writer) (int64, error) {
	header, err := f.AppendHeader(make([]byte, 0, floatHeaderSize))
	if err != nil {
		return 0, err
	}

	n, err := w.Write(header)
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("writing WAV header: %w", err)
	}

	if len(f.Data) == 0 {
		return written, nil
	}

	n, err = w.Write(f.Data)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("writing WAV data: %w", err)
	}

	return written, nil
}

// Write is WriteTo without the byte count.
func (f *WaveFile) Write(w io.Writer) error {
	_, err := f.WriteTo(w)
	return err
}

// MarshalBinary returns the complete container as one slice.
func (f *WaveFile) MarshalBinary() ([]byte, error) {
	buf, err := f.AppendHeader(make([]byte, 0, f.HeaderSize()+len(f.Data)))
	if err != nil {
		return nil, err
	}
	return append(buf, f.Data...), nil
}
