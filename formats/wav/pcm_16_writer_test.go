// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavsynth/internal/audiotest"
)

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	checks := []struct {
		name      string
		got, want uint32
	}{
		{"RIFF size", binary.LittleEndian.Uint32(data[4:8]), uint32(len(data) - 8)},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 1},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 88200},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 2},
		{"bits per sample", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 8},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if string(data[0:4]) != "RIFF" || string(data[8:16]) != "WAVEfmt " || string(data[36:40]) != "data" {
		t.Errorf("chunk markers = %q %q %q", data[0:4], data[8:16], data[36:40])
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, []int16{0x1234, -2}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	want := []byte{0x34, 0x12, 0xFE, 0xFF}
	if got := buf.Bytes()[44:]; !bytes.Equal(got, want) {
		t.Errorf("sample bytes = % X, want % X", got, want)
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	original := []int16{0, 100, -100, 32767, -32768, 12345, -6789}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 16000, original); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(buf.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("go-audio rejected the file")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if pcm.Format.SampleRate != 16000 || pcm.Format.NumChannels != 1 {
		t.Errorf("format = %d Hz x %d, want 16000 Hz x 1", pcm.Format.SampleRate, pcm.Format.NumChannels)
	}
	if len(pcm.Data) != len(original) {
		t.Fatalf("decoded %d samples, want %d", len(pcm.Data), len(original))
	}
	for i, want := range original {
		if pcm.Data[i] != int(want) {
			t.Errorf("sample[%d] = %d, want %d", i, pcm.Data[i], want)
		}
	}
}

func TestWriteWAV16_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 16000, 22050, 44100, 48000, 96000} {
		buf := new(bytes.Buffer)
		if err := WriteWAV16(buf, rate, []int16{1, 2, 3}); err != nil {
			t.Fatalf("WriteWAV16(%d) error = %v", rate, err)
		}

		if got := binary.LittleEndian.Uint32(buf.Bytes()[24:28]); got != uint32(rate) {
			t.Errorf("sample rate in header = %d, want %d", got, rate)
		}
	}
}

func TestWriteWAV16_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{-1, -44100} {
		buf := new(bytes.Buffer)
		err := WriteWAV16(buf, rate, []int16{1})
		if !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("WriteWAV16(rate %d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
		if buf.Len() != 0 {
			t.Errorf("WriteWAV16(rate %d) wrote %d bytes", rate, buf.Len())
		}
	}
}

func TestWriteWAV16_SinkFailure(t *testing.T) {
	t.Parallel()

	sink := &audiotest.FailingWriter{Limit: 10}
	err := WriteWAV16(sink, 8000, []int16{1, 2})

	if !errors.Is(err, audiotest.ErrSinkClosed) {
		t.Fatalf("WriteWAV16() error = %v, want wrapped ErrSinkClosed", err)
	}
	if len(sink.Written) != 10 {
		t.Errorf("sink received %d bytes, want 10", len(sink.Written))
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100) // 1 second at 44.1kHz
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 44100, samples)
	}
}
