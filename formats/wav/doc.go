// SPDX-License-Identifier: EPL-2.0

// Package wav encodes sample data as RIFF/WAVE files.
//
// A WaveFile holds the fmt chunk fields and the interleaved little-endian
// sample bytes. Build one from typed frames:
//
//	gen := waveform.Sine(2, 440, int16(16384))
//	f, ok := wav.FromSamples(2, 44100, waveform.Frames(gen, 44100, 44100))
//	if !ok {
//	    // channel count is 0, above 65535, or a frame had the wrong width
//	}
//	err := f.Write(file)
//
// FromBlocks does the same from a slice and encodes large inputs in
// parallel. FromRawData wraps bytes that are already encoded, and
// FromIntBuffer/FromFloat32Buffer take github.com/go-audio/audio buffers.
//
// # File Format
//
// PCM files (44-byte header):
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): format tag 1, channels, sample rate, byte rate,
//     block align, bits per sample
//   - data chunk header (8 bytes), then the samples
//
// IEEE float files (58-byte header) use format tag 3, an 18-byte fmt chunk
// ending in a zero extension size, and a fact chunk holding the number of
// samples before the data chunk.
//
// Block align is bytes per sample × channels. Unsigned sample kinds wider
// than 8 bits are stored as their signed counterpart, 8-bit stays unsigned.
// Odd-sized data chunks are written without a pad byte.
//
// # Errors
//
// Header fields are checked before the first byte reaches the writer:
//   - ErrSizeOverflow: RIFF size, byte rate, block align or bits per sample
//     does not fit its field
//   - ErrInvalidChannelCount, ErrUnsupportedBitDepth, ErrUnsupportedFormat:
//     the WaveFile was built by hand with an unusable layout
//
// Errors from the writer are returned wrapped; use errors.Is to inspect them.
// A failed write may leave a partial file behind.
package wav
