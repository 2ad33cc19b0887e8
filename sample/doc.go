// SPDX-License-Identifier: EPL-2.0

// Package sample models audio samples across the bit-widths and encodings a
// WAVE file can carry.
//
// The set of supported sample types is closed:
//
//   - signed integers: int8, int16, Int24, int32, Int48, int64
//   - unsigned integers: uint8, uint16, Uint24, uint32, Uint48, uint64
//   - floating point: float32, float64
//
// Each type has a Kind, and each Kind reports its on-disk byte width, its
// format class (PCM or IEEE float) and the kind it is stored as. PCM files
// store signed samples at every width except 8 bits, so unsigned kinds other
// than Uint8 are remapped to their signed counterpart before encoding.
//
// # Float reference
//
// Every sample converts to and from a float64 reference value in [-1, 1):
//
//	f := sample.ToFloat64(int16(16384))  // 0.5
//	u := sample.FromFloat64[uint8](0.5)  // 192
//
// Unsigned kinds are centred on their midpoint, which is also their
// equilibrium (silence) value.
//
// # Blocks and transforms
//
// A Block holds one time instant across all channels. Clip and Scale work
// per sample and are lifted to blocks with ClipBlock and ScaleBlock:
//
//	b := sample.Fill(2, int16(30000))
//	b = sample.ClipBlock(b, 20000)  // [20000 20000]
//
// Clip only accepts signed kinds; a negative threshold panics.
package sample
