// SPDX-License-Identifier: EPL-2.0

// Package waveform provides periodic waveform generators over the sample
// model.
//
// A generator is a pure function of elapsed time in seconds that returns a
// sample.Block where every channel holds the same value:
//
//	gen := waveform.Sine(2, 440, int16(16384))  // stereo, 440 Hz, half scale
//	b := gen(0.001)                              // one frame at t = 1ms
//
// Frequency and amplitude are captured when the generator is built.
// Amplitude is given in the sample type's own unit and goes through the
// float reference of package sample, so unsigned kinds oscillate around
// their midpoint.
//
// Supported shapes (A = amplitude, f = frequency, t = time):
//
//	sine      A·sin(2πft)
//	square    +A when sin(2πft) >= 0, otherwise -A
//	triangle  2A·|ft - floor(ft + 1/2)|
//	sawtooth  2A·(ft - floor(ft + 1/2))
//	silence   equilibrium value, independent of t
//
// # Driving a generator
//
// Cursor walks a generator one frame at a time at a fixed sample rate, and
// Frames wraps the same walk as a restartable iter.Seq:
//
//	for b := range waveform.Frames(gen, 44100, 44100) {
//	    // one second of frames
//	}
package waveform
