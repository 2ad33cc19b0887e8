// SPDX-License-Identifier: EPL-2.0

// Package wavsynth renders periodic test tones as RIFF/WAVE files.
//
// The building blocks live in sub-packages:
//   - sample: the sample kinds (8 to 64-bit integers, packed 24 and 48-bit
//     integers, 32 and 64-bit floats), conversion through a float64
//     reference, on-disk encoding, Clip and Scale
//   - waveform: sine, square, triangle, sawtooth and silence generators,
//     and a cursor that steps them through time
//   - formats/wav: the WaveFile container and its byte-exact writer
//   - device: a name/identifier registry for output devices
//
// # Quick Start
//
// Describe the tone and write it out:
//
//	tone := wavsynth.Tone{
//	    Shape:      waveform.ShapeSine,
//	    Frequency:  440,
//	    Amplitude:  0.5,
//	    Kind:       sample.KindInt16,
//	    Channels:   2,
//	    SampleRate: 44100,
//	    Duration:   2 * time.Second,
//	}
//	file, _ := os.Create("a440.wav")
//	defer file.Close()
//	if _, err := wavsynth.WriteTone(file, tone); err != nil {
//	    // errors.Is(err, wavsynth.ErrInvalidTone) for a bad description
//	}
//
// # Custom Pipelines
//
// For anything Tone does not cover, drive a generator directly and hand the
// frames to the container:
//
//	gen := waveform.Triangle(1, 220, sample.FromFloat64[float32](0.8))
//	frames := waveform.Frames(gen, 48000, 48000)
//	f, ok := wav.FromSamples(1, 48000, frames)
//
// Frames are plain slices, so they can be clipped or scaled on the way:
//
//	for b := range frames {
//	    b = sample.ClipBlock(b, 0.5)
//	    // ...
//	}
//
// # Command Line
//
// cmd/wavgen wraps Tone in a small CLI with YAML presets.
package wavsynth
