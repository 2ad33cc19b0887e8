// SPDX-License-Identifier: EPL-2.0

// Package preset loads tone descriptions from YAML files.
//
// A preset names every Tone field with plain values; omitted fields keep
// their defaults:
//
//	shape: triangle
//	frequency: 220
//	amplitude: 0.8
//	kind: int24
//	channels: 2
//	sample_rate: 48000
//	duration: 1.5s
//	output: triangle.wav
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/ik5/wavsynth"
	"github.com/ik5/wavsynth/sample"
	"github.com/ik5/wavsynth/waveform"
)

// Preset mirrors wavsynth.Tone with text-friendly field types.
type Preset struct {
	Shape      string  `yaml:"shape"`
	Frequency  float64 `yaml:"frequency"`
	Amplitude  float64 `yaml:"amplitude"`
	Kind       string  `yaml:"kind"`
	Channels   int     `yaml:"channels"`
	SampleRate uint32  `yaml:"sample_rate"`
	Duration   string  `yaml:"duration"`
	Output     string  `yaml:"output,omitempty"`
}

// Default is a one second mono 16-bit A440 sine at half scale.
func Default() Preset {
	return Preset{
		Shape:      waveform.ShapeSine.String(),
		Frequency:  440,
		Amplitude:  0.5,
		Kind:       sample.KindInt16.String(),
		Channels:   1,
		SampleRate: 44100,
		Duration:   "1s",
	}
}

// Parse decodes data over Default. Unknown keys are rejected so that typos
// do not go unnoticed. A document without keys yields Default.
func Parse(data []byte) (Preset, error) {
	p := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
	if err := dec.Decode(&p); err != nil {
		// The decoder clears p before reporting an empty document.
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}

	return p, nil
}

// Load reads and parses the preset file at path.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	return Parse(data)
}

// Tone converts p and validates the result.
func (p Preset) Tone() (wavsynth.Tone, error) {
	shape, err := waveform.ParseShape(p.Shape)
	if err != nil {
		return wavsynth.Tone{}, err
	}

	kind, err := sample.ParseKind(p.Kind)
	if err != nil {
		return wavsynth.Tone{}, err
	}

	d, err := time.ParseDuration(p.Duration)
	if err != nil {
		return wavsynth.Tone{}, fmt.Errorf("%w: %w", wavsynth.ErrInvalidDuration, err)
	}

	t := wavsynth.Tone{
		Shape:      shape,
		Frequency:  p.Frequency,
		Amplitude:  p.Amplitude,
		Kind:       kind,
		Channels:   p.Channels,
		SampleRate: p.SampleRate,
		Duration:   d,
	}

	return t, t.Validate()
}

// Marshal renders p as YAML.
func (p Preset) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
