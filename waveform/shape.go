// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"strings"

	"github.com/ik5/wavsynth/sample"
)

// Shape names one of the built-in generators.
type Shape uint8

const (
	ShapeSilence Shape = iota
	ShapeSine
	ShapeSquare
	ShapeTriangle
	ShapeSawtooth
)

var shapeNames = [...]string{
	ShapeSilence:  "silence",
	ShapeSine:     "sine",
	ShapeSquare:   "square",
	ShapeTriangle: "triangle",
	ShapeSawtooth: "sawtooth",
}

// Shapes returns every known shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, len(shapeNames))
	for i := range shapeNames {
		out[i] = Shape(i)
	}
	return out
}

func (s Shape) Valid() bool { return int(s) < len(shapeNames) }

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

// ParseShape is case-insensitive and ignores surrounding blanks.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText lets a Shape appear as a plain string in YAML and JSON.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// New builds the generator for shape. Silence ignores frequency and
// amplitude.
func New[T sample.Type](shape Shape, channels int, frequency float64, amplitude T) (Func[T], error) {
	switch shape {
	case ShapeSilence:
		return Silence[T](channels), nil
	case ShapeSine:
		return Sine(channels, frequency, amplitude), nil
	case ShapeSquare:
		return Square(channels, frequency, amplitude), nil
	case ShapeTriangle:
		return Triangle(channels, frequency, amplitude), nil
	case ShapeSawtooth:
		return Sawtooth(channels, frequency, amplitude), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
}
