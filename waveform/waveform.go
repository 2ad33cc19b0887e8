// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wavsynth/sample"
)

// Func generates the frame at time t (seconds).
type Func[T sample.Type] func(t float64) sample.Block[T]

// constant builds a generator from a shape function returning a value in
// [-1, 1] for the time t.
func constant[T sample.Type](channels int, amplitude T, shape func(t float64) float64) Func[T] {
	a := sample.ToFloat64(amplitude)

	return func(t float64) sample.Block[T] {
		return sample.Fill(channels, sample.FromFloat64[T](a*shape(t)))
	}
}

// Sine returns a generator for A·sin(2πft).
func Sine[T sample.Type](channels int, frequency float64, amplitude T) Func[T] {
	return constant(channels, amplitude, func(t float64) float64 {
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// Square returns a generator that holds +A while sin(2πft) is non-negative
// and -A otherwise.
func Square[T sample.Type](channels int, frequency float64, amplitude T) Func[T] {
	return constant(channels, amplitude, func(t float64) float64 {
		if math.Sin(2*math.Pi*frequency*t) >= 0 {
			return 1
		}
		return -1
	})
}

// Triangle returns a generator for 2A·|ft - floor(ft + 1/2)|.
func Triangle[T sample.Type](channels int, frequency float64, amplitude T) Func[T] {
	return constant(channels, amplitude, func(t float64) float64 {
		return 2 * math.Abs(phase(frequency, t))
	})
}

// Sawtooth returns a generator for 2A·(ft - floor(ft + 1/2)).
func Sawtooth[T sample.Type](channels int, frequency float64, amplitude T) Func[T] {
	return constant(channels, amplitude, func(t float64) float64 {
		return 2 * phase(frequency, t)
	})
}

// Silence returns a generator that always yields the equilibrium value.
func Silence[T sample.Type](channels int) Func[T] {
	eq := sample.Equilibrium[T]()

	return func(float64) sample.Block[T] {
		return sample.Fill(channels, eq)
	}
}

// phase is ft - floor(ft + 1/2), the signed distance to the nearest whole
// cycle, in [-1/2, 1/2).
func phase(frequency, t float64) float64 {
	return math.FMA(t, frequency, -math.Floor(math.FMA(t, frequency, 0.5)))
}
