// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavsynth/sample"
)

func TestSine(t *testing.T) {
	t.Parallel()

	gen := Sine(2, 1, int16(16384))

	tests := []struct {
		name string
		t    float64
		want int16
	}{
		{"start", 0, 0},
		{"quarter period", 0.25, 16384},
		{"three quarters", 0.75, -16384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := gen(tt.t)
			require.Len(t, b, 2)
			assert.Equal(t, tt.want, b[0])
			assert.Equal(t, b[0], b[1], "channels must match")
		})
	}
}

func sineBounded[T sample.Type](t *testing.T, amplitude T) {
	t.Helper()

	limit := math.Abs(sample.ToFloat64(amplitude))
	gen := Sine(1, 440, amplitude)

	for i := range 2000 {
		v := sample.ToFloat64(gen(float64(i) / 44100)[0])
		if math.Abs(v) > limit+1e-12 {
			t.Fatalf("%v: frame %d = %v, exceeds amplitude %v", sample.KindOf[T](), i, v, limit)
		}
	}
}

func TestSine_BoundedByAmplitude(t *testing.T) {
	t.Parallel()

	sineBounded(t, int8(100))
	sineBounded(t, int16(20000))
	sineBounded(t, sample.Int24(-1<<22))
	sineBounded(t, int32(math.MaxInt32))
	sineBounded(t, sample.Int48(12345))
	sineBounded(t, int64(1<<60))
	sineBounded(t, uint8(200))
	sineBounded(t, uint16(1000))
	sineBounded(t, sample.Uint24(1<<23+1<<20))
	sineBounded(t, uint32(math.MaxUint32))
	sineBounded(t, sample.Uint48(1<<47-5))
	sineBounded(t, uint64(1<<63+1<<62))
	sineBounded(t, float32(0.3))
	sineBounded(t, 0.9)
}

func TestSquare(t *testing.T) {
	t.Parallel()

	gen := Square(1, 1, int16(1000))

	assert.Equal(t, int16(1000), gen(0)[0], "sin(0) counts as non-negative")
	assert.Equal(t, int16(1000), gen(0.25)[0])
	assert.Equal(t, int16(-1000), gen(0.75)[0])
	assert.Equal(t, int16(1000), gen(1.25)[0])
}

func TestTriangleAndSawtooth(t *testing.T) {
	t.Parallel()

	tri := Triangle(1, 1, 1.0)
	saw := Sawtooth(1, 1, 1.0)

	tests := []struct {
		t        float64
		triangle float64
		sawtooth float64
	}{
		{0, 0, 0},
		{0.25, 0.5, 0.5},
		{0.5, 1, -1},
		{0.75, 0.5, -0.5},
		{1, 0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.triangle, tri(tt.t)[0], 1e-12, "triangle at t=%v", tt.t)
		assert.InDelta(t, tt.sawtooth, saw(tt.t)[0], 1e-12, "sawtooth at t=%v", tt.t)
	}
}

func TestTriangle_UnsignedAroundMidpoint(t *testing.T) {
	t.Parallel()

	// 0.5 of full scale above the midpoint of uint8.
	gen := Triangle(1, 1, uint8(192))

	assert.Equal(t, uint8(128), gen(0)[0])
	assert.Equal(t, uint8(192), gen(0.5)[0])
}

func silenceAtEquilibrium[T sample.Type](t *testing.T) {
	t.Helper()

	gen := Silence[T](3)
	for _, at := range []float64{0, 0.1, 17, -3} {
		b := gen(at)
		require.Len(t, b, 3)
		for _, s := range b {
			assert.Equal(t, sample.Equilibrium[T](), s, "%v at t=%v", sample.KindOf[T](), at)
		}
	}
}

func TestSilence(t *testing.T) {
	t.Parallel()

	silenceAtEquilibrium[int8](t)
	silenceAtEquilibrium[int16](t)
	silenceAtEquilibrium[sample.Int24](t)
	silenceAtEquilibrium[int32](t)
	silenceAtEquilibrium[sample.Int48](t)
	silenceAtEquilibrium[int64](t)
	silenceAtEquilibrium[uint8](t)
	silenceAtEquilibrium[uint16](t)
	silenceAtEquilibrium[sample.Uint24](t)
	silenceAtEquilibrium[uint32](t)
	silenceAtEquilibrium[sample.Uint48](t)
	silenceAtEquilibrium[uint64](t)
	silenceAtEquilibrium[float32](t)
	silenceAtEquilibrium[float64](t)
}

func TestSilence_FreshBlocks(t *testing.T) {
	t.Parallel()

	gen := Silence[int16](2)
	a := gen(0)
	a[0] = 99

	assert.Equal(t, int16(0), gen(0)[0], "mutating one frame leaked into the next")
}

func TestZeroChannels(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Sine(0, 440, int16(1))(0.1))
	assert.Empty(t, Silence[float32](0)(0))
}

func BenchmarkSine(b *testing.B) {
	gen := Sine(2, 440, int16(20000))

	b.ReportAllocs()

	for i := range b.N {
		_ = gen(float64(i) / 44100)
	}
}
