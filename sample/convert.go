// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

// ToFloat64 maps s onto the float64 reference range [-1, 1).
// Integer kinds are divided by 2^(bits-1); unsigned kinds are first
// shifted so that their midpoint maps to 0. Float kinds pass through.
func ToFloat64[T Type](s T) float64 {
	switch x := any(s).(type) {
	case int8:
		return math.Ldexp(float64(x), -7)
	case int16:
		return math.Ldexp(float64(x), -15)
	case Int24:
		return math.Ldexp(float64(x), -23)
	case int32:
		return math.Ldexp(float64(x), -31)
	case Int48:
		return math.Ldexp(float64(x), -47)
	case int64:
		return math.Ldexp(float64(x), -63)
	case uint8:
		return math.Ldexp(float64(int8(x^0x80)), -7)
	case uint16:
		return math.Ldexp(float64(int16(x^0x8000)), -15)
	case Uint24:
		return math.Ldexp(float64(x.Signed()), -23)
	case uint32:
		return math.Ldexp(float64(int32(x^0x80000000)), -31)
	case Uint48:
		return math.Ldexp(float64(x.Signed()), -47)
	case uint64:
		return math.Ldexp(float64(int64(x^(1<<63))), -63)
	case float32:
		return float64(x)
	case float64:
		return x
	}
	panic("sample: unsupported type")
}

// FromFloat64 is the inverse of ToFloat64. Values are rounded to the nearest
// integer step and saturate at the ends of the kind's range; NaN becomes
// the equilibrium value.
func FromFloat64[T Type](f float64) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(quantize(f, 7)))
	case int16:
		return T(int16(quantize(f, 15)))
	case Int24:
		return T(Int24(quantize(f, 23)))
	case int32:
		return T(int32(quantize(f, 31)))
	case Int48:
		return T(Int48(quantize(f, 47)))
	case int64:
		return T(quantize(f, 63))
	case uint8:
		return T(uint8(quantize(f, 7) + 1<<7))
	case uint16:
		return T(uint16(quantize(f, 15) + 1<<15))
	case Uint24:
		return T(Uint24(quantize(f, 23) + 1<<23))
	case uint32:
		return T(uint32(quantize(f, 31) + 1<<31))
	case Uint48:
		return T(Uint48(quantize(f, 47) + 1<<47))
	case uint64:
		return T(uint64(quantize(f, 63)) ^ 1<<63)
	case float32:
		return T(float32(f))
	case float64:
		return T(f)
	}
	panic("sample: unsupported type")
}

// Equilibrium returns the zero-amplitude value of T: 0 for signed and float
// kinds, the midpoint of the range for unsigned kinds.
func Equilibrium[T Type]() T {
	return FromFloat64[T](0)
}

const maxInt64 int64 = math.MaxInt64

// quantize scales f by 2^bits and rounds it into [-2^bits, 2^bits-1].
func quantize(f float64, bits uint) int64 {
	if math.IsNaN(f) {
		return 0
	}

	limit := math.Ldexp(1, int(bits))
	v := math.Round(f * limit)

	hi := maxInt64 >> (63 - bits)
	switch {
	case v >= limit:
		return hi
	case v <= -limit:
		return -hi - 1
	}

	return int64(v)
}
