// SPDX-License-Identifier: EPL-2.0

package sample

import "fmt"

// Clip clamps s to the inclusive range [-threshold, threshold].
// It panics if threshold is negative or NaN.
func Clip[T Signed](s, threshold T) T {
	mustThreshold(threshold)
	return min(max(s, -threshold), threshold)
}

// Scale returns s * multiplier. Integer kinds wrap at their own width
// (24 and 48-bit kinds included) and floats follow IEEE rules; nothing
// saturates, so call Clip afterwards when that is needed.
func Scale[T Type](s, multiplier T) T {
	return wrap(s * multiplier)
}

// ClipBlock clips every channel of b.
func ClipBlock[T Signed](b Block[T], threshold T) Block[T] {
	mustThreshold(threshold)
	return b.Map(func(s T) T { return Clip(s, threshold) })
}

// ScaleBlock scales every channel of b.
func ScaleBlock[T Type](b Block[T], multiplier T) Block[T] {
	return b.Map(func(s T) T { return Scale(s, multiplier) })
}

func mustThreshold[T Signed](threshold T) {
	if !(threshold >= 0) {
		panic(fmt.Sprintf("sample: invalid clip threshold %v", threshold))
	}
}

// wrap truncates the packed kinds to their nominal width.
func wrap[T Type](v T) T {
	switch x := any(v).(type) {
	case Int24:
		return T(Int24(int32(x) << 8 >> 8))
	case Uint24:
		return T(x & MaxUint24)
	case Int48:
		return T(Int48(int64(x) << 16 >> 16))
	case Uint48:
		return T(x & MaxUint48)
	}
	return v
}
