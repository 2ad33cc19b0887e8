// SPDX-License-Identifier: EPL-2.0

package sample

// Int24 is a signed 24-bit sample stored in an int32. Valid values lie in
// [-1<<23, 1<<23-1].
type Int24 int32

// Uint24 is an unsigned 24-bit sample stored in a uint32.
type Uint24 uint32

// Int48 is a signed 48-bit sample stored in an int64.
type Int48 int64

// Uint48 is an unsigned 48-bit sample stored in a uint64.
type Uint48 uint64

const (
	MaxInt24  Int24  = 1<<23 - 1
	MinInt24  Int24  = -1 << 23
	MaxUint24 Uint24 = 1<<24 - 1
	MaxInt48  Int48  = 1<<47 - 1
	MinInt48  Int48  = -1 << 47
	MaxUint48 Uint48 = 1<<48 - 1
)

// Signed remaps u onto the signed 24-bit range by removing the midpoint.
func (u Uint24) Signed() Int24 { return Int24(int32(u&MaxUint24) - 1<<23) }

// Signed remaps u onto the signed 48-bit range by removing the midpoint.
func (u Uint48) Signed() Int48 { return Int48(int64(u&MaxUint48) - 1<<47) }

// Type is the closed set of supported sample types.
type Type interface {
	int8 | int16 | Int24 | int32 | Int48 | int64 |
		uint8 | uint16 | Uint24 | uint32 | Uint48 | uint64 |
		float32 | float64
}

// Signed is the subset of Type that supports negation.
type Signed interface {
	int8 | int16 | Int24 | int32 | Int48 | int64 | float32 | float64
}
