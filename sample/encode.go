// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"math"
)

// AppendLE appends the canonical little-endian on-disk encoding of s to dst.
// Unsigned kinds wider than 8 bits are stored as their signed counterpart;
// 24 and 48-bit kinds are packed into 3 and 6 bytes.
func AppendLE[T Type](dst []byte, s T) []byte {
	le := binary.LittleEndian

	switch x := any(s).(type) {
	case int8:
		return append(dst, byte(x))
	case uint8:
		return append(dst, x)
	case int16:
		return le.AppendUint16(dst, uint16(x))
	case uint16:
		return le.AppendUint16(dst, x^0x8000)
	case Int24:
		return appendInt24(dst, int32(x))
	case Uint24:
		return appendInt24(dst, int32(x.Signed()))
	case int32:
		return le.AppendUint32(dst, uint32(x))
	case uint32:
		return le.AppendUint32(dst, x^0x80000000)
	case Int48:
		return appendInt48(dst, int64(x))
	case Uint48:
		return appendInt48(dst, int64(x.Signed()))
	case int64:
		return le.AppendUint64(dst, uint64(x))
	case uint64:
		return le.AppendUint64(dst, x^(1<<63))
	case float32:
		return le.AppendUint32(dst, math.Float32bits(x))
	case float64:
		return le.AppendUint64(dst, math.Float64bits(x))
	}
	panic("sample: unsupported type")
}

func appendInt24(dst []byte, v int32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16))
}

func appendInt48(dst []byte, v int64) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), byte(v>>32), byte(v>>40))
}
