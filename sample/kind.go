// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"strings"
)

// Format is the WAVE format class of a sample kind. The values are the
// format tags written to the fmt chunk.
type Format uint16

const (
	PulseCodeModulation Format = 1
	FloatingPoint       Format = 3
)

func (f Format) String() string {
	switch f {
	case PulseCodeModulation:
		return "pcm"
	case FloatingPoint:
		return "float"
	}
	return fmt.Sprintf("format(%d)", uint16(f))
}

// Kind identifies one of the supported sample types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt24
	KindInt32
	KindInt48
	KindInt64
	KindUint8
	KindUint16
	KindUint24
	KindUint32
	KindUint48
	KindUint64
	KindFloat32
	KindFloat64
)

type kindInfo struct {
	name   string
	width  uint16
	format Format
	onDisk Kind
	signed bool
}

var kinds = [...]kindInfo{
	KindInvalid: {name: "invalid"},
	KindInt8:    {"int8", 1, PulseCodeModulation, KindInt8, true},
	KindInt16:   {"int16", 2, PulseCodeModulation, KindInt16, true},
	KindInt24:   {"int24", 3, PulseCodeModulation, KindInt24, true},
	KindInt32:   {"int32", 4, PulseCodeModulation, KindInt32, true},
	KindInt48:   {"int48", 6, PulseCodeModulation, KindInt48, true},
	KindInt64:   {"int64", 8, PulseCodeModulation, KindInt64, true},
	// 8-bit PCM is unsigned on disk.
	KindUint8:   {"uint8", 1, PulseCodeModulation, KindUint8, false},
	KindUint16:  {"uint16", 2, PulseCodeModulation, KindInt16, false},
	KindUint24:  {"uint24", 3, PulseCodeModulation, KindInt24, false},
	KindUint32:  {"uint32", 4, PulseCodeModulation, KindInt32, false},
	KindUint48:  {"uint48", 6, PulseCodeModulation, KindInt48, false},
	KindUint64:  {"uint64", 8, PulseCodeModulation, KindInt64, false},
	KindFloat32: {"float32", 4, FloatingPoint, KindFloat32, true},
	KindFloat64: {"float64", 8, FloatingPoint, KindFloat64, true},
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindInt8; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind returns the kind with the given name ("int16", "float32", ...).
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kinds[k].name == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// KindOf returns the kind of the sample type T.
func KindOf[T Type]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case Int24:
		return KindInt24
	case int32:
		return KindInt32
	case Int48:
		return KindInt48
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case Uint24:
		return KindUint24
	case uint32:
		return KindUint32
	case Uint48:
		return KindUint48
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
	return KindInvalid
}

func (k Kind) Valid() bool { return k > KindInvalid && int(k) < len(kinds) }

func (k Kind) info() kindInfo {
	if !k.Valid() {
		return kinds[KindInvalid]
	}
	return kinds[k]
}

// Width is the number of bytes one sample of this kind occupies on disk.
func (k Kind) Width() uint16 { return k.info().width }

// Bits is Width expressed in bits.
func (k Kind) Bits() uint16 { return k.info().width * 8 }

func (k Kind) Format() Format { return k.info().format }

// OnDisk is the kind samples are converted to before encoding. It differs
// from k only for unsigned kinds wider than 8 bits.
func (k Kind) OnDisk() Kind { return k.info().onDisk }

// Signed reports whether the kind can hold negative values.
func (k Kind) Signed() bool { return k.info().signed }

func (k Kind) String() string { return k.info().name }
