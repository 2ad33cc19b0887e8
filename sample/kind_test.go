// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"testing"
)

func TestKindTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   Kind
		name   string
		width  uint16
		format Format
		onDisk Kind
		signed bool
	}{
		{KindInt8, "int8", 1, PulseCodeModulation, KindInt8, true},
		{KindInt16, "int16", 2, PulseCodeModulation, KindInt16, true},
		{KindInt24, "int24", 3, PulseCodeModulation, KindInt24, true},
		{KindInt32, "int32", 4, PulseCodeModulation, KindInt32, true},
		{KindInt48, "int48", 6, PulseCodeModulation, KindInt48, true},
		{KindInt64, "int64", 8, PulseCodeModulation, KindInt64, true},
		{KindUint8, "uint8", 1, PulseCodeModulation, KindUint8, false},
		{KindUint16, "uint16", 2, PulseCodeModulation, KindInt16, false},
		{KindUint24, "uint24", 3, PulseCodeModulation, KindInt24, false},
		{KindUint32, "uint32", 4, PulseCodeModulation, KindInt32, false},
		{KindUint48, "uint48", 6, PulseCodeModulation, KindInt48, false},
		{KindUint64, "uint64", 8, PulseCodeModulation, KindInt64, false},
		{KindFloat32, "float32", 4, FloatingPoint, KindFloat32, true},
		{KindFloat64, "float64", 8, FloatingPoint, KindFloat64, true},
	}

	if len(tests) != len(Kinds()) {
		t.Fatalf("Kinds() returned %d kinds, table has %d", len(Kinds()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !tt.kind.Valid() {
				t.Fatalf("%v.Valid() = false", tt.kind)
			}
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
			if got := tt.kind.Bits(); got != tt.width*8 {
				t.Errorf("Bits() = %d, want %d", got, tt.width*8)
			}
			if got := tt.kind.Format(); got != tt.format {
				t.Errorf("Format() = %v, want %v", got, tt.format)
			}
			if got := tt.kind.OnDisk(); got != tt.onDisk {
				t.Errorf("OnDisk() = %v, want %v", got, tt.onDisk)
			}
			if got := tt.kind.Signed(); got != tt.signed {
				t.Errorf("Signed() = %v, want %v", got, tt.signed)
			}
			// The on-disk kind never changes width or format class.
			if tt.onDisk.Width() != tt.width || tt.onDisk.Format() != tt.format {
				t.Errorf("on-disk kind %v does not match %v", tt.onDisk, tt.kind)
			}
		})
	}
}

func TestKindInvalid(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindInvalid, Kind(200)} {
		if k.Valid() {
			t.Errorf("Kind(%d).Valid() = true", uint8(k))
		}
		if k.Width() != 0 {
			t.Errorf("Kind(%d).Width() = %d, want 0", uint8(k), k.Width())
		}
		if k.String() != "invalid" {
			t.Errorf("Kind(%d).String() = %q", uint8(k), k.String())
		}
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	checks := []struct {
		got, want Kind
	}{
		{KindOf[int8](), KindInt8},
		{KindOf[int16](), KindInt16},
		{KindOf[Int24](), KindInt24},
		{KindOf[int32](), KindInt32},
		{KindOf[Int48](), KindInt48},
		{KindOf[int64](), KindInt64},
		{KindOf[uint8](), KindUint8},
		{KindOf[uint16](), KindUint16},
		{KindOf[Uint24](), KindUint24},
		{KindOf[uint32](), KindUint32},
		{KindOf[Uint48](), KindUint48},
		{KindOf[uint64](), KindUint64},
		{KindOf[float32](), KindFloat32},
		{KindOf[float64](), KindFloat64},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("KindOf() = %v, want %v", c.got, c.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	got, err := ParseKind("  Float32 ")
	if err != nil || got != KindFloat32 {
		t.Errorf("ParseKind(\"  Float32 \") = %v, %v", got, err)
	}

	_, err = ParseKind("int12")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(\"int12\") error = %v, want ErrUnknownKind", err)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	if PulseCodeModulation.String() != "pcm" {
		t.Errorf("PulseCodeModulation.String() = %q", PulseCodeModulation.String())
	}
	if FloatingPoint.String() != "float" {
		t.Errorf("FloatingPoint.String() = %q", FloatingPoint.String())
	}
	if Format(2).String() != "format(2)" {
		t.Errorf("Format(2).String() = %q", Format(2).String())
	}
}
