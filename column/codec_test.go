package column

import (
	"errors"
	"testing"

	"github.com/hupe1980/colf/internal/wire"
)

func TestEncodeDecodeInt32(t *testing.T) {
	values := []string{"1", "-2", "2147483647", "-2147483648", "0"}

	raw, err := Encode(TypeInt32, values)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(raw) != len(values)*wire.SizeInt32 {
		t.Fatalf("raw buffer is %d bytes, want %d", len(raw), len(values)*wire.SizeInt32)
	}

	data, err := Decode(TypeInt32, raw, len(values))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []int32{1, -2, 2147483647, -2147483648, 0}
	for i, v := range want {
		if data.Int32s[i] != v {
			t.Errorf("row %d: got %d, want %d", i, data.Int32s[i], v)
		}
	}
}

func TestEncodeDecodeFloat64(t *testing.T) {
	values := []string{"2.5", "-0.125", "1e10", "3"}

	raw, err := Encode(TypeFloat64, values)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	data, err := Decode(TypeFloat64, raw, len(values))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []float64{2.5, -0.125, 1e10, 3}
	for i, v := range want {
		if data.Float64s[i] != v {
			t.Errorf("row %d: got %v, want %v", i, data.Float64s[i], v)
		}
	}
}

func TestEncodeDecodeString(t *testing.T) {
	values := []string{"Alice", "", "Bob", "日本語", "x"}

	raw, err := Encode(TypeString, values)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	data, err := Decode(TypeString, raw, len(values))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	for i, v := range values {
		if data.Strings[i] != v {
			t.Errorf("row %d: got %q, want %q", i, data.Strings[i], v)
		}
	}
}

// The offset table must be non-decreasing and its final entry must equal the
// byte length of the data region.
func TestStringOffsetTableLayout(t *testing.T) {
	values := []string{"ab", "", "cde"}

	raw, err := Encode(TypeString, values)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tableLen := len(values) * wire.SizeInt32
	dataLen := len(raw) - tableLen

	prev := int32(0)
	var last int32
	for i := 0; i < len(values); i++ {
		end := wire.Int32(raw[i*wire.SizeInt32:])
		if end < prev {
			t.Errorf("offset table decreases at row %d: %d < %d", i, end, prev)
		}
		prev = end
		last = end
	}
	if int(last) != dataLen {
		t.Errorf("final offset %d does not equal data region length %d", last, dataLen)
	}
	if string(raw[tableLen:]) != "abcde" {
		t.Errorf("data region is %q, want %q", raw[tableLen:], "abcde")
	}
}

func TestDecodeUnknownType(t *testing.T) {
	if _, err := Decode(Type(9), nil, 0); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
	if _, err := Encode(Type(0), nil); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
}

func TestDecodeBufferMismatch(t *testing.T) {
	// Int32 buffer not a multiple of the element width.
	if _, err := Decode(TypeInt32, make([]byte, 6), 1); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Int32: got %v, want ErrInvalidBuffer", err)
	}
	// Row count disagreeing with buffer length.
	if _, err := Decode(TypeFloat64, make([]byte, 16), 3); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Float64: got %v, want ErrInvalidBuffer", err)
	}
	// String buffer too short for the offset table.
	if _, err := Decode(TypeString, make([]byte, 7), 2); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("String: got %v, want ErrInvalidBuffer", err)
	}
}

func TestDecodeStringBadOffsets(t *testing.T) {
	// One row, offset table claims 4 bytes of data but region has 2.
	raw := wire.AppendInt32(nil, 4)
	raw = append(raw, 'a', 'b')
	if _, err := Decode(TypeString, raw, 1); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("overrun: got %v, want ErrInvalidBuffer", err)
	}

	// Two rows with a decreasing offset table.
	raw = wire.AppendInt32(nil, 2)
	raw = wire.AppendInt32(raw, 1)
	raw = append(raw, 'a', 'b')
	if _, err := Decode(TypeString, raw, 2); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("decreasing: got %v, want ErrInvalidBuffer", err)
	}

	// Offsets stop short of the data region end.
	raw = wire.AppendInt32(nil, 1)
	raw = append(raw, 'a', 'b')
	if _, err := Decode(TypeString, raw, 1); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("underrun: got %v, want ErrInvalidBuffer", err)
	}
}

func TestEncodeRejectsUnparseableValue(t *testing.T) {
	if _, err := Encode(TypeInt32, []string{"1", "nope"}); err == nil {
		t.Error("expected error encoding non-integer value as Int32")
	}
	if _, err := Encode(TypeFloat64, []string{"x"}); err == nil {
		t.Error("expected error encoding non-float value as Float64")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	d := Data{Type: TypeFloat64, Float64s: []float64{2.5, 1e10, -0.1}}
	want := []string{"2.5", "1e+10", "-0.1"}
	for i, w := range want {
		if got := d.Format(i); got != w {
			t.Errorf("Format(%d) = %q, want %q", i, got, w)
		}
	}

	di := Data{Type: TypeInt32, Int32s: []int32{-7}}
	if got := di.Format(0); got != "-7" {
		t.Errorf("Format(0) = %q, want -7", got)
	}
}

// A row count crafted so that rowCount*width wraps around must be rejected
// before any allocation sized from it.
func TestDecodeHugeRowCount(t *testing.T) {
	huge := int(1<<62) + 1 // huge*4 and huge*8 both wrap to small values

	cases := []struct {
		typ Type
		raw []byte
	}{
		{TypeInt32, make([]byte, wire.SizeInt32)},
		{TypeFloat64, make([]byte, wire.SizeFloat64)},
		{TypeString, make([]byte, wire.SizeInt32)},
	}
	for _, tc := range cases {
		if _, err := Decode(tc.typ, tc.raw, huge); !errors.Is(err, ErrInvalidBuffer) {
			t.Errorf("Decode(%s) with row count %d: got %v, want ErrInvalidBuffer", tc.typ, huge, err)
		}
	}
}
