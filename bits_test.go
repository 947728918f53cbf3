package nanbox

import (
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// Classification tests
// ---------------------------------------------------------------------------

func TestSpecialFloatExclusion(t *testing.T) {
	// The four patterns real float arithmetic produces in the reserved
	// space must never classify as nanboxes.
	tests := []struct {
		name string
		w    Word
	}{
		{"+Inf", FromFloat64(math.Inf(1))},
		{"-Inf", FromFloat64(math.Inf(-1))},
		{"quiet NaN", Word(QuietNaNBits)},
		{"negated quiet NaN", Word(QuietNaNBits | SignMask)},
	}

	for _, tt := range tests {
		if !tt.w.IsReservedExponent() {
			t.Errorf("%s: IsReservedExponent = false, want true", tt.name)
		}
		if !tt.w.IsSpecialFloat() {
			t.Errorf("%s: IsSpecialFloat = false, want true", tt.name)
		}
		if tt.w.IsNanbox() {
			t.Errorf("%s: IsNanbox = true, want false", tt.name)
		}
	}
}

func TestRegularFloatsAreNotNanboxes(t *testing.T) {
	tests := []float64{
		0.0,
		-0.0,
		1.0,
		-1.0,
		3.14159265358979,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		-math.MaxFloat64,
	}

	for _, f := range tests {
		w := FromFloat64(f)
		if w.IsReservedExponent() {
			t.Errorf("FromFloat64(%v).IsReservedExponent() = true, want false", f)
		}
		if w.IsNanbox() {
			t.Errorf("FromFloat64(%v).IsNanbox() = true, want false", f)
		}
	}
}

func TestSimpleNanbox(t *testing.T) {
	w := MarkNanbox(0xdeadbeef)

	if !w.IsNanbox() {
		t.Error("MarkNanbox(0xdeadbeef).IsNanbox() = false, want true")
	}
	if tag := w.TagNibble(); tag != 0 {
		t.Errorf("TagNibble() = %#x, want 0", tag)
	}
	if p := w.UnsignedPayload(); p != 0xdeadbeef {
		t.Errorf("UnsignedPayload() = %#x, want 0xdeadbeef", p)
	}
}

func TestSignedNanbox(t *testing.T) {
	signed := int64(-12345)

	w := MarkNanbox(uint64(signed))

	if !w.IsNanbox() {
		t.Error("negative payload should still box")
	}
	if got := w.SignedPayload(); got != signed {
		t.Errorf("SignedPayload() = %d, want %d", got, signed)
	}
}

// ---------------------------------------------------------------------------
// Payload extraction tests
// ---------------------------------------------------------------------------

func TestPayloadExtraction(t *testing.T) {
	minNeg := -(int64(1) << 47)
	tests := []struct {
		name     string
		w        Word
		unsigned uint64
		signed   int64
	}{
		{"zero", MarkNanbox(0), 0, 0},
		{"small positive", MarkNanbox(12345), 12345, 12345},
		{"negative one", MarkNanbox(^uint64(0)), PayloadMask, -1},
		{"max positive", MarkNanbox(1<<47 - 1), 1<<47 - 1, 1<<47 - 1},
		{"min negative", MarkNanbox(uint64(minNeg)), 1 << 47, -(int64(1) << 47)},
	}

	for _, tt := range tests {
		if got := tt.w.UnsignedPayload(); got != tt.unsigned {
			t.Errorf("%s: UnsignedPayload() = %#x, want %#x", tt.name, got, tt.unsigned)
		}
		if got := tt.w.SignedPayload(); got != tt.signed {
			t.Errorf("%s: SignedPayload() = %d, want %d", tt.name, got, tt.signed)
		}
	}
}

func TestIsClean(t *testing.T) {
	negSixSixSix := int64(-666)
	tests := []struct {
		name    string
		payload uint64
		clean   bool
	}{
		{"zero", 0, true},
		{"one", 1, true},
		{"max 48-bit", PayloadMask, true},
		{"negative one", ^uint64(0), true},
		{"negative int64", uint64(negSixSixSix), true},
		{"bit 48 set", 1 << 48, false},
		{"tag bits set", 0xa << TagShift, false},
		{"sign without extension", SignMask, false},
		{"extension without sign", reservedBitsMask, false},
	}

	for _, tt := range tests {
		if got := IsClean(tt.payload); got != tt.clean {
			t.Errorf("%s: IsClean(%#016x) = %v, want %v", tt.name, tt.payload, got, tt.clean)
		}
	}
}

// ---------------------------------------------------------------------------
// Float bridge tests
// ---------------------------------------------------------------------------

func TestFloatRoundTrip(t *testing.T) {
	tests := []float64{
		0.0,
		-0.0,
		1.0,
		-1.0,
		3.14159265358979,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Inf(1),
		math.Inf(-1),
	}

	for _, f := range tests {
		w := FromFloat64(f)
		got := w.Float64()
		if got != f {
			t.Errorf("FromFloat64(%v).Float64() = %v, want %v", f, got, f)
		}
	}
}

func TestFloat64PanicsOnNanbox(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Float64 on a nanbox should panic")
		}
	}()
	_ = MarkNanbox(42).Float64()
}
