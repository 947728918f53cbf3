package nanbox

import "math"

// Word is a 64-bit pattern holding either an IEEE 754 double or a tagged
// immediate ("nanbox").
//
// Bit layout, least to most significant:
//   - bits 0-47:  payload
//   - bits 48-51: tag nibble
//   - bits 52-62: exponent field (all ones for any nanbox)
//   - bit 63:     sign
type Word uint64

// Bit-layout constants
const (
	// TagShift is the bit position of the tag nibble.
	TagShift = 48

	// ReservedExponentMask covers the 11-bit exponent field.
	// 0x7FF0_0000_0000_0000
	ReservedExponentMask uint64 = 0x7FF << 52

	// TagMask covers the 4-bit tag nibble.
	// 0x000F_0000_0000_0000
	TagMask uint64 = 0xF << TagShift

	// SignMask covers the sign bit.
	SignMask uint64 = 1 << 63

	// PayloadMask covers the low 48 payload bits.
	// 0x0000_FFFF_FFFF_FFFF
	PayloadMask uint64 = 1<<TagShift - 1

	// QuietNaNBits is the canonical quiet NaN emitted by x86 and ARM
	// float hardware. Go's math.NaN() additionally sets the low
	// mantissa bit; only the canonical pattern is excluded from the
	// box space.
	// 0x7FF8_0000_0000_0000
	QuietNaNBits uint64 = 0x7FF8 << TagShift
)

// reservedBitsMask covers the exponent field and the tag nibble,
// bits 48-62. The two regions are disjoint.
const reservedBitsMask = ReservedExponentMask | TagMask

// reservedAndSign covers bits 48-63: everything above the payload.
const reservedAndSign = reservedBitsMask | SignMask

// IsReservedExponent returns true if the 11-bit exponent field is all
// ones, i.e. the word decodes to a NaN or an infinity under standard
// IEEE 754 interpretation.
func (w Word) IsReservedExponent() bool {
	return uint64(w)&ReservedExponentMask == ReservedExponentMask
}

// IsSpecialFloat returns true if w is one of the four patterns real
// float arithmetic produces in the reserved space: +Inf, -Inf, or the
// canonical quiet NaN with either sign.
//
// Infinity is checked by IEEE decode rather than bit masking so that
// both signs are caught without enumerating them.
func (w Word) IsSpecialFloat() bool {
	if math.IsInf(math.Float64frombits(uint64(w)), 0) {
		return true
	}
	return uint64(w)&^SignMask == QuietNaNBits
}

// IsNanbox returns true if w currently holds a tagged immediate rather
// than a float: the exponent field is all ones and the word is not one
// of the four special float patterns.
func (w Word) IsNanbox() bool {
	return w.IsReservedExponent() && !w.IsSpecialFloat()
}

// TagNibble extracts bits 48-51. It does not check that w is actually a
// nanbox; callers that care must check IsNanbox separately.
func (w Word) TagNibble() uint8 {
	return uint8(uint64(w)&TagMask>>TagShift) & 0xF
}

// MarkNanbox sets the exponent field to all ones and clears the tag
// nibble, leaving payload and sign untouched. This is the first step of
// tagging; the result carries tag 0 until InsertTag runs.
func MarkNanbox(payload uint64) Word {
	return Word((payload | ReservedExponentMask) &^ TagMask)
}

// InsertTag ORs the tag nibble into bits 48-51. The caller guarantees
// tag <= 0xF and that the region is clear, as after MarkNanbox.
func (w Word) InsertTag(tag uint8) Word {
	return w | Word(uint64(tag)<<TagShift)
}

// UnsignedPayload clears bits 48-63, yielding the 48-bit payload as a
// non-negative integer.
func (w Word) UnsignedPayload() uint64 {
	return uint64(w) &^ reservedAndSign
}

// SignedPayload yields the payload as a two's-complement integer whose
// magnitude fits in 48 bits: bits 48-63 become all ones when the sign
// bit is set and all zeros otherwise.
func (w Word) SignedPayload() int64 {
	if int64(w) < 0 {
		return int64(uint64(w) | reservedBitsMask)
	}
	return int64(uint64(w) &^ reservedBitsMask)
}

// IsClean returns true if bits 48-63 of payload are a valid
// sign-extension of the low 48 bits: all zeros for a non-negative
// value, all ones for a negative one. Only clean payloads may be
// tagged; tagging a dirty payload silently corrupts the tag nibble.
func IsClean(payload uint64) bool {
	masked := payload & reservedAndSign
	return masked == 0 || masked == reservedAndSign
}
