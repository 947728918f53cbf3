package nanbox

import "math"

// All float/integer bit reinterpretation lives here; higher layers never
// bit-cast directly.

// FromFloat64 creates a Word from a float64. Note that math.NaN() and
// other non-canonical NaNs land in the box space; see QuietNaNBits.
func FromFloat64(f float64) Word {
	return Word(math.Float64bits(f))
}

// Float64 returns w as a float64.
// Panics if w is a nanbox.
func (w Word) Float64() float64 {
	if w.IsNanbox() {
		panic("nanbox: Word.Float64: word holds a tagged immediate")
	}
	return math.Float64frombits(uint64(w))
}
