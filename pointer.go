package nanbox

// Reserved extension point: heap allocations are at least 8-byte
// aligned, so the low 3 bits of a pointer payload are always zero and
// can later carry a secondary tag for pointer-carrying types. The
// encoding scheme itself is not implemented here; this package only
// documents the alignment precondition.
const (
	// PointerTagMask covers the low bits freed by 8-byte alignment.
	PointerTagMask uint64 = 0b111

	// PointerAlign is the minimum heap allocation alignment assumed by
	// PointerTagMask.
	PointerAlign = 8
)
