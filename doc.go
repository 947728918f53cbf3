// Package nanbox packs a 4-bit type tag and a 48-bit (plus sign) payload
// into the reserved NaN space of a 64-bit IEEE 754 double.
//
// Every float64 whose exponent field is all ones is a NaN or an infinity.
// Hardware only ever produces four of those patterns: +Inf, -Inf, and the
// canonical quiet NaN with either sign. The remaining patterns are free,
// and this package uses bits 48-51 of them as a type tag, leaving the low
// 48 bits and the sign bit for a payload. A single Word can therefore hold
// either a genuine double or one of 16 tagged immediate types.
//
// This package contains:
//   - Word classification and payload extraction (bits.go)
//   - float64 bit reinterpretation (float.go)
//   - TypeID/ThinTypeID tagging and untagging (typeid.go)
//   - the reserved pointer-tag extension point (pointer.go)
//
// All operations are pure functions over plain values and are safe for
// concurrent use.
package nanbox
