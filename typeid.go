package nanbox

import "fmt"

// TypeID is a wide type identifier. Identifiers above 0xF are legal
// here but cannot be embedded in a Word; they must be narrowed first.
type TypeID uint64

// ThinTypeID is a type identifier guaranteed to fit in the 4-bit tag
// nibble. It is only producible through Narrow or MustNarrow, so an
// out-of-range thin identifier cannot exist.
type ThinTypeID struct {
	id uint8
}

// TagOverflowError reports an attempt to narrow a TypeID that does not
// fit in 4 bits.
type TagOverflowError struct {
	ID TypeID
}

func (e *TagOverflowError) Error() string {
	return fmt.Sprintf("nanbox: type id %#x does not fit in a thin type id", uint64(e.ID))
}

// TypeMismatchError reports an untag attempt whose identifier does not
// match the tag nibble actually present in the word.
type TypeMismatchError struct {
	Expected TypeID
	Found    TypeID
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("nanbox: expected a value of type id %#x but found one of type id %#x",
		uint64(e.Expected), uint64(e.Found))
}

// DirtyPayloadError reports a TagChecked call on a payload whose high
// 16 bits are not a valid sign-extension of the low 48.
type DirtyPayloadError struct {
	Payload uint64
}

func (e *DirtyPayloadError) Error() string {
	return fmt.Sprintf("nanbox: payload %#016x is not clean: bits 48-63 are not a sign-extension", e.Payload)
}

// Narrow converts id to a ThinTypeID. It succeeds iff id fits in 4
// bits; otherwise it returns a *TagOverflowError.
func (id TypeID) Narrow() (ThinTypeID, error) {
	if id > 0xF {
		return ThinTypeID{}, &TagOverflowError{ID: id}
	}
	return ThinTypeID{id: uint8(id)}, nil
}

// MustNarrow is like Narrow but panics on overflow. Intended for
// package-level identifier tables, where the value is a literal.
func (id TypeID) MustNarrow() ThinTypeID {
	thin, err := id.Narrow()
	if err != nil {
		panic(err)
	}
	return thin
}

// Widen converts t back to a wide TypeID. It always succeeds.
func (t ThinTypeID) Widen() TypeID {
	return TypeID(t.id)
}

// Tag designates a clean 48-bit-plus-sign payload as a nanbox of this
// type.
//
// Caller contract: IsClean(payload) must hold, or the tag nibble is
// silently corrupted; use TagChecked to validate instead. Producers of
// tag-0 values must avoid payloads 0 and 1, and producers of tag-8
// values payload 0, since those patterns coincide with canonical
// Infinity and NaN.
func (t ThinTypeID) Tag(payload uint64) Word {
	return MarkNanbox(payload).InsertTag(t.id)
}

// TagChecked is Tag with the cleanliness contract validated: it returns
// a *DirtyPayloadError instead of corrupting the word.
func (t ThinTypeID) TagChecked(payload uint64) (Word, error) {
	if !IsClean(payload) {
		return 0, &DirtyPayloadError{Payload: payload}
	}
	return t.Tag(payload), nil
}

// Matches returns true if w is a nanbox carrying this identifier's tag.
func (t ThinTypeID) Matches(w Word) bool {
	return w.IsNanbox() && w.TagNibble() == t.id
}

// UnsignedUntag recovers the payload of w as a non-negative integer. If
// w is not a nanbox of this type it returns a *TypeMismatchError whose
// Found field is the widened tag nibble actually present.
func (t ThinTypeID) UnsignedUntag(w Word) (uint64, error) {
	if !t.Matches(w) {
		return 0, &TypeMismatchError{
			Expected: t.Widen(),
			Found:    TypeID(w.TagNibble()),
		}
	}
	return w.UnsignedPayload(), nil
}

// SignedUntag recovers the payload of w as a sign-extended integer,
// with the same gating as UnsignedUntag.
func (t ThinTypeID) SignedUntag(w Word) (int64, error) {
	if !t.Matches(w) {
		return 0, &TypeMismatchError{
			Expected: t.Widen(),
			Found:    TypeID(w.TagNibble()),
		}
	}
	return w.SignedPayload(), nil
}
