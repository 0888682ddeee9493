package wasmiter

import "github.com/wasmiterio/wasmiter/leb128"

// Vector encodes a WebAssembly vec: a u32 count followed by that many
// items. It is a pull iterator: each call to Advance decodes exactly one
// element via the supplied function, which is responsible for advancing
// the offset past exactly that element.
//
// Once an element decode fails, the Vector latches into a terminal state
// (remaining becomes 0) and every subsequent Advance reports "no more
// items" rather than repeating or resurfacing the error. Callers must
// observe the error on the failing Advance call, or it is lost — this is
// deliberate (see spec's §9 design notes) to prevent accidental
// resynchronization on a corrupted vector.
type Vector struct {
	total     uint32
	remaining uint32
	offset    uint64
	source    ByteSource
}

// ParseVector reads a u32 count at *offset, advances *offset past it, and
// returns a Vector positioned at the first element.
func ParseVector(source ByteSource, offset *uint64) (Vector, error) {
	count, err := leb128.DecodeUint32(source, offset)
	if err != nil {
		return Vector{}, wrapError(KindInvalidFormat, *offset, err, "read vector length")
	}
	return Vector{total: count, remaining: count, offset: *offset, source: source}, nil
}

// Len returns the vector's declared total element count.
func (v *Vector) Len() uint32 { return v.total }

// Remaining returns the number of items left to pull, including the
// current one. It is monotonically non-increasing across Advance calls
// and reaches 0 after exactly Len successful advances, or earlier if an
// element decode fails.
func (v *Vector) Remaining() uint32 { return v.remaining }

// Offset returns the offset of the next unparsed element.
func (v *Vector) Offset() uint64 { return v.offset }

// Advance invokes f with a pointer to the vector's cursor offset and its
// source, so f can decode one element, advancing the offset past
// exactly that element. It returns ok=false once the vector is
// exhausted (by count or by a prior error), without calling f again.
func (v *Vector) Advance(f func(offset *uint64, source ByteSource) error) (ok bool, err error) {
	if v.remaining == 0 {
		return false, nil
	}
	if err := f(&v.offset, v.source); err != nil {
		v.remaining = 0
		return false, err
	}
	v.remaining--
	return true, nil
}

// AdvanceWithIndex is like Advance, but also passes the zero-based index
// of the element about to be decoded (total-remaining before this call).
func (v *Vector) AdvanceWithIndex(f func(index uint32, offset *uint64, source ByteSource) error) (ok bool, err error) {
	if v.remaining == 0 {
		return false, nil
	}
	index := v.total - v.remaining
	if err := f(index, &v.offset, v.source); err != nil {
		v.remaining = 0
		return false, err
	}
	v.remaining--
	return true, nil
}

// Finish invokes Advance repeatedly until the vector is exhausted or an
// element decode fails.
func (v *Vector) Finish(f func(offset *uint64, source ByteSource) error) error {
	for {
		ok, err := v.Advance(f)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
