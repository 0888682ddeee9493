package wasmiter

// Window restricts reads of an inner ByteSource to the half-open range
// [base, base+length). A Window is itself a ByteSource, so windows
// compose: a window over a window intersects the two ranges.
type Window struct {
	base   uint64
	length uint64
	inner  ByteSource
}

// NewWindow creates a Window into inner, readable only from offset for
// length bytes. Construction never fails; a base or length that places
// the window out of bounds of inner produces errors at read time rather
// than at construction, per spec.
func NewWindow(inner ByteSource, offset, length uint64) Window {
	return Window{base: offset, length: length, inner: inner}
}

// Base returns the offset at which the window's content begins.
func (w Window) Base() uint64 { return w.base }

// Length returns the length of the window.
func (w Window) Length() uint64 { return w.length }

// End returns the offset just past the window's content.
func (w Window) End() uint64 { return w.base + w.length }

// Inner returns the ByteSource this window restricts.
func (w Window) Inner() ByteSource { return w.inner }

// ReadAt implements ByteSource. Reads are clipped to the window's
// intersection with [base, base+length) before delegating to inner; a
// clipped read that becomes empty returns empty, not an error, except
// when offset lies outside the window entirely, which also returns
// empty rather than an error (underflow reads are simply zero-length).
func (w Window) ReadAt(offset uint64, buf []byte) (int, error) {
	if offset < w.base || offset >= w.base+w.length {
		return 0, nil
	}
	available := w.base + w.length - offset
	if uint64(len(buf)) > available {
		buf = buf[:available]
	}
	return w.inner.ReadAt(offset, buf)
}

// LengthAt implements ByteSource. The result is clipped both to the
// window's own bound and to however much the inner source actually has
// left at offset, so a window that outruns its inner source's real
// extent is never reported as having more bytes than are readable.
func (w Window) LengthAt(offset uint64) uint64 {
	if offset < w.base || offset >= w.base+w.length {
		return 0
	}
	remaining := w.base + w.length - offset
	if innerRemaining := w.inner.LengthAt(offset); innerRemaining < remaining {
		remaining = innerRemaining
	}
	return remaining
}

// Flatten composes a Window over a Window into a single Window over the
// outermost inner ByteSource, intersecting the two ranges. This mirrors
// the original crate's Window::flatten and is useful when a sub-view
// constructs a Window over a ByteSource that is already itself a Window.
func Flatten(outer Window, innerBase, innerLength uint64) Window {
	lo := outer.base
	if innerBase > lo {
		lo = innerBase
	}
	outerEnd := outer.base + outer.length
	innerEnd := innerBase + innerLength
	hi := outerEnd
	if innerEnd < hi {
		hi = innerEnd
	}
	if hi < lo {
		return Window{base: lo, length: 0, inner: outer.inner}
	}
	return Window{base: lo, length: hi - lo, inner: outer.inner}
}

// HexDump renders up to n bytes of the window's content, starting at its
// base, as a space-separated hex string for use in diagnostics (e.g. CLI
// error output). It never returns an error; a short or failed read is
// rendered as far as it got.
func (w Window) HexDump(n int) string {
	if n <= 0 {
		return ""
	}
	if uint64(n) > w.length {
		n = int(w.length)
	}
	buf := make([]byte, n)
	got, _ := w.ReadAt(w.base, buf)
	buf = buf[:got]

	out := make([]byte, 0, len(buf)*3)
	const hexDigits = "0123456789abcdef"
	for i, b := range buf {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, hexDigits[b>>4], hexDigits[b&0xf])
	}
	return string(out)
}
