// Package wasmiter implements a streaming, pull-based parser for the
// WebAssembly binary module format. Given a ByteSource it exposes an
// iterator of top-level sections and, for each recognized section,
// typed, lazy sub-iterators over the section's contents, without ever
// materializing the whole module.
package wasmiter


// ByteSource is a read-only, offset-addressable byte sequence. All
// parsing in this module is expressed against this interface rather
// than a cursor, so that any sub-parser can record its own start offset
// and be re-traversed, borrowed, or cloned without buffering the module
// in memory.
type ByteSource interface {
	// ReadAt copies up to len(buf) bytes starting at the absolute
	// offset into buf, returning the number of bytes actually copied.
	// Returning 0 with a nil error means end-of-input at that offset;
	// short reads signal only end-of-available-data, not an error.
	ReadAt(offset uint64, buf []byte) (n int, err error)

	// LengthAt returns a best-effort count of the bytes remaining from
	// offset. An out-of-bounds offset may return 0.
	LengthAt(offset uint64) uint64
}

// ReadAtExact reads exactly len(buf) bytes at offset, failing with
// KindBadInput if the source could not fill the buffer.
func ReadAtExact(src ByteSource, offset uint64, buf []byte) error {
	n, err := src.ReadAt(offset, buf)
	if err != nil {
		return wrapError(KindBadInput, offset, err, "read exact")
	}
	if n != len(buf) {
		return newError(KindBadInput, offset, "buffer could not be completely filled")
	}
	return nil
}

// Read reads at *offset into buf, then advances *offset by the number of
// bytes copied. It fails with KindBadInput if advancing would overflow a
// uint64.
func Read(src ByteSource, offset *uint64, buf []byte) (int, error) {
	n, err := src.ReadAt(*offset, buf)
	if err != nil {
		return 0, wrapError(KindBadInput, *offset, err, "read")
	}
	if err := advance(offset, uint64(n)); err != nil {
		return n, err
	}
	return n, nil
}

// ReadExact reads exactly len(buf) bytes at *offset, then advances
// *offset by len(buf).
func ReadExact(src ByteSource, offset *uint64, buf []byte) error {
	if err := ReadAtExact(src, *offset, buf); err != nil {
		return err
	}
	return advance(offset, uint64(len(buf)))
}

func advance(offset *uint64, amount uint64) error {
	next := *offset + amount
	if next < *offset {
		return newError(KindBadInput, *offset, "offset overflowed")
	}
	*offset = next
	return nil
}
