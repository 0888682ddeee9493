package wasmiter

import "unicode/utf8"

// Name is a WebAssembly name: a vec(byte) that is meant to be
// interpreted as UTF-8, but whose bytes are not decoded or validated
// until a caller asks for its characters. This mirrors the identifier
// name encoding used for import/export names, and reused by the custom
// "name" section.
type Name struct {
	Window
}

// ParseName reads a name's u32 byte length at *offset, advances *offset
// past the declared bytes, and returns a Name windowing those bytes
// without reading or validating them.
func ParseName(source ByteSource, offset *uint64) (Name, error) {
	length, err := decodeU32(offset, source, "read name length")
	if err != nil {
		return Name{}, err
	}
	w := NewWindow(source, *offset, uint64(length))
	*offset += uint64(length)
	return Name{w}, nil
}

// StringLossy reads the entire name and decodes it as UTF-8, replacing
// any invalid byte sequence with the Unicode replacement character. It
// never fails.
func (n Name) StringLossy() string {
	buf := make([]byte, n.Length())
	got, _ := n.ReadAt(n.Base(), buf)
	buf = buf[:got]
	// Converting through []rune decodes each invalid byte as U+FFFD.
	return string([]rune(string(buf)))
}

// String reads the entire name and decodes it as UTF-8, returning a
// *Error with KindInvalidFormat if any byte sequence is invalid.
func (n Name) String() (string, error) {
	buf := make([]byte, n.Length())
	if err := ReadAtExact(n, n.Base(), buf); err != nil {
		return "", withContext(err, "read name bytes")
	}
	if !utf8.Valid(buf) {
		return "", newError(KindInvalidFormat, n.Base(), "name is not valid UTF-8")
	}
	return string(buf), nil
}

// NameChars is a lazy, one-rune-at-a-time iterator over a Name's
// content. Constructed with Chars or CharsStrict.
type NameChars struct {
	source ByteSource
	pos    uint64
	end    uint64
	strict bool
	buf    [utf8.UTFMax]byte
	bufLen int
	bufPos int
}

// Chars returns an iterator that decodes n's bytes as UTF-8 lossily:
// an invalid byte sequence yields the Unicode replacement rune and
// advances by one byte, matching the behavior of Go's range-over-string.
func (n Name) Chars() *NameChars {
	return &NameChars{source: n.Inner(), pos: n.Base(), end: n.End()}
}

// CharsStrict is like Chars, but Next reports a KindInvalidFormat error
// instead of substituting the replacement rune when it encounters an
// invalid byte sequence.
func (n Name) CharsStrict() *NameChars {
	return &NameChars{source: n.Inner(), pos: n.Base(), end: n.End(), strict: true}
}

// refill ensures the buffer holds enough bytes to decode one full rune
// (or as many as remain before end), sliding any unconsumed tail to the
// front before reading more.
func (c *NameChars) refill() error {
	if c.bufPos > 0 {
		n := copy(c.buf[:], c.buf[c.bufPos:c.bufLen])
		c.bufLen, c.bufPos = n, 0
	}
	for c.bufLen < utf8.UTFMax && c.pos+uint64(c.bufLen) < c.end {
		room := c.buf[c.bufLen:]
		want := c.end - (c.pos + uint64(c.bufLen))
		if want > uint64(len(room)) {
			want = uint64(len(room))
		}
		got, err := c.source.ReadAt(c.pos+uint64(c.bufLen), room[:want])
		if err != nil {
			return withContext(err, "read name characters")
		}
		if got == 0 {
			break
		}
		c.bufLen += got
	}
	return nil
}

// Next decodes and returns the next rune, advancing the iterator. ok is
// false once every byte has been consumed. In strict mode, err is
// non-nil and ok is false if an invalid byte sequence is encountered;
// in lossy mode this case instead yields utf8.RuneError with size 1.
func (c *NameChars) Next() (r rune, ok bool, err error) {
	if err := c.refill(); err != nil {
		return 0, false, err
	}
	if c.bufLen == 0 {
		return 0, false, nil
	}
	r, size := utf8.DecodeRune(c.buf[:c.bufLen])
	if r == utf8.RuneError && size <= 1 {
		if c.strict {
			return 0, false, newError(KindInvalidFormat, c.pos, "invalid UTF-8 byte sequence in name")
		}
		size = 1
	}
	c.bufPos = size
	c.pos += uint64(size)
	return r, true, nil
}
