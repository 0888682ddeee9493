package wasmiter

// CodeSection is the lazily-pulled vector of function bodies (section
// id 10), aligned positionally with the function section: entry i here
// is the body of the function whose type is given by entry i of the
// function section.
type CodeSection struct {
	Vector
}

// ParseCodeSection builds a CodeSection over a code section's contents.
func ParseCodeSection(contents Window) (CodeSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return CodeSection{}, withContext(err, "read code section")
	}
	return CodeSection{v}, nil
}

// Advance pulls the next Code entry.
func (s *CodeSection) Advance() (Code, bool, error) {
	var c Code
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		c, decodeErr = ParseCode(source, offset)
		return decodeErr
	})
	return c, ok, err
}
