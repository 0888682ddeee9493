package wasmiter

// TypeSection is the lazily-pulled vector of function types declared by
// a module's type section (id 1).
type TypeSection struct {
	Vector
}

// ParseTypeSection builds a TypeSection over a type section's contents.
func ParseTypeSection(contents Window) (TypeSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return TypeSection{}, withContext(err, "read type section")
	}
	return TypeSection{v}, nil
}

// Advance pulls the next FuncType.
func (s *TypeSection) Advance() (FuncType, bool, error) {
	var ft FuncType
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		ft, decodeErr = ParseFuncType(source, offset)
		return decodeErr
	})
	return ft, ok, err
}
