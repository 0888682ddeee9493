package wasmiter

// FunctionSection is the lazily-pulled vector of type indices for the
// module's defined functions (section id 3); entry i gives the type of
// the function whose body is entry i of the code section.
type FunctionSection struct {
	Vector
}

// ParseFunctionSection builds a FunctionSection over a function
// section's contents.
func ParseFunctionSection(contents Window) (FunctionSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return FunctionSection{}, withContext(err, "read function section")
	}
	return FunctionSection{v}, nil
}

// Advance pulls the next function's TypeIndex.
func (s *FunctionSection) Advance() (TypeIndex, bool, error) {
	var idx TypeIndex
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		idx, decodeErr = decodeIndex(offset, source)
		return decodeErr
	})
	return idx, ok, err
}
