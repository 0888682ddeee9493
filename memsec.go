package wasmiter

// MemorySection is the lazily-pulled vector of memory types for the
// module's defined memories (section id 5).
type MemorySection struct {
	Vector
}

// ParseMemorySection builds a MemorySection over a memory section's
// contents.
func ParseMemorySection(contents Window) (MemorySection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return MemorySection{}, withContext(err, "read memory section")
	}
	return MemorySection{v}, nil
}

// Advance pulls the next MemType.
func (s *MemorySection) Advance() (MemType, bool, error) {
	var mt MemType
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		mt, decodeErr = decodeMemType(offset, source)
		return decodeErr
	})
	return mt, ok, err
}
