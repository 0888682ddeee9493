package wasmiter

// TableSection is the lazily-pulled vector of table types for the
// module's defined tables (section id 4).
type TableSection struct {
	Vector
}

// ParseTableSection builds a TableSection over a table section's
// contents.
func ParseTableSection(contents Window) (TableSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return TableSection{}, withContext(err, "read table section")
	}
	return TableSection{v}, nil
}

// Advance pulls the next TableType.
func (s *TableSection) Advance() (TableType, bool, error) {
	var tt TableType
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		tt, decodeErr = decodeTableType(offset, source)
		return decodeErr
	})
	return tt, ok, err
}
