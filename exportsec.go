package wasmiter

// Export is one entry of the export section: the name it is exported
// under, which namespace it refers to, and the index within that
// namespace.
type Export struct {
	Name  Name
	Kind  ExternalKind
	Index Index
}

// ExportSection is the lazily-pulled vector of the module's exports
// (section id 7).
type ExportSection struct {
	Vector
}

// ParseExportSection builds an ExportSection over an export section's
// contents.
func ParseExportSection(contents Window) (ExportSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return ExportSection{}, withContext(err, "read export section")
	}
	return ExportSection{v}, nil
}

// Advance pulls the next Export.
func (s *ExportSection) Advance() (Export, bool, error) {
	var e Export
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		name, err := ParseName(source, offset)
		if err != nil {
			return withContext(err, "read export name")
		}
		kind, err := decodeExportExternalKind(offset, source)
		if err != nil {
			return err
		}
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read export index")
		}
		e = Export{Name: name, Kind: kind, Index: idx}
		return nil
	})
	return e, ok, err
}
