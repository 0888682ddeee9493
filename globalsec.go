package wasmiter

// Global is one entry of the global section: its type and constant
// initializer expression.
type Global struct {
	Type GlobalType
	Init ConstExpr
}

// GlobalSection is the lazily-pulled vector of the module's defined
// globals (section id 6).
type GlobalSection struct {
	Vector
}

// ParseGlobalSection builds a GlobalSection over a global section's
// contents.
func ParseGlobalSection(contents Window) (GlobalSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return GlobalSection{}, withContext(err, "read global section")
	}
	return GlobalSection{v}, nil
}

// Advance pulls the next Global.
func (s *GlobalSection) Advance() (Global, bool, error) {
	var g Global
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		gt, err := decodeGlobalType(offset, source)
		if err != nil {
			return withContext(err, "read global type")
		}
		init, err := ParseConstExpr(source, offset)
		if err != nil {
			return withContext(err, "read global initializer")
		}
		g = Global{Type: gt, Init: init}
		return nil
	})
	return g, ok, err
}
