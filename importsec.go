package wasmiter

// ImportDesc is the kind-specific descriptor half of an import entry.
// Only the field matching Kind is meaningful.
type ImportDesc struct {
	Kind       ExternalKind
	TypeIndex  TypeIndex
	TableType  TableType
	MemType    MemType
	GlobalType GlobalType
}

// Import is one entry of the import section: the two-part name it is
// imported under, and its descriptor.
type Import struct {
	Module Name
	Field  Name
	Desc   ImportDesc
}

// ImportSection is the lazily-pulled vector of a module's imports
// (section id 2).
type ImportSection struct {
	Vector
}

// ParseImportSection builds an ImportSection over an import section's
// contents.
func ParseImportSection(contents Window) (ImportSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return ImportSection{}, withContext(err, "read import section")
	}
	return ImportSection{v}, nil
}

func decodeImportDesc(offset *uint64, source ByteSource) (ImportDesc, error) {
	kind, err := decodeImportExternalKind(offset, source)
	if err != nil {
		return ImportDesc{}, err
	}
	desc := ImportDesc{Kind: kind}
	switch kind {
	case ExternalKindFunc, ExternalKindTag:
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return ImportDesc{}, withContext(err, "read import type index")
		}
		desc.TypeIndex = idx
	case ExternalKindTable:
		tt, err := decodeTableType(offset, source)
		if err != nil {
			return ImportDesc{}, withContext(err, "read import table type")
		}
		desc.TableType = tt
	case ExternalKindMemory:
		mt, err := decodeMemType(offset, source)
		if err != nil {
			return ImportDesc{}, withContext(err, "read import memory type")
		}
		desc.MemType = mt
	case ExternalKindGlobal:
		gt, err := decodeGlobalType(offset, source)
		if err != nil {
			return ImportDesc{}, withContext(err, "read import global type")
		}
		desc.GlobalType = gt
	}
	return desc, nil
}

// Advance pulls the next Import.
func (s *ImportSection) Advance() (Import, bool, error) {
	var imp Import
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		mod, err := ParseName(source, offset)
		if err != nil {
			return withContext(err, "read import module name")
		}
		field, err := ParseName(source, offset)
		if err != nil {
			return withContext(err, "read import field name")
		}
		desc, err := decodeImportDesc(offset, source)
		if err != nil {
			return err
		}
		imp = Import{Module: mod, Field: field, Desc: desc}
		return nil
	})
	return imp, ok, err
}
