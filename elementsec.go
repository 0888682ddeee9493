package wasmiter

// ElementMode classifies how an element segment's contents are used:
// copied into a table at instantiation (Active), left for explicit
// table.init use (Passive), or never placed into any table but still
// referenceable for validation purposes (Declarative).
type ElementMode int

const (
	ElementModeActive ElementMode = iota
	ElementModePassive
	ElementModeDeclarative
)

// ElementItem is one entry of an element segment's item list. Exactly
// one field is meaningful, selected by the owning Element's UsesExprs.
type ElementItem struct {
	FuncIndex FuncIndex
	Expr      ConstExpr
}

// ElementItems is the lazily-pulled vector of an element segment's
// items, in whichever of the two encodings (a bare function index list,
// or a list of constant expressions) the segment used.
type ElementItems struct {
	UsesExprs bool
	vec       Vector
}

// Advance pulls the next ElementItem.
func (e *ElementItems) Advance() (ElementItem, bool, error) {
	var item ElementItem
	ok, err := e.vec.Advance(func(offset *uint64, source ByteSource) error {
		if e.UsesExprs {
			expr, err := ParseConstExpr(source, offset)
			if err != nil {
				return withContext(err, "read element expression")
			}
			item = ElementItem{Expr: expr}
			return nil
		}
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read element function index")
		}
		item = ElementItem{FuncIndex: idx}
		return nil
	})
	return item, ok, err
}

// Element is one entry of the element section.
type Element struct {
	Mode       ElementMode
	TableIndex TableIndex // valid when Mode == ElementModeActive
	Offset     ConstExpr  // valid when Mode == ElementModeActive
	RefType    RefType
	Items      ElementItems
}

// ElementSection is the lazily-pulled vector of the module's element
// segments (section id 9).
type ElementSection struct {
	Vector
}

// ParseElementSection builds an ElementSection over an element
// section's contents.
func ParseElementSection(contents Window) (ElementSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return ElementSection{}, withContext(err, "read element section")
	}
	return ElementSection{v}, nil
}

func decodeElemKind(offset *uint64, source ByteSource) error {
	b, err := decodeByte(offset, source, "read element kind")
	if err != nil {
		return err
	}
	if b != 0x00 {
		return newError(KindBadElementKind, *offset-1, "element kind must be funcref (0x00)")
	}
	return nil
}

// Advance pulls the next Element, per the eight element segment
// encodings defined across the bulk-memory and reference-types
// proposals (flag bits: bit0 active/non-active, bit1 explicit table
// index or declarative-vs-passive, bit2 expression-list vs. bare
// function index list).
func (s *ElementSection) Advance() (Element, bool, error) {
	var el Element
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		start := *offset
		flags, err := decodeU32(offset, source, "read element segment flags")
		if err != nil {
			return err
		}
		if flags > 7 {
			return newError(KindBadElementSegmentMode, start, "unrecognized element segment flags")
		}

		el = Element{RefType: RefTypeFuncref}

		active := flags&1 == 0
		hasTableIdxOrDeclarative := flags&2 != 0
		usesExprs := flags&4 != 0

		if active {
			el.Mode = ElementModeActive
			if hasTableIdxOrDeclarative {
				idx, err := decodeIndex(offset, source)
				if err != nil {
					return withContext(err, "read element table index")
				}
				el.TableIndex = idx
			}
			off, err := ParseConstExpr(source, offset)
			if err != nil {
				return withContext(err, "read element offset expression")
			}
			el.Offset = off
		} else if hasTableIdxOrDeclarative {
			el.Mode = ElementModeDeclarative
		} else {
			el.Mode = ElementModePassive
		}

		if usesExprs {
			if flags != 4 {
				rt, err := decodeRefType(offset, source)
				if err != nil {
					return withContext(err, "read element reference type")
				}
				el.RefType = rt
			}
		} else {
			if flags != 0 {
				if err := decodeElemKind(offset, source); err != nil {
					return err
				}
			}
		}

		items, err := ParseVector(source, offset)
		if err != nil {
			return withContext(err, "read element items")
		}
		el.Items = ElementItems{UsesExprs: usesExprs, vec: items}

		// items remains a lazy, undrained iterator for the caller; a
		// throwaway copy is drained here purely to compute where the
		// next sibling element begins, since *offset must land past
		// every item regardless of whether the caller ever pulls them.
		scan := ElementItems{UsesExprs: usesExprs, vec: items}
		for {
			_, ok, err := scan.Advance()
			if err != nil {
				return withContext(err, "read element items")
			}
			if !ok {
				break
			}
		}
		*offset = scan.vec.Offset()
		return nil
	})
	return el, ok, err
}
