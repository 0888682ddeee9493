package wasmiter

// NameSectionName is the custom section name ("name") under which
// these debug-name subsections are conventionally stored.
const NameSectionName = "name"

// NameSubsectionID identifies one of the "name" custom section's
// subsections. Only the core three are named; later proposals (type,
// table, memory, global, elem, data, field, tag names) reuse the same
// (id, size, contents) framing under higher id values this module does
// not otherwise interpret.
type NameSubsectionID byte

const (
	NameSubsectionModule   NameSubsectionID = 0
	NameSubsectionFunction NameSubsectionID = 1
	NameSubsectionLocal    NameSubsectionID = 2
)

// NameSubsection is one (id, contents) entry of the name section.
type NameSubsection struct {
	ID       NameSubsectionID
	Contents Window
}

// NameSubsections iterates a name section's subsections, each bounded
// by its own declared byte size exactly like top-level module sections.
type NameSubsections struct {
	source ByteSource
	offset uint64
	end    uint64
	done   bool
}

// ParseNameSubsections begins iterating the name custom section's
// payload (i.e. CustomSection.Contents when CustomSection.Name is
// "name").
func ParseNameSubsections(contents Window) NameSubsections {
	return NameSubsections{source: contents, offset: contents.Base(), end: contents.End()}
}

// Next pulls the next subsection.
func (n *NameSubsections) Next() (NameSubsection, bool, error) {
	if n.done || n.offset >= n.end {
		n.done = true
		return NameSubsection{}, false, nil
	}
	id, err := decodeByte(&n.offset, n.source, "read name subsection id")
	if err != nil {
		n.done = true
		return NameSubsection{}, false, err
	}
	size, err := decodeU32(&n.offset, n.source, "read name subsection size")
	if err != nil {
		n.done = true
		return NameSubsection{}, false, err
	}
	base := n.offset
	end := base + uint64(size)
	if end > n.end {
		n.done = true
		return NameSubsection{}, false, newError(KindInvalidFormat, base, "name subsection size exceeds remaining input")
	}
	n.offset = end
	return NameSubsection{ID: NameSubsectionID(id), Contents: NewWindow(n.source, base, uint64(size))}, true, nil
}

// NameMap is the lazily-pulled vector underlying the module, function,
// and similar direct name subsections: index/name pairs in ascending
// index order (not enforced here; see AscendingIndexChecker).
type NameMap struct {
	Vector
}

// ParseNameMap builds a NameMap over a name subsection's contents.
func ParseNameMap(contents Window) (NameMap, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return NameMap{}, withContext(err, "read name map")
	}
	return NameMap{v}, nil
}

// Advance pulls the next (index, name) pair.
func (m *NameMap) Advance() (Index, Name, bool, error) {
	var idx Index
	var name Name
	ok, err := m.Vector.Advance(func(offset *uint64, source ByteSource) error {
		i, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read name map index")
		}
		n, err := ParseName(source, offset)
		if err != nil {
			return withContext(err, "read name map name")
		}
		idx, name = i, n
		return nil
	})
	return idx, name, ok, err
}

// IndirectNameMap is the lazily-pulled vector underlying the local
// names subsection: for each function, a nested NameMap of its locals.
type IndirectNameMap struct {
	Vector
}

// ParseIndirectNameMap builds an IndirectNameMap over a name
// subsection's contents.
func ParseIndirectNameMap(contents Window) (IndirectNameMap, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return IndirectNameMap{}, withContext(err, "read indirect name map")
	}
	return IndirectNameMap{v}, nil
}

// Advance pulls the next (owning index, nested NameMap) pair. The
// nested map remains a genuine lazy iterator for the caller; a
// throwaway copy is drained internally only to locate where the next
// pair begins.
func (m *IndirectNameMap) Advance() (Index, NameMap, bool, error) {
	var idx Index
	var inner NameMap
	ok, err := m.Vector.Advance(func(offset *uint64, source ByteSource) error {
		i, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read indirect name map index")
		}
		nested, err := ParseVector(source, offset)
		if err != nil {
			return withContext(err, "read nested name map")
		}
		idx = i
		inner = NameMap{nested}

		scan := NameMap{nested}
		for {
			_, _, ok, err := scan.Advance()
			if err != nil {
				return withContext(err, "read nested name map")
			}
			if !ok {
				break
			}
		}
		*offset = scan.Vector.Offset()
		return nil
	})
	return idx, inner, ok, err
}
