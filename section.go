package wasmiter

import "github.com/wasmiterio/wasmiter/leb128"

// SectionID identifies the kind of a top-level section. Values 1 through
// 13 are defined by the WebAssembly specification; 0 is the custom
// section; any other value is an unknown section that callers should
// ignore.
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12
	SectionIDTag       SectionID = 13
)

// SectionIDName returns the name used in the binary format spec for id,
// or "unknown" for an id this module does not recognize.
func SectionIDName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "data count"
	case SectionIDTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Section is one top-level section of a module: its id and a Window over
// its contents.
type Section struct {
	ID       SectionID
	Contents Window
}

// SectionSequence iterates the (id, contents) pairs making up a module
// after the 8-byte preamble. It does not enforce section ordering; that
// is the caller's concern.
type SectionSequence struct {
	source ByteSource
	offset uint64
	end    uint64 // 0 means "unbounded, rely on read returning 0 at EOF"
	done   bool
}

// Next pulls the next section, or reports that the sequence is
// exhausted. A content-size that would push the offset past the known
// end of the source is a well-formedness error (KindInvalidFormat).
func (s *SectionSequence) Next() (Section, bool, error) {
	if s.done {
		return Section{}, false, nil
	}

	var idBuf [1]byte
	n, err := s.source.ReadAt(s.offset, idBuf[:])
	if err != nil {
		s.done = true
		return Section{}, false, wrapError(KindBadInput, s.offset, err, "read section id")
	}
	if n == 0 {
		s.done = true
		return Section{}, false, nil
	}

	id := idBuf[0]
	offset := s.offset + 1
	size, err := leb128.DecodeUint32(s.source, &offset)
	if err != nil {
		s.done = true
		return Section{}, false, wrapError(KindInvalidFormat, offset, err, "read section content size")
	}

	contentsBase := offset
	contentsEnd := contentsBase + uint64(size)
	if contentsEnd < contentsBase {
		s.done = true
		return Section{}, false, newError(KindInvalidFormat, offset, "section content size overflows offset")
	}
	if s.end != 0 && contentsEnd > s.end {
		s.done = true
		return Section{}, false, newError(KindInvalidFormat, offset, "section content size exceeds remaining input")
	}

	s.offset = contentsEnd
	return Section{ID: id, Contents: NewWindow(s.source, contentsBase, uint64(size))}, true, nil
}

// Finish drains any remaining sections, discarding them, and returns the
// first error encountered (if any). It is a convenience for callers that
// want to skip to the end of a module, relying on section framing to
// remain well-formed even after an error partway through one section's
// contents.
func (s *SectionSequence) Finish() error {
	for {
		_, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
