package wasmiter

// preambleMagic is the 4-byte value "\x00asm" that must open every
// WebAssembly binary module.
var preambleMagic = [4]byte{0x00, 0x61, 0x73, 0x6d}

// SupportedVersion is the only module version this parser understands.
const SupportedVersion uint32 = 1

// Module is a parsed-on-demand view of a WebAssembly binary module: the
// preamble has been checked, and Sections returns an iterator over the
// remainder without reading any of it eagerly.
type Module struct {
	source ByteSource
	length uint64
}

// ParseModule checks the 8-byte preamble of source and, if it matches,
// returns a Module whose Sections method iterates the rest. length is the
// total number of bytes available in source from offset 0; pass
// source.LengthAt(0) if the full extent is not otherwise known.
func ParseModule(source ByteSource, length uint64) (*Module, error) {
	var header [8]byte
	if err := ReadAtExact(source, 0, header[:]); err != nil {
		return nil, withContext(err, "read preamble")
	}
	if [4]byte(header[:4]) != preambleMagic {
		return nil, newError(KindBadWasmMagic, 0, "input does not begin with the wasm magic number")
	}
	version := uint32(header[4]) | uint32(header[5])<<8 | uint32(header[6])<<16 | uint32(header[7])<<24
	if version != SupportedVersion {
		return nil, newError(KindUnsupportedWasmVersion, 4, "unsupported wasm version")
	}
	return &Module{source: source, length: length}, nil
}

// Sections returns a SectionSequence over the module body following the
// 8-byte preamble.
func (m *Module) Sections() *SectionSequence {
	return &SectionSequence{source: m.source, offset: 8, end: m.length}
}

// Source returns the module's underlying ByteSource.
func (m *Module) Source() ByteSource { return m.source }
