package wasmiter

// MemArg is the alignment/offset pair carried by every memory
// instruction. Align is stored as the decoded exponent (so the actual
// byte alignment is 1<<Align); MemIndex is 0 unless the multi-memory
// extension's alignment encoding (align value with bit 6 set) selects a
// non-zero memory.
type MemArg struct {
	Align    uint32
	Offset   uint64
	MemIndex MemIndex
}

// memArgMultiMemoryFlag is set in the raw alignment byte's encoding when
// a memory index other than 0 follows, per the multi-memory proposal.
const memArgMultiMemoryFlag = 1 << 6

// memArgMaxAlign is the largest alignment exponent any defined memory
// instruction may specify (matching v128's 16-byte natural alignment).
const memArgMaxAlign = 4

// decodeMemArg reads align, then (if the multi-memory flag bit is set)
// the trailing memory index, then the offset: align, memidx, offset.
// This intentionally follows the actual multi-memory proposal encoding
// used by wasm-tools and every other real producer/consumer, rather
// than the align/offset/memidx order a looser reading of the field
// names might suggest.
func decodeMemArg(offset *uint64, source ByteSource) (MemArg, error) {
	start := *offset
	rawAlign, err := decodeU32(offset, source, "read memarg alignment")
	if err != nil {
		return MemArg{}, err
	}

	var m MemArg
	if rawAlign&memArgMultiMemoryFlag != 0 {
		m.Align = rawAlign &^ memArgMultiMemoryFlag
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return MemArg{}, withContext(err, "read memarg memory index")
		}
		m.MemIndex = idx
	} else {
		m.Align = rawAlign
	}
	if m.Align > memArgMaxAlign {
		return MemArg{}, newError(KindInvalidFormat, start, "memarg alignment exponent out of range")
	}

	off, err := decodeU64(offset, source, "read memarg offset")
	if err != nil {
		return MemArg{}, err
	}
	m.Offset = off
	return m, nil
}
