package wasmiter

// decodePrefixedImmediate decodes whatever immediate bytes follow a
// prefixed sub-opcode, populating inst's index/memarg/lane/v128 fields
// as appropriate for that sub-opcode's known encoding.
func decodePrefixedImmediate(offset *uint64, source ByteSource, inst *Instruction) error {
	switch inst.Prefixed.Proxy {
	case PrefixFC:
		return decodeFCImmediate(offset, source, inst)
	case PrefixFD:
		return decodeFDImmediate(offset, source, inst)
	case PrefixFE:
		return decodeFEImmediate(offset, source, inst)
	default:
		return newError(KindInvalidPrefixedOpcode, *offset, "unrecognized opcode prefix")
	}
}

func decodeFCImmediate(offset *uint64, source ByteSource, inst *Instruction) error {
	switch inst.Prefixed.Sub {
	case uint32(SubI32TruncSatF32S), uint32(SubI32TruncSatF32U), uint32(SubI32TruncSatF64S), uint32(SubI32TruncSatF64U),
		uint32(SubI64TruncSatF32S), uint32(SubI64TruncSatF32U), uint32(SubI64TruncSatF64S), uint32(SubI64TruncSatF64U):
		return nil

	case uint32(SubMemoryInit):
		dataIdx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read memory.init data index")
		}
		memIdx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read memory.init memory index")
		}
		inst.Index, inst.Index2 = dataIdx, memIdx
		return nil

	case uint32(SubDataDrop):
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read data.drop data index")
		}
		inst.Index = idx
		return nil

	case uint32(SubMemoryCopy):
		dst, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read memory.copy destination index")
		}
		src, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read memory.copy source index")
		}
		inst.Index, inst.Index2 = dst, src
		return nil

	case uint32(SubMemoryFill):
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read memory.fill memory index")
		}
		inst.Index = idx
		return nil

	case uint32(SubTableInit):
		elemIdx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read table.init element index")
		}
		tableIdx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read table.init table index")
		}
		inst.Index, inst.Index2 = elemIdx, tableIdx
		return nil

	case uint32(SubElemDrop):
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read elem.drop element index")
		}
		inst.Index = idx
		return nil

	case uint32(SubTableCopy):
		dst, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read table.copy destination index")
		}
		src, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read table.copy source index")
		}
		inst.Index, inst.Index2 = dst, src
		return nil

	case uint32(SubTableGrow), uint32(SubTableSize), uint32(SubTableFill):
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read table index")
		}
		inst.Index = idx
		return nil

	default:
		return newError(KindInvalidPrefixedOpcode, *offset, "unrecognized 0xFC sub-opcode")
	}
}

// fdIsLaneOnly is the sub-opcode range for extract_lane/
// replace_lane instructions, which carry a single trailing lane-index
// byte (no memarg).
func fdIsLaneOnly(sub uint32) bool { return sub >= 21 && sub <= 34 }

// fdIsLoadStore is the sub-opcode range for v128 memory loads/stores
// that carry a plain MemArg (no lane index).
func fdIsLoadStore(sub uint32) bool { return sub <= 11 || sub == 92 || sub == 93 }

// fdIsLoadStoreLane is the sub-opcode range for the *_lane load/store
// family, which carries a MemArg followed by a lane-index byte.
func fdIsLoadStoreLane(sub uint32) bool { return sub >= 84 && sub <= 91 }

func decodeFDImmediate(offset *uint64, source ByteSource, inst *Instruction) error {
	sub := inst.Prefixed.Sub
	switch {
	case sub == 12: // v128.const
		if err := ReadExact(source, offset, inst.V128[:]); err != nil {
			return withContext(err, "read v128.const immediate")
		}
		return nil

	case sub == 13: // i8x16.shuffle
		if err := ReadExact(source, offset, inst.V128[:]); err != nil {
			return withContext(err, "read i8x16.shuffle lane immediate")
		}
		return nil

	case fdIsLoadStoreLane(sub):
		m, err := decodeMemArg(offset, source)
		if err != nil {
			return withContext(err, "read v128 load/store lane memarg")
		}
		inst.MemArg = m
		lane, err := decodeByte(offset, source, "read v128 load/store lane index")
		if err != nil {
			return err
		}
		inst.LaneIndex = lane
		return nil

	case fdIsLoadStore(sub):
		m, err := decodeMemArg(offset, source)
		if err != nil {
			return withContext(err, "read v128 memarg")
		}
		inst.MemArg = m
		return nil

	case fdIsLaneOnly(sub):
		lane, err := decodeByte(offset, source, "read lane index")
		if err != nil {
			return err
		}
		inst.LaneIndex = lane
		return nil

	default:
		// decodePrefixedOpcode has already rejected any sub not in
		// fdSubNames, so every sub reaching here is a known opcode from
		// the remaining SIMD space (lane-wise arithmetic, comparisons,
		// bitwise and saturating ops, splats), none of which carry
		// immediate bytes.
		return nil
	}
}

func decodeFEImmediate(offset *uint64, source ByteSource, inst *Instruction) error {
	if inst.Prefixed.Sub == feAtomicFenceSub {
		if _, err := decodeByte(offset, source, "read atomic.fence reserved byte"); err != nil {
			return err
		}
		return nil
	}
	// decodePrefixedOpcode has already rejected any sub not in
	// feSubNames, so every other known sub is one of the numbered
	// atomic memory-access instructions, all of which carry a MemArg.
	m, err := decodeMemArg(offset, source)
	if err != nil {
		return withContext(err, "read atomic memarg")
	}
	inst.MemArg = m
	return nil
}
