package wasmiter

import (
	"encoding/binary"
	"math"
)

// Instruction is a single decoded instruction: a primary or prefixed
// opcode plus whatever immediates that opcode carries. Every field not
// relevant to Opcode/Prefixed is left at its zero value.
//
// br_table's label vector and select's inline type list are not
// materialized into Instruction; both can be arbitrarily long. BrTable
// is a lazy sub-iterator over the labels; SelectTypes is a Window over
// the encoded type vector (count prefix included), which ParseResultType
// can read. A caller who does not need them can simply ignore both.
type Instruction struct {
	Opcode    Opcode
	Prefixed  PrefixedOpcode
	IsPrefixed bool

	BlockType BlockType
	Index     Index
	Index2    Index
	MemArg    MemArg
	RefType   RefType
	I32       int32
	I64       int64
	f32Bits   uint32
	f64Bits   uint64
	LaneIndex byte
	V128      [16]byte

	BrTable     *BrTableLabels
	SelectTypes Window
}

// F32 decodes the raw bits captured for an f32.const instruction.
func (i Instruction) F32() float32 { return math.Float32frombits(i.f32Bits) }

// F64 decodes the raw bits captured for an f64.const instruction.
func (i Instruction) F64() float64 { return math.Float64frombits(i.f64Bits) }

// Name renders the instruction's mnemonic, resolving the secondary
// opcode space when IsPrefixed is set.
func (i Instruction) Name() string {
	if i.IsPrefixed {
		return i.Prefixed.name()
	}
	return opcodeName(i.Opcode)
}

// IsConstant reports whether this instruction is one the constant
// expression grammar (global initializers, element/data offsets,
// default table values) permits: the *.const family, ref.null,
// ref.func, global.get, and the extended-const proposal's i32/i64
// add/sub/mul.
func (i Instruction) IsConstant() bool {
	if i.IsPrefixed {
		return false
	}
	switch i.Opcode {
	case OpI32Const, OpI64Const, OpF32Const, OpF64Const, OpRefNull, OpRefFunc, OpGlobalGet:
		return true
	case 0x6A, 0x6B, 0x6C, 0x7C, 0x7D, 0x7E: // i32.add/sub/mul, i64.add/sub/mul
		return true
	default:
		return false
	}
}

// BrTableLabels is the lazy, pull-based view over a br_table
// instruction's label vector and trailing default label.
type BrTableLabels struct {
	window Window
	vec    Vector
}

// Advance pulls the next explicit branch target. ok is false once every
// target has been pulled; the trailing default label is read separately
// via Default.
func (b *BrTableLabels) Advance() (LabelIndex, bool, error) {
	var idx LabelIndex
	ok, err := b.vec.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		idx, decodeErr = decodeIndex(offset, source)
		return decodeErr
	})
	return idx, ok, err
}

// Default reads the br_table's trailing default label. It may be
// called at any point regardless of how many explicit targets have
// been pulled via Advance; any remaining targets are skipped first.
func (b *BrTableLabels) Default() (LabelIndex, error) {
	if err := b.vec.Finish(func(offset *uint64, source ByteSource) error {
		_, err := decodeIndex(offset, source)
		return err
	}); err != nil {
		return 0, err
	}
	offset := b.vec.Offset()
	return decodeIndex(&offset, b.window)
}

func decodeInstruction(offset *uint64, source ByteSource) (Instruction, error) {
	start := *offset
	opByte, err := decodeByte(offset, source, "read opcode")
	if err != nil {
		return Instruction{}, err
	}
	op := Opcode(opByte)

	switch op {
	case 0xFC, 0xFD, 0xFE:
		prefixed, err := decodePrefixedOpcode(offset, source, PrefixProxy(op))
		if err != nil {
			return Instruction{}, err
		}
		inst := Instruction{IsPrefixed: true, Prefixed: prefixed}
		if err := decodePrefixedImmediate(offset, source, &inst); err != nil {
			return Instruction{}, err
		}
		return inst, nil
	}

	inst := Instruction{Opcode: op}

	switch {
	case hasNoImmediate(op):
		// nothing to decode

	case op == OpBlock || op == OpLoop || op == OpIf || op == OpTry:
		bt, err := decodeBlockType(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read block type")
		}
		inst.BlockType = bt

	case op == OpBr || op == OpBrIf || op == OpRethrow || op == OpDelegate:
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read label index")
		}
		inst.Index = idx

	case op == OpBrTable:
		tableStart := *offset
		scanOffset := *offset
		v, err := ParseVector(source, &scanOffset)
		if err != nil {
			return Instruction{}, withContext(err, "read br_table targets")
		}
		if err := v.Finish(func(o *uint64, s ByteSource) error {
			_, e := decodeIndex(o, s)
			return e
		}); err != nil {
			return Instruction{}, withContext(err, "read br_table targets")
		}
		scanOffset = v.Offset()
		if _, err := decodeIndex(&scanOffset, source); err != nil {
			return Instruction{}, withContext(err, "read br_table default")
		}
		window := NewWindow(source, tableStart, scanOffset-tableStart)
		innerOffset := window.Base()
		vec, err := ParseVector(window, &innerOffset)
		if err != nil {
			return Instruction{}, withContext(err, "read br_table targets")
		}
		inst.BrTable = &BrTableLabels{window: window, vec: vec}
		*offset = scanOffset

	case op == OpCall || op == OpReturnCall || op == OpThrow || op == OpCatch || op == OpRefFunc:
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read index")
		}
		inst.Index = idx

	case op == OpCallIndirect || op == OpReturnCallIndirect:
		typeIdx, err := decodeIndex(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read call_indirect type index")
		}
		tableIdx, err := decodeIndex(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read call_indirect table index")
		}
		inst.Index, inst.Index2 = typeIdx, tableIdx

	case op == OpSelectT:
		vecStart := *offset
		scanOffset := *offset
		v, err := ParseVector(source, &scanOffset)
		if err != nil {
			return Instruction{}, withContext(err, "read select type list")
		}
		if err := v.Finish(func(o *uint64, s ByteSource) error {
			_, e := decodeValType(o, s)
			return e
		}); err != nil {
			return Instruction{}, withContext(err, "read select type list")
		}
		scanOffset = v.Offset()
		inst.SelectTypes = NewWindow(source, vecStart, scanOffset-vecStart)
		*offset = scanOffset

	case op == OpLocalGet || op == OpLocalSet || op == OpLocalTee ||
		op == OpGlobalGet || op == OpGlobalSet ||
		op == OpTableGet || op == OpTableSet:
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read index")
		}
		inst.Index = idx

	case isMemoryLoadStore(op):
		m, err := decodeMemArg(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read memarg")
		}
		inst.MemArg = m

	case op == OpMemorySize || op == OpMemoryGrow:
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read memory index")
		}
		inst.Index = idx

	case op == OpI32Const:
		v, err := decodeS32(offset, source, "read i32.const immediate")
		if err != nil {
			return Instruction{}, err
		}
		inst.I32 = v

	case op == OpI64Const:
		v, err := decodeS64(offset, source, "read i64.const immediate")
		if err != nil {
			return Instruction{}, err
		}
		inst.I64 = v

	case op == OpF32Const:
		var buf [4]byte
		if err := ReadExact(source, offset, buf[:]); err != nil {
			return Instruction{}, withContext(err, "read f32.const immediate")
		}
		inst.f32Bits = binary.LittleEndian.Uint32(buf[:])

	case op == OpF64Const:
		var buf [8]byte
		if err := ReadExact(source, offset, buf[:]); err != nil {
			return Instruction{}, withContext(err, "read f64.const immediate")
		}
		inst.f64Bits = binary.LittleEndian.Uint64(buf[:])

	case op == OpRefNull:
		rt, err := decodeRefType(offset, source)
		if err != nil {
			return Instruction{}, withContext(err, "read ref.null type")
		}
		inst.RefType = rt

	default:
		return Instruction{}, newError(KindInvalidOpcode, start, "unrecognized opcode")
	}

	return inst, nil
}

func isMemoryLoadStore(op Opcode) bool {
	return op >= OpI32Load && op <= OpI64Store32
}
