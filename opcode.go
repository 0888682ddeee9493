package wasmiter

// Opcode is a primary instruction opcode byte. The 0xFC, 0xFD, and 0xFE
// bytes are not themselves opcodes in the sense below; they introduce a
// secondary u32 LEB128 sub-opcode handled by PrefixedOpcode instead.
type Opcode byte

const (
	OpUnreachable Opcode = 0x00
	OpNop         Opcode = 0x01
	OpBlock       Opcode = 0x02
	OpLoop        Opcode = 0x03
	OpIf          Opcode = 0x04
	OpElse        Opcode = 0x05
	OpTry         Opcode = 0x06
	OpCatch       Opcode = 0x07
	OpThrow       Opcode = 0x08
	OpRethrow     Opcode = 0x09
	OpEnd         Opcode = 0x0B
	OpBr          Opcode = 0x0C
	OpBrIf        Opcode = 0x0D
	OpBrTable     Opcode = 0x0E
	OpReturn      Opcode = 0x0F
	OpCall        Opcode = 0x10
	OpCallIndirect Opcode = 0x11
	OpReturnCall         Opcode = 0x12
	OpReturnCallIndirect Opcode = 0x13
	OpDelegate           Opcode = 0x18
	OpCatchAll           Opcode = 0x19

	OpDrop   Opcode = 0x1A
	OpSelect Opcode = 0x1B
	OpSelectT Opcode = 0x1C

	OpLocalGet  Opcode = 0x20
	OpLocalSet  Opcode = 0x21
	OpLocalTee  Opcode = 0x22
	OpGlobalGet Opcode = 0x23
	OpGlobalSet Opcode = 0x24

	OpTableGet Opcode = 0x25
	OpTableSet Opcode = 0x26

	OpI32Load    Opcode = 0x28
	OpI64Load    Opcode = 0x29
	OpF32Load    Opcode = 0x2A
	OpF64Load    Opcode = 0x2B
	OpI32Load8S  Opcode = 0x2C
	OpI32Load8U  Opcode = 0x2D
	OpI32Load16S Opcode = 0x2E
	OpI32Load16U Opcode = 0x2F
	OpI64Load8S  Opcode = 0x30
	OpI64Load8U  Opcode = 0x31
	OpI64Load16S Opcode = 0x32
	OpI64Load16U Opcode = 0x33
	OpI64Load32S Opcode = 0x34
	OpI64Load32U Opcode = 0x35
	OpI32Store   Opcode = 0x36
	OpI64Store   Opcode = 0x37
	OpF32Store   Opcode = 0x38
	OpF64Store   Opcode = 0x39
	OpI32Store8  Opcode = 0x3A
	OpI32Store16 Opcode = 0x3B
	OpI64Store8  Opcode = 0x3C
	OpI64Store16 Opcode = 0x3D
	OpI64Store32 Opcode = 0x3E
	OpMemorySize Opcode = 0x3F
	OpMemoryGrow Opcode = 0x40

	OpI32Const Opcode = 0x41
	OpI64Const Opcode = 0x42
	OpF32Const Opcode = 0x43
	OpF64Const Opcode = 0x44

	// 0x45-0xC4 is the numeric comparison/arithmetic/conversion block,
	// including the sign-extension proposal's 0xC0-0xC4. Individual
	// opcodes in this range carry no immediates, so they are not given
	// separate named constants; opcodeName names those listed in
	// numericOpcodeNames.

	OpRefNull   Opcode = 0xD0
	OpRefIsNull Opcode = 0xD1
	OpRefFunc   Opcode = 0xD2
)

// hasNoImmediate reports whether op is known to carry zero immediate
// operands, i.e. every opcode in the numeric and parametric (non-select)
// range plus the control-flow opcodes that need no operand.
func hasNoImmediate(op Opcode) bool {
	switch op {
	case OpUnreachable, OpNop, OpElse, OpEnd, OpReturn, OpDrop,
		OpSelect, OpCatchAll, OpRefIsNull:
		return true
	}
	return op >= 0x45 && op <= 0xC4
}

func opcodeName(op Opcode) string {
	switch op {
	case OpUnreachable:
		return "unreachable"
	case OpNop:
		return "nop"
	case OpBlock:
		return "block"
	case OpLoop:
		return "loop"
	case OpIf:
		return "if"
	case OpElse:
		return "else"
	case OpTry:
		return "try"
	case OpCatch:
		return "catch"
	case OpThrow:
		return "throw"
	case OpRethrow:
		return "rethrow"
	case OpEnd:
		return "end"
	case OpBr:
		return "br"
	case OpBrIf:
		return "br_if"
	case OpBrTable:
		return "br_table"
	case OpReturn:
		return "return"
	case OpCall:
		return "call"
	case OpCallIndirect:
		return "call_indirect"
	case OpReturnCall:
		return "return_call"
	case OpReturnCallIndirect:
		return "return_call_indirect"
	case OpDelegate:
		return "delegate"
	case OpCatchAll:
		return "catch_all"
	case OpDrop:
		return "drop"
	case OpSelect:
		return "select"
	case OpSelectT:
		return "select"
	case OpLocalGet:
		return "local.get"
	case OpLocalSet:
		return "local.set"
	case OpLocalTee:
		return "local.tee"
	case OpGlobalGet:
		return "global.get"
	case OpGlobalSet:
		return "global.set"
	case OpTableGet:
		return "table.get"
	case OpTableSet:
		return "table.set"
	case OpMemorySize:
		return "memory.size"
	case OpMemoryGrow:
		return "memory.grow"
	case OpI32Const:
		return "i32.const"
	case OpI64Const:
		return "i64.const"
	case OpF32Const:
		return "f32.const"
	case OpF64Const:
		return "f64.const"
	case OpRefNull:
		return "ref.null"
	case OpRefIsNull:
		return "ref.is_null"
	case OpRefFunc:
		return "ref.func"
	}
	if name, ok := memoryOpcodeNames[op]; ok {
		return name
	}
	if name, ok := numericOpcodeNames[op]; ok {
		return name
	}
	return "unknown"
}

var memoryOpcodeNames = map[Opcode]string{
	OpI32Load: "i32.load", OpI64Load: "i64.load", OpF32Load: "f32.load", OpF64Load: "f64.load",
	OpI32Load8S: "i32.load8_s", OpI32Load8U: "i32.load8_u", OpI32Load16S: "i32.load16_s", OpI32Load16U: "i32.load16_u",
	OpI64Load8S: "i64.load8_s", OpI64Load8U: "i64.load8_u", OpI64Load16S: "i64.load16_s", OpI64Load16U: "i64.load16_u",
	OpI64Load32S: "i64.load32_s", OpI64Load32U: "i64.load32_u",
	OpI32Store: "i32.store", OpI64Store: "i64.store", OpF32Store: "f32.store", OpF64Store: "f64.store",
	OpI32Store8: "i32.store8", OpI32Store16: "i32.store16", OpI64Store8: "i64.store8", OpI64Store16: "i64.store16", OpI64Store32: "i64.store32",
}

// numericOpcodeNames names the 0x45-0xC4 comparison/arithmetic/
// conversion/sign-extension range. Only a representative subset is
// named individually; opcodeName returns "unknown" for the rest. These
// opcodes carry no immediates, so decoding does not depend on the names.
var numericOpcodeNames = map[Opcode]string{
	0x45: "i32.eqz", 0x46: "i32.eq", 0x47: "i32.ne", 0x48: "i32.lt_s", 0x49: "i32.lt_u",
	0x4A: "i32.gt_s", 0x4B: "i32.gt_u", 0x4C: "i32.le_s", 0x4D: "i32.le_u", 0x4E: "i32.ge_s", 0x4F: "i32.ge_u",
	0x50: "i64.eqz", 0x51: "i64.eq", 0x52: "i64.ne",
	0x6A: "i32.add", 0x6B: "i32.sub", 0x6C: "i32.mul",
	0x7C: "i64.add", 0x7D: "i64.sub", 0x7E: "i64.mul",
	0xC0: "i32.extend8_s", 0xC1: "i32.extend16_s", 0xC2: "i64.extend8_s", 0xC3: "i64.extend16_s", 0xC4: "i64.extend32_s",
}
