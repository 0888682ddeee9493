package wasmiter

// ConstExpr is a constant expression: the instruction sequence used for
// global initializers, element segment offsets/items, data segment
// offsets, and active table default values. It is bounded to exactly
// the bytes of that expression (through its closing end), so it can be
// cheaply re-traversed without re-scanning whatever follows it.
type ConstExpr struct {
	Window
}

// ParseConstExpr scans a constant expression at *offset, validating
// that every instruction it contains (aside from the closing end) is
// one IsConstant accepts, and advances *offset past it.
func ParseConstExpr(source ByteSource, offset *uint64) (ConstExpr, error) {
	start := *offset
	seq := ParseInstructionSequence(source, *offset)
	for {
		inst, ok, err := seq.Next()
		if err != nil {
			return ConstExpr{}, withContext(err, "read constant expression")
		}
		if !ok {
			break
		}
		if inst.Opcode != OpEnd && !inst.IsConstant() {
			return ConstExpr{}, newError(KindInvalidFormat, start, "instruction not valid in a constant expression")
		}
	}
	end := seq.Offset()
	w := NewWindow(source, start, end-start)
	*offset = end
	return ConstExpr{w}, nil
}

// Instructions returns a fresh, independent iterator over the
// expression's instructions, including the trailing end.
func (c ConstExpr) Instructions() InstructionSequence {
	return ParseInstructionSequence(c.Window, c.Base())
}
