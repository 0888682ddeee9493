package wasmiter

// Code is one entry of the code section: a function body, bounded to
// exactly its declared byte size.
type Code struct {
	Body Window
}

// ParseCode reads a code entry's u32 size at *offset, builds a Window
// over exactly that many following bytes, and advances *offset past it.
func ParseCode(source ByteSource, offset *uint64) (Code, error) {
	size, err := decodeU32(offset, source, "read code size")
	if err != nil {
		return Code{}, err
	}
	body := NewWindow(source, *offset, uint64(size))
	*offset += uint64(size)
	return Code{Body: body}, nil
}

// Parse returns fresh, independent lazy iterators over the body's
// locals and its instruction sequence, positioned correctly relative
// to one another: the instruction sequence begins wherever the locals
// groups actually end, without requiring the caller to drain the
// returned Locals itself first. Finding that boundary requires reading
// through the locals groups once internally.
func (c Code) Parse() (Locals, InstructionSequence, error) {
	scanOffset := c.Body.Base()
	scanLocals, err := ParseLocals(c.Body, &scanOffset)
	if err != nil {
		return Locals{}, InstructionSequence{}, withContext(err, "read code body locals")
	}
	if err := scanLocals.Finish(nil); err != nil {
		return Locals{}, InstructionSequence{}, withContext(err, "read code body locals")
	}
	instructionsStart := scanLocals.groups.Offset()

	localsOffset := c.Body.Base()
	locals, err := ParseLocals(c.Body, &localsOffset)
	if err != nil {
		return Locals{}, InstructionSequence{}, withContext(err, "read code body locals")
	}
	seq := ParseInstructionSequence(c.Body, instructionsStart)
	return locals, seq, nil
}

// Finish fully drains both the locals and the instruction sequence and
// verifies the instruction sequence's closing end lands exactly at the
// body's declared end offset.
func (c Code) Finish() error {
	_, seq, err := c.Parse()
	if err != nil {
		return err
	}
	if err := seq.Finish(nil); err != nil {
		return withContext(err, "read code body instructions")
	}
	if seq.Offset() != c.Body.End() {
		return newError(KindInvalidFormat, c.Body.Base(), "code body length does not match its contents")
	}
	return nil
}
