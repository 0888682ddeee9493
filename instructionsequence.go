package wasmiter

// InstructionSequence is a lazy, pull-based iterator over a structured
// instruction stream: a function body, or any other context (global
// initializer, element/data offset, select arm) that ends with a
// matching `end`.
//
// Depth starts at 1, representing the implicit outermost block formed
// by the sequence itself. block/loop/if/try each push one level; end
// pops one level and, on reaching 0, ends the sequence. The terminal
// end is itself yielded once before Next reports exhaustion, matching
// the original crate's behavior; callers that want a yield count
// matching only the body's "real" instructions should drop the last
// one themselves.
//
// delegate behaves like end for the try it closes, but is only legal
// once at least one nested try is open; a delegate at depth 1 is
// malformed.
type InstructionSequence struct {
	source ByteSource
	offset uint64
	depth  int
	done   bool
}

// ParseInstructionSequence begins reading instructions at *offset. The
// caller is responsible for having positioned *offset at the first
// instruction of the sequence's body.
func ParseInstructionSequence(source ByteSource, offset uint64) InstructionSequence {
	return InstructionSequence{source: source, offset: offset, depth: 1}
}

// Offset returns the offset of the next unparsed instruction.
func (s *InstructionSequence) Offset() uint64 { return s.offset }

// Depth returns the current structured-control nesting depth.
func (s *InstructionSequence) Depth() int { return s.depth }

// Next pulls and decodes the next instruction. ok is false once the
// sequence's matching end has already been yielded, or once a decode
// error (including a delegate at depth 1) has latched the sequence
// closed.
func (s *InstructionSequence) Next() (Instruction, bool, error) {
	if s.done {
		return Instruction{}, false, nil
	}

	start := s.offset
	inst, err := decodeInstruction(&s.offset, s.source)
	if err != nil {
		s.done = true
		return Instruction{}, false, err
	}

	if !inst.IsPrefixed {
		switch inst.Opcode {
		case OpBlock, OpLoop, OpIf, OpTry:
			s.depth++

		case OpEnd:
			s.depth--
			if s.depth <= 0 {
				s.done = true
			}

		case OpDelegate:
			if s.depth <= 1 {
				s.done = true
				return Instruction{}, false, newError(KindInvalidFormat, start, "delegate with no enclosing try")
			}
			s.depth--
			if s.depth <= 0 {
				s.done = true
			}
		}
	}

	return inst, true, nil
}

// Finish drains the sequence, invoking f for every instruction still
// pulled. It stops at the first decode error or once the sequence's
// closing end has been consumed.
func (s *InstructionSequence) Finish(f func(Instruction) error) error {
	for {
		inst, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if f != nil {
			if err := f(inst); err != nil {
				return err
			}
		}
	}
}
