package wasmiter

// Locals is a function body's local variable declarations: a vector of
// (count, valtype) groups that this iterator expands transparently, so
// callers pull one local's type at a time without caring how the
// encoder happened to group repeated types. A group with a zero count
// is skipped silently, matching the format's own allowance for it.
type Locals struct {
	groups    Vector
	remaining uint32
	typ       ValType
}

// ParseLocals reads a function body's locals vector at *offset.
func ParseLocals(source ByteSource, offset *uint64) (Locals, error) {
	v, err := ParseVector(source, offset)
	if err != nil {
		return Locals{}, withContext(err, "read locals")
	}
	return Locals{groups: v}, nil
}

// GroupCount returns the number of (count, valtype) groups declared,
// not the number of individual locals those groups expand to.
func (l *Locals) GroupCount() uint32 { return l.groups.Len() }

// Advance pulls the type of the next individual local, transparently
// crossing group boundaries. ok is false once every group's count has
// been exhausted.
func (l *Locals) Advance() (ValType, bool, error) {
	for l.remaining == 0 {
		var t ValType
		var count uint32
		ok, err := l.groups.Advance(func(offset *uint64, source ByteSource) error {
			c, err := decodeU32(offset, source, "read locals group count")
			if err != nil {
				return err
			}
			vt, err := decodeValType(offset, source)
			if err != nil {
				return err
			}
			count, t = c, vt
			return nil
		})
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		l.remaining, l.typ = count, t
	}
	l.remaining--
	return l.typ, true, nil
}

// Finish drains every remaining local, invoking f with each type.
func (l *Locals) Finish(f func(ValType) error) error {
	for {
		t, ok, err := l.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if f != nil {
			if err := f(t); err != nil {
				return err
			}
		}
	}
}
