package wasmiter

// ValType is a WebAssembly value type, encoded as a single byte in the
// binary format.
type ValType = byte

const (
	ValTypeI32       ValType = 0x7f
	ValTypeI64       ValType = 0x7e
	ValTypeF32       ValType = 0x7d
	ValTypeF64       ValType = 0x7c
	ValTypeV128      ValType = 0x7b
	ValTypeFuncref   ValType = 0x70
	ValTypeExternref ValType = 0x6f
)

// ValTypeName returns the WebAssembly text format name of t, or
// "unknown" if t is not a value type this module recognizes.
func ValTypeName(t ValType) string {
	switch t {
	case ValTypeI32:
		return "i32"
	case ValTypeI64:
		return "i64"
	case ValTypeF32:
		return "f32"
	case ValTypeF64:
		return "f64"
	case ValTypeV128:
		return "v128"
	case ValTypeFuncref:
		return "funcref"
	case ValTypeExternref:
		return "externref"
	default:
		return "unknown"
	}
}

func isValType(b byte) bool {
	switch b {
	case ValTypeI32, ValTypeI64, ValTypeF32, ValTypeF64, ValTypeV128, ValTypeFuncref, ValTypeExternref:
		return true
	default:
		return false
	}
}

// RefType is the subset of ValType usable as a reference type: funcref
// or externref.
type RefType = byte

const (
	RefTypeFuncref   RefType = ValTypeFuncref
	RefTypeExternref RefType = ValTypeExternref
)

// RefTypeName returns the text format name of t.
func RefTypeName(t RefType) string {
	return ValTypeName(t)
}

func decodeValType(offset *uint64, source ByteSource) (ValType, error) {
	var b [1]byte
	if err := ReadExact(source, offset, b[:]); err != nil {
		return 0, withContext(err, "read value type")
	}
	if !isValType(b[0]) {
		return 0, newError(KindInvalidFormat, *offset-1, "not a recognized value type")
	}
	return b[0], nil
}

func decodeRefType(offset *uint64, source ByteSource) (RefType, error) {
	var b [1]byte
	if err := ReadExact(source, offset, b[:]); err != nil {
		return 0, withContext(err, "read reference type")
	}
	if b[0] != RefTypeFuncref && b[0] != RefTypeExternref {
		return 0, newError(KindInvalidFormat, *offset-1, "reference type must be funcref or externref")
	}
	return b[0], nil
}

// ResultType is a vector of ValTypes, as used for function parameters and
// results.
type ResultType struct {
	Vector
}

// ParseResultType parses a vec(valtype) at *offset.
func ParseResultType(source ByteSource, offset *uint64) (ResultType, error) {
	v, err := ParseVector(source, offset)
	if err != nil {
		return ResultType{}, withContext(err, "read result type")
	}
	return ResultType{v}, nil
}

// Advance pulls the next ValType in the result type.
func (r *ResultType) Advance() (ValType, bool, error) {
	var t ValType
	ok, err := r.Vector.Advance(func(offset *uint64, source ByteSource) error {
		var decodeErr error
		t, decodeErr = decodeValType(offset, source)
		return decodeErr
	})
	return t, ok, err
}

// CollectValTypes drains r into a plain slice. This is a convenience for
// callers that do want an in-memory copy (e.g. the WAT renderer, or a
// FuncType's params/results which are typically small).
func (r *ResultType) CollectValTypes() ([]ValType, error) {
	out := make([]ValType, 0, r.Remaining())
	for {
		t, ok, err := r.Advance()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, t)
	}
}
