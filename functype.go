package wasmiter

// funcTypeTag is the leading byte of every function type encoding.
const funcTypeTag = 0x60

// FuncType is a function signature. Parameters and results are
// materialized into plain slices: function signatures are small and
// almost always inspected more than once (by validators, the WAT
// renderer, call-site type checks), so there is little to gain from
// keeping them lazy the way section-level vectors are.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// ParseFuncType reads a functype (0x60 tag, params, results) at *offset.
func ParseFuncType(source ByteSource, offset *uint64) (FuncType, error) {
	start := *offset
	tag, err := decodeByte(offset, source, "read function type tag")
	if err != nil {
		return FuncType{}, err
	}
	if tag != funcTypeTag {
		return FuncType{}, newError(KindInvalidFormat, start, "function type must begin with 0x60")
	}

	params, err := ParseResultType(source, offset)
	if err != nil {
		return FuncType{}, withContext(err, "read function type parameters")
	}
	paramTypes, err := params.CollectValTypes()
	if err != nil {
		return FuncType{}, withContext(err, "read function type parameters")
	}
	*offset = params.Offset()

	results, err := ParseResultType(source, offset)
	if err != nil {
		return FuncType{}, withContext(err, "read function type results")
	}
	resultTypes, err := results.CollectValTypes()
	if err != nil {
		return FuncType{}, withContext(err, "read function type results")
	}
	*offset = results.Offset()

	return FuncType{Params: paramTypes, Results: resultTypes}, nil
}
