package wasmiter

// Index is the common representation of every kind of WebAssembly
// index: type, function, table, memory, global, element, data, and
// local indices are all encoded identically, as an unsigned LEB128
// integer. The distinct named types below exist purely for
// self-documenting call sites; they all share this representation.
type Index = uint32

type (
	TypeIndex   = Index
	FuncIndex   = Index
	TableIndex  = Index
	MemIndex    = Index
	GlobalIndex = Index
	ElemIndex   = Index
	DataIndex   = Index
	LocalIndex  = Index
	LabelIndex  = Index
	TagIndex    = Index
)

func decodeIndex(offset *uint64, source ByteSource) (Index, error) {
	return decodeU32(offset, source, "read index")
}
