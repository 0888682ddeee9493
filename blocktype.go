package wasmiter

import "github.com/wasmiterio/wasmiter/leb128"

// BlockTypeKind distinguishes the three shapes a BlockType can take.
type BlockTypeKind int

const (
	// BlockTypeEmpty means the block has no parameters and no results.
	BlockTypeEmpty BlockTypeKind = iota
	// BlockTypeValue means the block produces a single inline ValType
	// result and takes no parameters.
	BlockTypeValue
	// BlockTypeIndex means the block's parameter and result types are
	// given by the function type at TypeIndex.
	BlockTypeIndex
)

// BlockType is the type of a block, loop, if, or try instruction's body:
// either empty, a single inline value type, or a reference to a function
// type by index.
type BlockType struct {
	Kind      BlockTypeKind
	ValType   ValType // valid when Kind == BlockTypeValue
	TypeIndex TypeIndex
}

// blockTypeInline maps the negative encodings defined for BlockType to
// their inline ValType.
func blockTypeInline(v int64) (ValType, bool) {
	switch v {
	case -1:
		return ValTypeI32, true
	case -2:
		return ValTypeI64, true
	case -3:
		return ValTypeF32, true
	case -4:
		return ValTypeF64, true
	case -5:
		return ValTypeV128, true
	case -16:
		return ValTypeFuncref, true
	case -17:
		return ValTypeExternref, true
	default:
		return 0, false
	}
}

func decodeBlockType(offset *uint64, source ByteSource) (BlockType, error) {
	start := *offset
	v, err := leb128.DecodeInt33AsInt64(source, offset)
	if err != nil {
		return BlockType{}, wrapError(KindInvalidFormat, start, err, "read block type")
	}
	if v == -64 {
		return BlockType{Kind: BlockTypeEmpty}, nil
	}
	if vt, ok := blockTypeInline(v); ok {
		return BlockType{Kind: BlockTypeValue, ValType: vt}, nil
	}
	if v < 0 {
		return BlockType{}, newError(KindInvalidFormat, start, "block type encodes an unrecognized negative value")
	}
	return BlockType{Kind: BlockTypeIndex, TypeIndex: TypeIndex(v)}, nil
}
