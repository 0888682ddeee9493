package wasmiter

// Limits describes the min/max bounds of a table or memory. The index
// type determines whether Min/Max are 32-bit or 64-bit quantities
// (memory64); Shared marks a memory as sharable across agents (threads
// proposal).
type Limits struct {
	Min       uint64
	Max       uint64
	HasMax    bool
	Shared    bool
	Index64   bool
}

const (
	limitsFlagHasMax  = 1 << 0
	limitsFlagShared  = 1 << 1
	limitsFlagIndex64 = 1 << 2
)

func decodeLimits(offset *uint64, source ByteSource) (Limits, error) {
	start := *offset
	flags, err := decodeByte(offset, source, "read limits flags")
	if err != nil {
		return Limits{}, err
	}
	if flags&^0b111 != 0 {
		return Limits{}, newError(KindInvalidFormat, start, "limits flags has unrecognized high bits set")
	}

	l := Limits{
		HasMax:  flags&limitsFlagHasMax != 0,
		Shared:  flags&limitsFlagShared != 0,
		Index64: flags&limitsFlagIndex64 != 0,
	}

	readBound := func() (uint64, error) {
		if l.Index64 {
			return decodeU64(offset, source, "read limits bound")
		}
		v, err := decodeU32(offset, source, "read limits bound")
		return uint64(v), err
	}

	if l.Min, err = readBound(); err != nil {
		return Limits{}, err
	}
	if l.HasMax {
		if l.Max, err = readBound(); err != nil {
			return Limits{}, err
		}
		if l.Max < l.Min {
			return Limits{}, newError(KindInvalidFormat, start, "limits maximum is less than minimum")
		}
	}
	return l, nil
}

// TableType is a table's element reference type and size limits.
type TableType struct {
	ElemType RefType
	Limits   Limits
}

func decodeTableType(offset *uint64, source ByteSource) (TableType, error) {
	elemType, err := decodeRefType(offset, source)
	if err != nil {
		return TableType{}, withContext(err, "read table element type")
	}
	limits, err := decodeLimits(offset, source)
	if err != nil {
		return TableType{}, withContext(err, "read table limits")
	}
	return TableType{ElemType: elemType, Limits: limits}, nil
}

// MemType is a memory's page-count size limits.
type MemType struct {
	Limits Limits
}

func decodeMemType(offset *uint64, source ByteSource) (MemType, error) {
	limits, err := decodeLimits(offset, source)
	if err != nil {
		return MemType{}, withContext(err, "read memory limits")
	}
	return MemType{Limits: limits}, nil
}

// GlobalType is a global's value type and mutability.
type GlobalType struct {
	ValType ValType
	Mutable bool
}

func decodeGlobalType(offset *uint64, source ByteSource) (GlobalType, error) {
	vt, err := decodeValType(offset, source)
	if err != nil {
		return GlobalType{}, withContext(err, "read global value type")
	}
	start := *offset
	mut, err := decodeByte(offset, source, "read global mutability")
	if err != nil {
		return GlobalType{}, err
	}
	if mut != 0 && mut != 1 {
		return GlobalType{}, newError(KindInvalidFormat, start, "global mutability flag must be 0 or 1")
	}
	return GlobalType{ValType: vt, Mutable: mut == 1}, nil
}
