package wasmiter

// ExternalKind tags which namespace an import or export entry refers
// to: function, table, memory, global, or tag.
type ExternalKind byte

const (
	ExternalKindFunc   ExternalKind = 0x00
	ExternalKindTable  ExternalKind = 0x01
	ExternalKindMemory ExternalKind = 0x02
	ExternalKindGlobal ExternalKind = 0x03
	ExternalKindTag    ExternalKind = 0x04
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalKindFunc:
		return "func"
	case ExternalKindTable:
		return "table"
	case ExternalKindMemory:
		return "memory"
	case ExternalKindGlobal:
		return "global"
	case ExternalKindTag:
		return "tag"
	default:
		return "unknown"
	}
}

func decodeImportExternalKind(offset *uint64, source ByteSource) (ExternalKind, error) {
	b, err := decodeByte(offset, source, "read import kind")
	if err != nil {
		return 0, err
	}
	if b > byte(ExternalKindTag) {
		return 0, newError(KindBadImportKind, *offset-1, "unrecognized import kind")
	}
	return ExternalKind(b), nil
}

func decodeExportExternalKind(offset *uint64, source ByteSource) (ExternalKind, error) {
	b, err := decodeByte(offset, source, "read export kind")
	if err != nil {
		return 0, err
	}
	if b > byte(ExternalKindTag) {
		return 0, newError(KindBadExportKind, *offset-1, "unrecognized export kind")
	}
	return ExternalKind(b), nil
}
