package wasmiter

import "github.com/wasmiterio/wasmiter/leb128"

// decodeU32 decodes a u32 LEB128 at *offset, translating a leb128 error
// into this package's *Error with KindInvalidFormat and the supplied
// context message.
func decodeU32(offset *uint64, source ByteSource, context string) (uint32, error) {
	start := *offset
	v, err := leb128.DecodeUint32(source, offset)
	if err != nil {
		return 0, wrapError(KindInvalidFormat, start, err, context)
	}
	return v, nil
}

// decodeU64 decodes a u64 LEB128 at *offset.
func decodeU64(offset *uint64, source ByteSource, context string) (uint64, error) {
	start := *offset
	v, err := leb128.DecodeUint64(source, offset)
	if err != nil {
		return 0, wrapError(KindInvalidFormat, start, err, context)
	}
	return v, nil
}

// decodeS32 decodes an s32 LEB128 at *offset.
func decodeS32(offset *uint64, source ByteSource, context string) (int32, error) {
	start := *offset
	v, err := leb128.DecodeInt32(source, offset)
	if err != nil {
		return 0, wrapError(KindInvalidFormat, start, err, context)
	}
	return v, nil
}

// decodeS64 decodes an s64 LEB128 at *offset.
func decodeS64(offset *uint64, source ByteSource, context string) (int64, error) {
	start := *offset
	v, err := leb128.DecodeInt64(source, offset)
	if err != nil {
		return 0, wrapError(KindInvalidFormat, start, err, context)
	}
	return v, nil
}

func decodeByte(offset *uint64, source ByteSource, context string) (byte, error) {
	var b [1]byte
	if err := ReadExact(source, offset, b[:]); err != nil {
		return 0, withContext(err, context)
	}
	return b[0], nil
}
