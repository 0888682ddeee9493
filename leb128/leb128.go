// Package leb128 decodes and encodes the variable-length integer encoding
// used throughout the WebAssembly binary format for lengths, indices,
// offsets, and constants.
//
// Decoding is offset-advancing: callers pass a *uint64 that is moved past
// the bytes consumed on success and left unspecified on failure, matching
// the convention used by the rest of this module's byte-source based
// parsers.
package leb128

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when a decoded value does not fit the target
// integer width, either because the maximum byte width was exhausted with
// the continuation bit still set, or because the unused high bits of the
// final byte are not a valid sign extension.
var ErrOverflow = errors.New("leb128: decoded value overflows target width")

// ErrUnexpectedEOF is returned when a continuation bit is set but the
// source has no more bytes to offer.
var ErrUnexpectedEOF = errors.New("leb128: unexpected end of input")

const (
	continuationBit = 0x80
	valueMask       = 0x7f
	signBit         = 0x40
)

// byteSource is the minimal read capability leb128 needs. A
// wasmiter.ByteSource satisfies this structurally.
type byteSource interface {
	ReadAt(offset uint64, buf []byte) (int, error)
}

func readWindow(src byteSource, offset uint64, maxWidth int) ([]byte, error) {
	buf := make([]byte, maxWidth)
	n, err := src.ReadAt(offset, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// DecodeUint32 decodes an unsigned 32-bit LEB128 integer starting at
// *offset, advancing *offset past the bytes consumed.
func DecodeUint32(src byteSource, offset *uint64) (uint32, error) {
	window, err := readWindow(src, *offset, 5)
	if err != nil {
		return 0, fmt.Errorf("leb128: read u32: %w", err)
	}
	v, n, err := LoadUint32(window)
	if err != nil {
		return 0, err
	}
	*offset += n
	return v, nil
}

// DecodeUint64 decodes an unsigned 64-bit LEB128 integer starting at
// *offset, advancing *offset past the bytes consumed.
func DecodeUint64(src byteSource, offset *uint64) (uint64, error) {
	window, err := readWindow(src, *offset, 10)
	if err != nil {
		return 0, fmt.Errorf("leb128: read u64: %w", err)
	}
	v, n, err := LoadUint64(window)
	if err != nil {
		return 0, err
	}
	*offset += n
	return v, nil
}

// DecodeInt32 decodes a signed 32-bit LEB128 integer starting at *offset,
// advancing *offset past the bytes consumed.
func DecodeInt32(src byteSource, offset *uint64) (int32, error) {
	window, err := readWindow(src, *offset, 5)
	if err != nil {
		return 0, fmt.Errorf("leb128: read s32: %w", err)
	}
	v, n, err := LoadInt32(window)
	if err != nil {
		return 0, err
	}
	*offset += n
	return v, nil
}

// DecodeInt64 decodes a signed 64-bit LEB128 integer starting at *offset,
// advancing *offset past the bytes consumed.
func DecodeInt64(src byteSource, offset *uint64) (int64, error) {
	window, err := readWindow(src, *offset, 10)
	if err != nil {
		return 0, fmt.Errorf("leb128: read s64: %w", err)
	}
	v, n, err := LoadInt64(window)
	if err != nil {
		return 0, err
	}
	*offset += n
	return v, nil
}

// LoadUint32 decodes an unsigned 32-bit LEB128 integer from the front of b,
// returning the value and the number of bytes consumed.
func LoadUint32(b []byte) (uint32, uint64, error) {
	const bits = 32
	const maxWidth = (bits / 7) + 1 // 5

	var value uint32
	for i := 0; i < maxWidth; i++ {
		if i >= len(b) {
			return 0, 0, ErrUnexpectedEOF
		}
		byt := b[i]
		shift := uint(i) * 7
		if i == maxWidth-1 {
			// Only 4 value bits are usable in the final byte of a u32.
			if byt&0xf0 != 0 {
				return 0, 0, ErrOverflow
			}
		}
		value |= uint32(byt&valueMask) << shift
		if byt&continuationBit == 0 {
			return value, uint64(i + 1), nil
		}
	}
	return 0, 0, ErrOverflow
}

// LoadUint64 decodes an unsigned 64-bit LEB128 integer from the front of b,
// returning the value and the number of bytes consumed.
func LoadUint64(b []byte) (uint64, uint64, error) {
	const bits = 64
	const maxWidth = (bits / 7) + 1 // 10

	var value uint64
	for i := 0; i < maxWidth; i++ {
		if i >= len(b) {
			return 0, 0, ErrUnexpectedEOF
		}
		byt := b[i]
		shift := uint(i) * 7
		if i == maxWidth-1 {
			// Only 1 value bit is usable in the final byte of a u64.
			if byt&0xfe != 0 {
				return 0, 0, ErrOverflow
			}
		}
		value |= uint64(byt&valueMask) << shift
		if byt&continuationBit == 0 {
			return value, uint64(i + 1), nil
		}
	}
	return 0, 0, ErrOverflow
}

// LoadInt32 decodes a signed 32-bit LEB128 integer from the front of b,
// returning the value and the number of bytes consumed.
func LoadInt32(b []byte) (int32, uint64, error) {
	var result int32
	var shift uint
	var i int
	for ; i < 4; i++ {
		if i >= len(b) {
			return 0, 0, ErrUnexpectedEOF
		}
		byt := b[i]
		result |= int32(byt&valueMask) << shift
		shift += 7
		if byt&continuationBit == 0 {
			if byt&signBit != 0 {
				result |= -1 << shift
			}
			return result, uint64(i + 1), nil
		}
	}
	if i >= len(b) {
		return 0, 0, ErrUnexpectedEOF
	}
	last := b[i]
	result |= int32(last&0xf) << shift
	// Bit 3 of the 5th byte is the sign bit; bits 4-6 must repeat it and
	// the continuation bit must be clear: 0b0000_0xxx or 0b0111_1xxx.
	switch last & 0xf8 {
	case 0x00, 0x78:
		return result, uint64(i + 1), nil
	default:
		return 0, 0, ErrOverflow
	}
}

// LoadInt64 decodes a signed 64-bit LEB128 integer from the front of b,
// returning the value and the number of bytes consumed.
func LoadInt64(b []byte) (int64, uint64, error) {
	var result int64
	var shift uint
	var i int
	for ; i < 9; i++ {
		if i >= len(b) {
			return 0, 0, ErrUnexpectedEOF
		}
		byt := b[i]
		result |= int64(byt&valueMask) << shift
		shift += 7
		if byt&continuationBit == 0 {
			if byt&signBit != 0 {
				result |= -1 << shift
			}
			return result, uint64(i + 1), nil
		}
	}
	if i >= len(b) {
		return 0, 0, ErrUnexpectedEOF
	}
	last := b[i]
	result |= int64(last&0x1) << shift
	switch last {
	case 0x00, 0x7f:
		return result, uint64(i + 1), nil
	default:
		return 0, 0, ErrOverflow
	}
}

// DecodeInt33AsInt64 decodes a signed 33-bit LEB128 integer (the encoding
// used for WebAssembly's block type immediate) as an int64, starting at
// *offset and advancing it past the bytes consumed.
func DecodeInt33AsInt64(src byteSource, offset *uint64) (int64, error) {
	window, err := readWindow(src, *offset, 5)
	if err != nil {
		return 0, fmt.Errorf("leb128: read s33: %w", err)
	}
	v, n, err := LoadInt33AsInt64(window)
	if err != nil {
		return 0, err
	}
	*offset += n
	return v, nil
}

// LoadInt33AsInt64 decodes a signed 33-bit LEB128 integer from the front
// of b as an int64, returning the value and the number of bytes consumed.
func LoadInt33AsInt64(b []byte) (int64, uint64, error) {
	const maxWidth = 5 // ceil(33/7)

	var result int64
	var shift uint
	var i int
	for ; i < maxWidth-1; i++ {
		if i >= len(b) {
			return 0, 0, ErrUnexpectedEOF
		}
		byt := b[i]
		result |= int64(byt&valueMask) << shift
		shift += 7
		if byt&continuationBit == 0 {
			if byt&signBit != 0 {
				result |= -1 << shift
			}
			return result, uint64(i + 1), nil
		}
	}
	if i >= len(b) {
		return 0, 0, ErrUnexpectedEOF
	}
	last := b[i]
	if last&continuationBit != 0 {
		return 0, 0, ErrOverflow
	}
	result |= int64(last&0x1f) << shift
	switch last & 0x70 {
	case 0x00:
		return result, uint64(i + 1), nil
	case 0x70:
		result |= -1 << (shift + 5)
		return result, uint64(i + 1), nil
	default:
		return 0, 0, ErrOverflow
	}
}

// EncodeUint32 encodes v in unsigned LEB128 format.
func EncodeUint32(v uint32) []byte {
	return EncodeUint64(uint64(v))
}

// EncodeUint64 encodes v in unsigned LEB128 format.
func EncodeUint64(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & valueMask)
		v >>= 7
		if v != 0 {
			out = append(out, b|continuationBit)
		} else {
			out = append(out, b)
			return out
		}
	}
}

// EncodeInt32 encodes v in signed LEB128 format.
func EncodeInt32(v int32) []byte {
	return EncodeInt64(int64(v))
}

// EncodeInt64 encodes v in signed LEB128 format.
func EncodeInt64(v int64) []byte {
	var out []byte
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			more = false
		} else {
			b |= continuationBit
		}
		out = append(out, b)
	}
	return out
}
