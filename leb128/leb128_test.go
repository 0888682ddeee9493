package leb128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// byteSlice is a trivial ByteSource over a fixed slice, used only by these
// tests to exercise the offset-advancing Decode* entry points.
type byteSlice []byte

func (b byteSlice) ReadAt(offset uint64, buf []byte) (int, error) {
	if offset >= uint64(len(b)) {
		return 0, nil
	}
	n := copy(buf, b[offset:])
	return n, nil
}

func TestEncodeDecodeInt32(t *testing.T) {
	for _, c := range []struct {
		input    int32
		expected []byte
	}{
		{input: -165675008, expected: []byte{0x80, 0x80, 0x80, 0xb1, 0x7f}},
		{input: -624485, expected: []byte{0x9b, 0xf1, 0x59}},
		{input: -16256, expected: []byte{0x80, 0x81, 0x7f}},
		{input: -4, expected: []byte{0x7c}},
		{input: -1, expected: []byte{0x7f}},
		{input: 0, expected: []byte{0x00}},
		{input: 1, expected: []byte{0x01}},
		{input: 4, expected: []byte{0x04}},
		{input: 16256, expected: []byte{0x80, 0xff, 0x0}},
		{input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{input: 165675008, expected: []byte{0x80, 0x80, 0x80, 0xcf, 0x0}},
		{input: math.MaxInt32, expected: []byte{0xff, 0xff, 0xff, 0xff, 0x7}},
		{input: math.MinInt32, expected: []byte{0x80, 0x80, 0x80, 0x80, 0x78}},
	} {
		require.Equal(t, c.expected, EncodeInt32(c.input))
		decoded, n, err := LoadInt32(c.expected)
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestEncodeDecodeInt64(t *testing.T) {
	for _, c := range []struct {
		input    int64
		expected []byte
	}{
		{input: -math.MaxInt32, expected: []byte{0x81, 0x80, 0x80, 0x80, 0x78}},
		{input: 0, expected: []byte{0x00}},
		{input: 1, expected: []byte{0x01}},
		{input: math.MaxInt64, expected: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x0}},
		{input: math.MinInt64, expected: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}},
	} {
		require.Equal(t, c.expected, EncodeInt64(c.input))
		decoded, n, err := LoadInt64(c.expected)
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestEncodeDecodeUint32(t *testing.T) {
	for _, c := range []struct {
		input    uint32
		expected []byte
	}{
		{input: 0, expected: []byte{0x00}},
		{input: 127, expected: []byte{0x7f}},
		{input: 128, expected: []byte{0x80, 0x01}},
		{input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{input: math.MaxUint32, expected: []byte{0xff, 0xff, 0xff, 0xff, 0xf}},
	} {
		require.Equal(t, c.expected, EncodeUint32(c.input))
		decoded, n, err := LoadUint32(c.expected)
		require.NoError(t, err)
		require.Equal(t, c.input, decoded)
		require.Equal(t, uint64(len(c.expected)), n)
	}
}

func TestDecodeUint32Errors(t *testing.T) {
	for _, c := range []struct {
		name  string
		bytes []byte
	}{
		{"continuation bit set at max width", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00}},
		{"nonzero high bits in final byte", []byte{0xff, 0xff, 0xff, 0xff, 0x10}},
	} {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := LoadUint32(c.bytes)
			require.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestDecodeUint32UnexpectedEOF(t *testing.T) {
	_, _, err := LoadUint32([]byte{0x80})
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestCanonicalTrailingZeros(t *testing.T) {
	// Non-minimal encodings of 0 are accepted so long as the byte count
	// does not exceed the maximum width, since linker output relies on it.
	v, n, err := LoadUint32([]byte{0x80, 0x80, 0x80, 0x80, 0x00})
	require.NoError(t, err)
	require.Equal(t, uint32(0), v)
	require.Equal(t, uint64(5), n)
}

func TestDecodeInt32SpecEdgeCases(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int32
	}{
		{[]byte{0x7f}, -1},
		{[]byte{0x6f}, -17},
		{[]byte{0x80, 0x7f}, -128},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x07}, math.MaxInt32},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x78}, math.MinInt32},
	} {
		got, _, err := LoadInt32(c.bytes)
		require.NoError(t, err)
		require.Equal(t, c.exp, got)
	}
}

func TestDecodeInt33AsInt64(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x04}, 4},
		{[]byte{0x40}, -64},
		{[]byte{0x7f}, -1},
		{[]byte{0xff, 0x00}, 127},
		{[]byte{0x81, 0x01}, 129},
		{[]byte{0x81, 0x7f}, -127},
	} {
		got, n, err := LoadInt33AsInt64(c.bytes)
		require.NoError(t, err)
		require.Equal(t, c.exp, got)
		require.Equal(t, uint64(len(c.bytes)), n)
	}
}

func TestDecodeOffsetAdvancing(t *testing.T) {
	src := byteSlice{0x80, 0x01, 0xff}
	offset := uint64(0)
	v, err := DecodeUint32(src, &offset)
	require.NoError(t, err)
	require.Equal(t, uint32(128), v)
	require.Equal(t, uint64(2), offset)
}
