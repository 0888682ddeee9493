package wasmiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func TestDecodeRefIsNull(t *testing.T) {
	data := []byte{0xD1, 0x0B} // ref.is_null, end
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	inst, ok, err := seq.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ref.is_null", inst.Name())

	_, ok, err = seq.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = seq.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDecodeKnownFDOpcode(t *testing.T) {
	// sub-opcode 35 = i8x16.eq, encoded as a single-byte LEB128 u32.
	data := []byte{0xFD, 35, 0x0B}
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	inst, ok, err := seq.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "i8x16.eq", inst.Name())
}

func TestDecodeUnknownFDOpcodeRejected(t *testing.T) {
	// sub-opcode 154 is a reserved gap in the SIMD numbering, encoded as
	// a two-byte LEB128 u32 (154 = 0x9A 0x01).
	data := []byte{0xFD, 0x9A, 0x01, 0x0B}
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	_, ok, err := seq.Next()
	require.False(t, ok)
	require.Error(t, err)
	var e *wasmiter.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, wasmiter.KindInvalidPrefixedOpcode, e.Kind)
}

func TestDecodeUnknownFEOpcodeRejected(t *testing.T) {
	// sub-opcode 0x09 falls in the reserved gap between the notify/wait
	// family (0-2, plus fence at 3) and the numbered atomic family
	// (0x10 onward).
	data := []byte{0xFE, 0x09, 0x0B}
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	_, ok, err := seq.Next()
	require.False(t, ok)
	require.Error(t, err)
	var e *wasmiter.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, wasmiter.KindInvalidPrefixedOpcode, e.Kind)
}

func TestDecodeAtomicFence(t *testing.T) {
	data := []byte{0xFE, 0x03, 0x00, 0x0B} // atomic.fence (reserved byte 0), end
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	inst, ok, err := seq.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "atomic.fence", inst.Name())
}
