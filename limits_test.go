package wasmiter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeMemTypeNoMax(t *testing.T) {
	data := []byte{0x00, 0x01} // flags=0 (no max), min=1
	offset := uint64(0)
	mt, err := decodeMemType(&offset, Slice(data))
	require.NoError(t, err)
	require.Equal(t, uint64(1), mt.Limits.Min)
	require.False(t, mt.Limits.HasMax)
	require.Equal(t, uint64(len(data)), offset)
}

func TestDecodeMemTypeWithMax(t *testing.T) {
	data := []byte{0x01, 0x01, 0x05} // flags=1 (has max), min=1, max=5
	offset := uint64(0)
	mt, err := decodeMemType(&offset, Slice(data))
	require.NoError(t, err)
	require.Equal(t, uint64(1), mt.Limits.Min)
	require.True(t, mt.Limits.HasMax)
	require.Equal(t, uint64(5), mt.Limits.Max)
}

func TestDecodeMemTypeMaxBelowMinIsInvalid(t *testing.T) {
	data := []byte{0x01, 0x05, 0x01} // min=5, max=1
	offset := uint64(0)
	_, err := decodeMemType(&offset, Slice(data))
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindInvalidFormat, e.Kind)
}

func TestDecodeLimitsRejectsUnrecognizedFlagBits(t *testing.T) {
	data := []byte{0x08, 0x01}
	offset := uint64(0)
	_, err := decodeLimits(&offset, Slice(data))
	require.Error(t, err)
}

func TestDecodeGlobalType(t *testing.T) {
	data := []byte{0x7f, 0x01} // i32, mutable
	offset := uint64(0)
	gt, err := decodeGlobalType(&offset, Slice(data))
	require.NoError(t, err)
	require.Equal(t, ValTypeI32, gt.ValType)
	require.True(t, gt.Mutable)
}

func TestDecodeGlobalTypeBadMutability(t *testing.T) {
	data := []byte{0x7f, 0x02}
	offset := uint64(0)
	_, err := decodeGlobalType(&offset, Slice(data))
	require.Error(t, err)
}

func TestDecodeTableType(t *testing.T) {
	data := []byte{0x70, 0x00, 0x03} // funcref, no max, min=3
	offset := uint64(0)
	tt, err := decodeTableType(&offset, Slice(data))
	require.NoError(t, err)
	require.Equal(t, RefTypeFuncref, tt.ElemType)
	require.Equal(t, uint64(3), tt.Limits.Min)
}
