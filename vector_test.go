package wasmiter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func TestVectorAdvance(t *testing.T) {
	data := []byte{0x03, 0x0A, 0x0B, 0x0C} // 3 elements
	offset := uint64(0)
	v, err := wasmiter.ParseVector(wasmiter.Slice(data), &offset)
	require.NoError(t, err)
	require.Equal(t, uint32(3), v.Len())

	var got []byte
	require.NoError(t, v.Finish(func(offset *uint64, source wasmiter.ByteSource) error {
		buf := make([]byte, 1)
		if _, err := source.ReadAt(*offset, buf); err != nil {
			return err
		}
		got = append(got, buf[0])
		*offset++
		return nil
	}))
	require.Equal(t, []byte{0x0A, 0x0B, 0x0C}, got)
	require.Equal(t, uint32(0), v.Remaining())
}

func TestVectorLatchesOnError(t *testing.T) {
	data := []byte{0x02, 0x0A}
	offset := uint64(0)
	v, err := wasmiter.ParseVector(wasmiter.Slice(data), &offset)
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	err = v.Finish(func(offset *uint64, source wasmiter.ByteSource) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)

	ok, err := v.Advance(func(offset *uint64, source wasmiter.ByteSource) error {
		t.Fatal("must not be called after latching")
		return nil
	})
	require.NoError(t, err)
	require.False(t, ok)
}
