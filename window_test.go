package wasmiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func TestWindowLengthAtClampsToInnerSource(t *testing.T) {
	inner := wasmiter.Slice([]byte{1, 2, 3}) // only 3 bytes actually exist
	w := wasmiter.NewWindow(inner, 0, 10)    // window claims 10

	require.Equal(t, uint64(3), w.LengthAt(0))
	require.Equal(t, uint64(1), w.LengthAt(2))
	require.Equal(t, uint64(0), w.LengthAt(3))
	require.Equal(t, uint64(0), w.LengthAt(9))
}

func TestWindowLengthAtClampsToOwnBound(t *testing.T) {
	inner := wasmiter.Slice([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	w := wasmiter.NewWindow(inner, 2, 3) // window covers [2,5)

	require.Equal(t, uint64(3), w.LengthAt(2))
	require.Equal(t, uint64(1), w.LengthAt(4))
	require.Equal(t, uint64(0), w.LengthAt(5))
}
