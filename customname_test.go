package wasmiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func TestNameSubsectionsAndNameMap(t *testing.T) {
	moduleNameBody := []byte{0x03, 'f', 'o', 'o'} // name "foo"
	funcMapBody := []byte{
		0x02,           // 2 entries
		0x00, 0x01, 'a', // (0, "a")
		0x01, 0x01, 'b', // (1, "b")
	}

	data := []byte{0x00} // subsection id 0 (module)
	data = append(data, byte(len(moduleNameBody)))
	data = append(data, moduleNameBody...)
	data = append(data, 0x01) // subsection id 1 (function)
	data = append(data, byte(len(funcMapBody)))
	data = append(data, funcMapBody...)

	window := wasmiter.NewWindow(wasmiter.Slice(data), 0, uint64(len(data)))
	subs := wasmiter.ParseNameSubsections(window)

	sub, ok, err := subs.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.NameSubsectionModule, sub.ID)
	nameOffset := sub.Contents.Base()
	moduleName, err := wasmiter.ParseName(sub.Contents, &nameOffset)
	require.NoError(t, err)
	require.Equal(t, "foo", moduleName.StringLossy())

	sub, ok, err = subs.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.NameSubsectionFunction, sub.ID)

	funcNames, err := wasmiter.ParseNameMap(sub.Contents)
	require.NoError(t, err)

	idx, name, ok, err := funcNames.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.Index(0), idx)
	require.Equal(t, "a", name.StringLossy())

	idx, name, ok, err = funcNames.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.Index(1), idx)
	require.Equal(t, "b", name.StringLossy())

	_, _, ok, err = funcNames.Advance()
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = subs.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIndirectNameMap(t *testing.T) {
	// two functions; function 0 has one local named "x", function 1 has
	// none.
	data := []byte{
		0x02,           // 2 entries
		0x00,           // owning index 0
		0x01,           // nested map: 1 entry
		0x00, 0x01, 'x', // (0, "x")
		0x01, // owning index 1
		0x00, // nested map: 0 entries
	}
	window := wasmiter.NewWindow(wasmiter.Slice(data), 0, uint64(len(data)))
	m, err := wasmiter.ParseIndirectNameMap(window)
	require.NoError(t, err)

	idx, nested, ok, err := m.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.Index(0), idx)

	localIdx, localName, ok, err := nested.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.Index(0), localIdx)
	require.Equal(t, "x", localName.StringLossy())
	_, _, ok, err = nested.Advance()
	require.NoError(t, err)
	require.False(t, ok)

	idx, nested, ok, err = m.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.Index(1), idx)
	_, _, ok, err = nested.Advance()
	require.NoError(t, err)
	require.False(t, ok)

	_, _, ok, err = m.Advance()
	require.NoError(t, err)
	require.False(t, ok)
}
