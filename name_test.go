package wasmiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func TestParseNameStringLossy(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0xFF}
	offset := uint64(0)
	name, err := wasmiter.ParseName(wasmiter.Slice(data), &offset)
	require.NoError(t, err)
	require.Equal(t, "hello", name.StringLossy())
	require.Equal(t, uint64(6), offset)

	s, err := name.String()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestNameStringRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0x02, 0xFF, 0xFE}
	offset := uint64(0)
	name, err := wasmiter.ParseName(wasmiter.Slice(data), &offset)
	require.NoError(t, err)

	_, err = name.String()
	require.Error(t, err)
	var e *wasmiter.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, wasmiter.KindInvalidFormat, e.Kind)
}

func TestNameCharsLossyAndStrict(t *testing.T) {
	data := []byte{0x04, 'a', 0xFF, 'b', 'c'}
	offset := uint64(0)
	name, err := wasmiter.ParseName(wasmiter.Slice(data), &offset)
	require.NoError(t, err)

	var runes []rune
	chars := name.Chars()
	for {
		r, ok, err := chars.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		runes = append(runes, r)
	}
	require.Equal(t, []rune{'a', 0xFFFD, 'b', 'c'}, runes)

	offset = 0
	name, err = wasmiter.ParseName(wasmiter.Slice(data), &offset)
	require.NoError(t, err)
	strict := name.CharsStrict()
	_, _, err = strict.Next() // 'a'
	require.NoError(t, err)
	_, ok, err := strict.Next() // invalid byte
	require.Error(t, err)
	require.False(t, ok)
}

func TestNameCharsMultiByteRune(t *testing.T) {
	// "héllo" with é encoded as two UTF-8 bytes (0xC3 0xA9).
	word := []byte("héllo")
	data := append([]byte{byte(len(word))}, word...)
	offset := uint64(0)
	name, err := wasmiter.ParseName(wasmiter.Slice(data), &offset)
	require.NoError(t, err)

	var runes []rune
	require.NoError(t, drainChars(name.Chars(), &runes))
	require.Equal(t, []rune("héllo"), runes)
}

func drainChars(c *wasmiter.NameChars, out *[]rune) error {
	for {
		r, ok, err := c.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		*out = append(*out, r)
	}
}
