package wat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
	"github.com/wasmiterio/wasmiter/wat"
)

// addFiveModule builds a module with a single function:
//
//	(func (param i32) (result i32) local.get 0 i32.const 5 i32.add)
func addFiveModule() []byte {
	data := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	typeBody := []byte{0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f}
	data = append(data, 0x01, byte(len(typeBody)))
	data = append(data, typeBody...)

	funcBody := []byte{0x01, 0x00}
	data = append(data, 0x03, byte(len(funcBody)))
	data = append(data, funcBody...)

	body := []byte{
		0x00,
		0x20, 0x00,
		0x41, 0x05,
		0x6A,
		0x0B,
	}
	entry := append([]byte{byte(len(body))}, body...)
	codeBody := append([]byte{0x01}, entry...)
	data = append(data, 0x0A, byte(len(codeBody)))
	data = append(data, codeBody...)

	return data
}

func TestWriteRendersFunctionBody(t *testing.T) {
	data := addFiveModule()
	m, err := wasmiter.ParseModule(wasmiter.Slice(data), uint64(len(data)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wat.Write(&buf, m))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "(module\n"))
	require.Contains(t, out, "(type (;0;) (func (param i32) (result i32)))")
	require.Contains(t, out, "(func (;0;) (type 0))")
	require.Contains(t, out, "local.get 0")
	require.Contains(t, out, "i32.const 5")
	require.Contains(t, out, "i32.add")
	require.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), ")"))
}
