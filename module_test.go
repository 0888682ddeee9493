package wasmiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func preamble() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
}

func TestParseModulePreambleOnly(t *testing.T) {
	data := preamble()
	m, err := wasmiter.ParseModule(wasmiter.Slice(data), uint64(len(data)))
	require.NoError(t, err)

	sections := m.Sections()
	_, ok, err := sections.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseModuleBadMagic(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, err := wasmiter.ParseModule(wasmiter.Slice(data), uint64(len(data)))
	require.Error(t, err)
	var e *wasmiter.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, wasmiter.KindBadWasmMagic, e.Kind)
}

func TestParseModuleUnsupportedVersion(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}
	_, err := wasmiter.ParseModule(wasmiter.Slice(data), uint64(len(data)))
	require.Error(t, err)
	var e *wasmiter.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, wasmiter.KindUnsupportedWasmVersion, e.Kind)
}

// addFiveModule builds a module with a single function:
//
//	(func (param i32) (result i32) local.get 0 i32.const 5 i32.add)
func addFiveModule(t *testing.T) []byte {
	t.Helper()
	data := preamble()

	// type section: [functype (i32) -> (i32)]
	typeSec := []byte{
		0x01, // id
	}
	typeBody := []byte{
		0x01,                   // 1 type
		0x60, 0x01, 0x7f, 0x01, 0x7f, // (func (param i32) (result i32))
	}
	typeSec = append(typeSec, byte(len(typeBody)))
	typeSec = append(typeSec, typeBody...)
	data = append(data, typeSec...)

	// function section: [0]
	funcSec := []byte{0x03}
	funcBody := []byte{0x01, 0x00}
	funcSec = append(funcSec, byte(len(funcBody)))
	funcSec = append(funcSec, funcBody...)
	data = append(data, funcSec...)

	// code section
	codeSec := []byte{0x0A}
	body := []byte{
		0x00,       // 0 locals groups
		0x20, 0x00, // local.get 0
		0x41, 0x05, // i32.const 5
		0x6A, // i32.add
		0x0B, // end
	}
	entry := append([]byte{byte(len(body))}, body...)
	codeBody := append([]byte{0x01}, entry...) // 1 code entry
	codeSec = append(codeSec, byte(len(codeBody)))
	codeSec = append(codeSec, codeBody...)
	data = append(data, codeSec...)

	return data
}

func TestAddFiveModule(t *testing.T) {
	data := addFiveModule(t)
	m, err := wasmiter.ParseModule(wasmiter.Slice(data), uint64(len(data)))
	require.NoError(t, err)

	sections := m.Sections()

	sec, ok, err := sections.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.SectionIDType, sec.ID)

	typeSec, err := wasmiter.ParseTypeSection(sec.Contents)
	require.NoError(t, err)
	ft, ok, err := typeSec.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []wasmiter.ValType{wasmiter.ValTypeI32}, ft.Params)
	require.Equal(t, []wasmiter.ValType{wasmiter.ValTypeI32}, ft.Results)
	_, ok, err = typeSec.Advance()
	require.NoError(t, err)
	require.False(t, ok)

	sec, ok, err = sections.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.SectionIDFunction, sec.ID)

	funcSec, err := wasmiter.ParseFunctionSection(sec.Contents)
	require.NoError(t, err)
	typeIdx, ok, err := funcSec.Advance()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.TypeIndex(0), typeIdx)

	sec, ok, err = sections.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wasmiter.SectionIDCode, sec.ID)

	codeSec, err := wasmiter.ParseCodeSection(sec.Contents)
	require.NoError(t, err)
	code, ok, err := codeSec.Advance()
	require.NoError(t, err)
	require.True(t, ok)

	locals, seq, err := code.Parse()
	require.NoError(t, err)
	require.NoError(t, locals.Finish(func(wasmiter.ValType) error {
		t.Fatal("expected no locals")
		return nil
	}))

	var mnemonics []string
	require.NoError(t, seq.Finish(func(inst wasmiter.Instruction) error {
		mnemonics = append(mnemonics, inst.Name())
		return nil
	}))
	require.Equal(t, []string{"local.get", "i32.const", "i32.add", "end"}, mnemonics)
	require.Equal(t, code.Body.End(), seq.Offset())
	require.NoError(t, code.Finish())

	_, ok, err = codeSec.Advance()
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = sections.Next()
	require.NoError(t, err)
	require.False(t, ok)
}
