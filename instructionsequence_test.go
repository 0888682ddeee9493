package wasmiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmiterio/wasmiter"
)

func TestInstructionSequenceBalancedBlock(t *testing.T) {
	// block (result i32) i32.const 1 end end
	data := []byte{
		0x02, 0x7f, // block (result i32)
		0x41, 0x01, // i32.const 1
		0x0B, // end (closes block)
		0x0B, // end (closes function)
	}
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	var names []string
	require.NoError(t, seq.Finish(func(inst wasmiter.Instruction) error {
		names = append(names, inst.Name())
		return nil
	}))
	require.Equal(t, []string{"block", "i32.const", "end", "end"}, names)
	require.Equal(t, uint64(len(data)), seq.Offset())
}

func TestInstructionSequenceUnbalancedBlockTruncates(t *testing.T) {
	// block never closed; sequence should simply run out of bytes.
	data := []byte{
		0x02, 0x40, // block (empty blocktype)
		0x41, 0x01, // i32.const 1
	}
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	var names []string
	err := seq.Finish(func(inst wasmiter.Instruction) error {
		names = append(names, inst.Name())
		return nil
	})
	require.Error(t, err)
	require.Equal(t, []string{"block", "i32.const"}, names)
}

func TestInstructionSequenceDelegateWithoutTryIsInvalid(t *testing.T) {
	data := []byte{0x18, 0x00} // delegate 0, no enclosing try
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	_, ok, err := seq.Next()
	require.False(t, ok)
	require.Error(t, err)
	var e *wasmiter.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, wasmiter.KindInvalidFormat, e.Kind)
}

func TestInstructionSequenceTryDelegate(t *testing.T) {
	// try (empty) nop delegate 0 -- delegate closes the try, depth
	// returns to 1, and the outer sequence still needs its own end.
	data := []byte{
		0x06, 0x40, // try (empty blocktype)
		0x01,       // nop
		0x18, 0x00, // delegate 0
		0x0B, // end (closes the implicit outer sequence)
	}
	seq := wasmiter.ParseInstructionSequence(wasmiter.Slice(data), 0)

	var names []string
	require.NoError(t, seq.Finish(func(inst wasmiter.Instruction) error {
		names = append(names, inst.Name())
		return nil
	}))
	require.Equal(t, []string{"try", "nop", "delegate", "end"}, names)
}
