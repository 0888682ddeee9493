// Package wat renders a parsed WebAssembly module back out as
// WebAssembly text format, for diagnostics and for the wasmiter-dis
// command. It only ever reads what it renders; it never materializes
// or validates the module beyond what wasmiter itself already checks.
package wat

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/chewxy/math32"

	"github.com/wasmiterio/wasmiter"
)

// Write renders m to w as an s-expression module, walking its sections
// in the order they were encountered.
func Write(w io.Writer, m *wasmiter.Module) error {
	bw := bufio.NewWriter(w)
	r := &renderer{w: bw}
	if err := r.module(m); err != nil {
		return err
	}
	return bw.Flush()
}

type renderer struct {
	w       *bufio.Writer
	indent  int
	typeIdx uint32
	funcIdx uint32
}

func (r *renderer) line(format string, args ...any) {
	for i := 0; i < r.indent; i++ {
		r.w.WriteString("  ")
	}
	fmt.Fprintf(r.w, format, args...)
	r.w.WriteByte('\n')
}

func (r *renderer) module(m *wasmiter.Module) error {
	r.line("(module")
	r.indent++
	defer func() { r.indent--; r.line(")") }()

	sections := m.Sections()
	for {
		sec, ok, err := sections.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := r.section(sec); err != nil {
			return err
		}
	}
}

func (r *renderer) section(sec wasmiter.Section) error {
	switch sec.ID {
	case wasmiter.SectionIDType:
		return r.typeSection(sec.Contents)
	case wasmiter.SectionIDImport:
		return r.importSection(sec.Contents)
	case wasmiter.SectionIDFunction:
		return r.functionSection(sec.Contents)
	case wasmiter.SectionIDTable:
		return r.tableSection(sec.Contents)
	case wasmiter.SectionIDMemory:
		return r.memorySection(sec.Contents)
	case wasmiter.SectionIDGlobal:
		return r.globalSection(sec.Contents)
	case wasmiter.SectionIDExport:
		return r.exportSection(sec.Contents)
	case wasmiter.SectionIDStart:
		return r.startSection(sec.Contents)
	case wasmiter.SectionIDElement:
		return r.elementSection(sec.Contents)
	case wasmiter.SectionIDCode:
		return r.codeSection(sec.Contents)
	case wasmiter.SectionIDData:
		return r.dataSection(sec.Contents)
	case wasmiter.SectionIDCustom:
		return r.customSection(sec.Contents)
	default:
		r.line(";; unrecognized section id %d (%d bytes)", sec.ID, sec.Contents.Length())
		return nil
	}
}

func (r *renderer) typeSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseTypeSection(contents)
	if err != nil {
		return err
	}
	for {
		ft, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.line("(type (;%d;) (func%s%s))", r.typeIdx, paramsText(ft.Params), resultsText(ft.Results))
		r.typeIdx++
	}
}

func paramsText(params []wasmiter.ValType) string {
	if len(params) == 0 {
		return ""
	}
	out := " (param"
	for _, p := range params {
		out += " " + wasmiter.ValTypeName(p)
	}
	return out + ")"
}

func resultsText(results []wasmiter.ValType) string {
	if len(results) == 0 {
		return ""
	}
	out := " (result"
	for _, rt := range results {
		out += " " + wasmiter.ValTypeName(rt)
	}
	return out + ")"
}

func (r *renderer) importSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseImportSection(contents)
	if err != nil {
		return err
	}
	for {
		imp, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		mod, field := imp.Module.StringLossy(), imp.Field.StringLossy()
		switch imp.Desc.Kind {
		case wasmiter.ExternalKindFunc:
			r.line("(import %q %q (func (;%d;) (type %d)))", mod, field, r.funcIdx, imp.Desc.TypeIndex)
			r.funcIdx++
		case wasmiter.ExternalKindTable:
			r.line("(import %q %q (table %s))", mod, field, limitsText(imp.Desc.TableType.Limits))
		case wasmiter.ExternalKindMemory:
			r.line("(import %q %q (memory %s))", mod, field, limitsText(imp.Desc.MemType.Limits))
		case wasmiter.ExternalKindGlobal:
			r.line("(import %q %q (global %s))", mod, field, globalTypeText(imp.Desc.GlobalType))
		case wasmiter.ExternalKindTag:
			r.line("(import %q %q (tag (type %d)))", mod, field, imp.Desc.TypeIndex)
		}
	}
}

func limitsText(l wasmiter.Limits) string {
	if l.HasMax {
		return fmt.Sprintf("%d %d", l.Min, l.Max)
	}
	return fmt.Sprintf("%d", l.Min)
}

func globalTypeText(gt wasmiter.GlobalType) string {
	if gt.Mutable {
		return fmt.Sprintf("(mut %s)", wasmiter.ValTypeName(gt.ValType))
	}
	return wasmiter.ValTypeName(gt.ValType)
}

func (r *renderer) functionSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseFunctionSection(contents)
	if err != nil {
		return err
	}
	for {
		typeIdx, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.line("(func (;%d;) (type %d))", r.funcIdx, typeIdx)
		r.funcIdx++
	}
}

func (r *renderer) tableSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseTableSection(contents)
	if err != nil {
		return err
	}
	idx := 0
	for {
		tt, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.line("(table (;%d;) %s %s)", idx, limitsText(tt.Limits), wasmiter.RefTypeName(tt.ElemType))
		idx++
	}
}

func (r *renderer) memorySection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseMemorySection(contents)
	if err != nil {
		return err
	}
	idx := 0
	for {
		mt, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.line("(memory (;%d;) %s)", idx, limitsText(mt.Limits))
		idx++
	}
}

func (r *renderer) globalSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseGlobalSection(contents)
	if err != nil {
		return err
	}
	idx := 0
	for {
		g, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		expr, err := instructionsText(g.Init.Instructions())
		if err != nil {
			return err
		}
		r.line("(global (;%d;) %s (%s))", idx, globalTypeText(g.Type), expr)
		idx++
	}
}

func (r *renderer) exportSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseExportSection(contents)
	if err != nil {
		return err
	}
	for {
		exp, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		r.line("(export %q (%s %d))", exp.Name.StringLossy(), exp.Kind.String(), exp.Index)
	}
}

func (r *renderer) startSection(contents wasmiter.Window) error {
	start, err := wasmiter.ParseStartSection(contents)
	if err != nil {
		return err
	}
	r.line("(start %d)", start.FuncIndex)
	return nil
}

func (r *renderer) elementSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseElementSection(contents)
	if err != nil {
		return err
	}
	idx := 0
	for {
		el, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		mode := "active"
		switch el.Mode {
		case wasmiter.ElementModePassive:
			mode = "passive"
		case wasmiter.ElementModeDeclarative:
			mode = "declarative"
		}
		r.line(";; elem %d (%s, table %d, %s)", idx, mode, el.TableIndex, wasmiter.RefTypeName(el.RefType))
		idx++
	}
}

func (r *renderer) codeSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseCodeSection(contents)
	if err != nil {
		return err
	}
	for {
		code, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		locals, seq, err := code.Parse()
		if err != nil {
			return err
		}
		var localTypes []string
		if err := locals.Finish(func(t wasmiter.ValType) error {
			localTypes = append(localTypes, wasmiter.ValTypeName(t))
			return nil
		}); err != nil {
			return err
		}
		r.line(";; code body, %d locals", len(localTypes))
		r.indent++
		if err := seq.Finish(func(inst wasmiter.Instruction) error {
			r.line("%s", instructionText(inst))
			return nil
		}); err != nil {
			r.indent--
			return err
		}
		r.indent--
	}
}

func (r *renderer) dataSection(contents wasmiter.Window) error {
	sec, err := wasmiter.ParseDataSection(contents)
	if err != nil {
		return err
	}
	idx := 0
	for {
		d, ok, err := sec.Advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		mode := "passive"
		if d.Mode == wasmiter.DataModeActive {
			mode = "active"
		}
		r.line(";; data %d (%s, %d bytes)", idx, mode, d.Bytes.Length())
		idx++
	}
}

func (r *renderer) customSection(contents wasmiter.Window) error {
	cs, err := wasmiter.ParseCustomSection(contents)
	if err != nil {
		return err
	}
	r.line(";; custom section %q (%d bytes)", cs.Name.StringLossy(), cs.Contents.Length())
	return nil
}

func instructionsText(seq wasmiter.InstructionSequence) (string, error) {
	var out string
	if err := seq.Finish(func(inst wasmiter.Instruction) error {
		if out != "" {
			out += " "
		}
		out += instructionText(inst)
		return nil
	}); err != nil {
		return "", err
	}
	return out, nil
}

func instructionText(inst wasmiter.Instruction) string {
	name := inst.Name()
	switch {
	case inst.Opcode == wasmiter.OpI32Const:
		return fmt.Sprintf("%s %d", name, inst.I32)
	case inst.Opcode == wasmiter.OpI64Const:
		return fmt.Sprintf("%s %d", name, inst.I64)
	case inst.Opcode == wasmiter.OpF32Const:
		return fmt.Sprintf("%s %s", name, formatF32(inst.F32()))
	case inst.Opcode == wasmiter.OpF64Const:
		return fmt.Sprintf("%s %s", name, formatF64(inst.F64()))
	case inst.Opcode == wasmiter.OpBr || inst.Opcode == wasmiter.OpBrIf:
		return fmt.Sprintf("%s %d", name, inst.Index)
	case inst.Opcode == wasmiter.OpCall || inst.Opcode == wasmiter.OpLocalGet ||
		inst.Opcode == wasmiter.OpLocalSet || inst.Opcode == wasmiter.OpLocalTee ||
		inst.Opcode == wasmiter.OpGlobalGet || inst.Opcode == wasmiter.OpGlobalSet:
		return fmt.Sprintf("%s %d", name, inst.Index)
	default:
		return name
	}
}

// formatF32 uses math32's float32-native NaN/Inf checks so a constant
// never has to be widened to float64 just to be classified.
func formatF32(v float32) string {
	switch {
	case math32.IsNaN(v):
		return "nan"
	case math32.IsInf(v, 1):
		return "inf"
	case math32.IsInf(v, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}

// formatF64 falls back to the standard library's float64 classification;
// math32 only covers float32, so there's no pack dependency for this width.
func formatF64(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}
