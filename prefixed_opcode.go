package wasmiter

// PrefixProxy identifies which of the three multi-byte opcode spaces a
// PrefixedOpcode's sub-opcode is drawn from.
type PrefixProxy byte

const (
	// PrefixFC covers saturating truncation (sign-extension's sibling
	// proposal) and bulk-memory/table operations.
	PrefixFC PrefixProxy = 0xFC
	// PrefixFD covers the fixed-width SIMD (v128) proposal.
	PrefixFD PrefixProxy = 0xFD
	// PrefixFE covers the shared-memory atomics (threads) proposal.
	PrefixFE PrefixProxy = 0xFE
)

// PrefixedOpcode is a secondary opcode introduced by a 0xFC, 0xFD, or
// 0xFE primary byte and a following u32 LEB128 sub-opcode.
type PrefixedOpcode struct {
	Proxy PrefixProxy
	Sub   uint32
}

// 0xFC sub-opcodes: saturating truncation (0-7) and bulk memory (8-17).
const (
	SubI32TruncSatF32S Opcode = 0
	SubI32TruncSatF32U Opcode = 1
	SubI32TruncSatF64S Opcode = 2
	SubI32TruncSatF64U Opcode = 3
	SubI64TruncSatF32S Opcode = 4
	SubI64TruncSatF32U Opcode = 5
	SubI64TruncSatF64S Opcode = 6
	SubI64TruncSatF64U Opcode = 7

	SubMemoryInit Opcode = 8
	SubDataDrop   Opcode = 9
	SubMemoryCopy Opcode = 10
	SubMemoryFill Opcode = 11
	SubTableInit  Opcode = 12
	SubElemDrop   Opcode = 13
	SubTableCopy  Opcode = 14
	SubTableGrow  Opcode = 15
	SubTableSize  Opcode = 16
	SubTableFill  Opcode = 17
)

var fcSubNames = map[uint32]string{
	0: "i32.trunc_sat_f32_s", 1: "i32.trunc_sat_f32_u", 2: "i32.trunc_sat_f64_s", 3: "i32.trunc_sat_f64_u",
	4: "i64.trunc_sat_f32_s", 5: "i64.trunc_sat_f32_u", 6: "i64.trunc_sat_f64_s", 7: "i64.trunc_sat_f64_u",
	8: "memory.init", 9: "data.drop", 10: "memory.copy", 11: "memory.fill",
	12: "table.init", 13: "elem.drop", 14: "table.copy", 15: "table.grow", 16: "table.size", 17: "table.fill",
}

// fdSubNames enumerates every 0xFD (fixed-width SIMD) sub-opcode this
// module recognizes, numbered per the finalized SIMD proposal. The gaps
// (e.g. 154, 162, 165-166) are real: those values were reserved for
// opcodes the proposal dropped before finalizing and were never
// assigned a meaning.
var fdSubNames = map[uint32]string{
	0: "v128.load", 1: "v128.load8x8_s", 2: "v128.load8x8_u", 3: "v128.load16x4_s", 4: "v128.load16x4_u",
	5: "v128.load32x2_s", 6: "v128.load32x2_u", 7: "v128.load8_splat", 8: "v128.load16_splat",
	9: "v128.load32_splat", 10: "v128.load64_splat", 11: "v128.store",

	12: "v128.const", 13: "i8x16.shuffle",

	14: "i8x16.swizzle", 15: "i8x16.splat", 16: "i16x8.splat", 17: "i32x4.splat", 18: "i64x2.splat",
	19: "f32x4.splat", 20: "f64x2.splat",

	21: "i8x16.extract_lane_s", 22: "i8x16.extract_lane_u", 23: "i8x16.replace_lane",
	24: "i16x8.extract_lane_s", 25: "i16x8.extract_lane_u", 26: "i16x8.replace_lane",
	27: "i32x4.extract_lane", 28: "i32x4.replace_lane", 29: "i64x2.extract_lane", 30: "i64x2.replace_lane",
	31: "f32x4.extract_lane", 32: "f32x4.replace_lane", 33: "f64x2.extract_lane", 34: "f64x2.replace_lane",

	35: "i8x16.eq", 36: "i8x16.ne", 37: "i8x16.lt_s", 38: "i8x16.lt_u", 39: "i8x16.gt_s", 40: "i8x16.gt_u",
	41: "i8x16.le_s", 42: "i8x16.le_u", 43: "i8x16.ge_s", 44: "i8x16.ge_u",

	45: "i16x8.eq", 46: "i16x8.ne", 47: "i16x8.lt_s", 48: "i16x8.lt_u", 49: "i16x8.gt_s", 50: "i16x8.gt_u",
	51: "i16x8.le_s", 52: "i16x8.le_u", 53: "i16x8.ge_s", 54: "i16x8.ge_u",

	55: "i32x4.eq", 56: "i32x4.ne", 57: "i32x4.lt_s", 58: "i32x4.lt_u", 59: "i32x4.gt_s", 60: "i32x4.gt_u",
	61: "i32x4.le_s", 62: "i32x4.le_u", 63: "i32x4.ge_s", 64: "i32x4.ge_u",

	65: "f32x4.eq", 66: "f32x4.ne", 67: "f32x4.lt", 68: "f32x4.gt", 69: "f32x4.le", 70: "f32x4.ge",
	71: "f64x2.eq", 72: "f64x2.ne", 73: "f64x2.lt", 74: "f64x2.gt", 75: "f64x2.le", 76: "f64x2.ge",

	77: "v128.not", 78: "v128.and", 79: "v128.andnot", 80: "v128.or", 81: "v128.xor", 82: "v128.bitselect", 83: "v128.any_true",

	84: "v128.load8_lane", 85: "v128.load16_lane", 86: "v128.load32_lane", 87: "v128.load64_lane",
	88: "v128.store8_lane", 89: "v128.store16_lane", 90: "v128.store32_lane", 91: "v128.store64_lane",
	92: "v128.load32_zero", 93: "v128.load64_zero",

	94: "f32x4.demote_f64x2_zero", 95: "f64x2.promote_low_f32x4",

	96: "i8x16.abs", 97: "i8x16.neg", 98: "i8x16.popcnt", 99: "i8x16.all_true", 100: "i8x16.bitmask",
	101: "i8x16.narrow_i16x8_s", 102: "i8x16.narrow_i16x8_u",

	103: "f32x4.ceil", 104: "f32x4.floor", 105: "f32x4.trunc", 106: "f32x4.nearest",

	107: "i8x16.shl", 108: "i8x16.shr_s", 109: "i8x16.shr_u", 110: "i8x16.add", 111: "i8x16.add_sat_s",
	112: "i8x16.add_sat_u", 113: "i8x16.sub", 114: "i8x16.sub_sat_s", 115: "i8x16.sub_sat_u",

	116: "f64x2.ceil", 117: "f64x2.floor",

	118: "i8x16.min_s", 119: "i8x16.min_u", 120: "i8x16.max_s", 121: "i8x16.max_u",

	122: "f64x2.trunc",

	123: "i8x16.avgr_u",

	124: "i16x8.extadd_pairwise_i8x16_s", 125: "i16x8.extadd_pairwise_i8x16_u",
	126: "i32x4.extadd_pairwise_i16x8_s", 127: "i32x4.extadd_pairwise_i16x8_u",

	128: "i16x8.abs", 129: "i16x8.neg", 130: "i16x8.q15mulr_sat_s", 131: "i16x8.all_true", 132: "i16x8.bitmask",
	133: "i16x8.narrow_i32x4_s", 134: "i16x8.narrow_i32x4_u",
	135: "i16x8.extend_low_i8x16_s", 136: "i16x8.extend_high_i8x16_s",
	137: "i16x8.extend_low_i8x16_u", 138: "i16x8.extend_high_i8x16_u",
	139: "i16x8.shl", 140: "i16x8.shr_s", 141: "i16x8.shr_u", 142: "i16x8.add", 143: "i16x8.add_sat_s",
	144: "i16x8.add_sat_u", 145: "i16x8.sub", 146: "i16x8.sub_sat_s", 147: "i16x8.sub_sat_u",

	148: "f64x2.nearest",

	149: "i16x8.mul", 150: "i16x8.min_s", 151: "i16x8.min_u", 152: "i16x8.max_s", 153: "i16x8.max_u",
	155: "i16x8.avgr_u",
	156: "i16x8.extmul_low_i8x16_s", 157: "i16x8.extmul_high_i8x16_s",
	158: "i16x8.extmul_low_i8x16_u", 159: "i16x8.extmul_high_i8x16_u",

	160: "i32x4.abs", 161: "i32x4.neg", 163: "i32x4.all_true", 164: "i32x4.bitmask",
	167: "i32x4.extend_low_i16x8_s", 168: "i32x4.extend_high_i16x8_s",
	169: "i32x4.extend_low_i16x8_u", 170: "i32x4.extend_high_i16x8_u",
	171: "i32x4.shl", 172: "i32x4.shr_s", 173: "i32x4.shr_u", 174: "i32x4.add", 177: "i32x4.sub",
	181: "i32x4.mul", 182: "i32x4.min_s", 183: "i32x4.min_u", 184: "i32x4.max_s", 185: "i32x4.max_u",
	186: "i32x4.dot_i16x8_s",
	188: "i32x4.extmul_low_i16x8_s", 189: "i32x4.extmul_high_i16x8_s",
	190: "i32x4.extmul_low_i16x8_u", 191: "i32x4.extmul_high_i16x8_u",

	192: "i64x2.abs", 193: "i64x2.neg", 195: "i64x2.all_true", 196: "i64x2.bitmask",
	199: "i64x2.extend_low_i32x4_s", 200: "i64x2.extend_high_i32x4_s",
	201: "i64x2.extend_low_i32x4_u", 202: "i64x2.extend_high_i32x4_u",
	203: "i64x2.shl", 204: "i64x2.shr_s", 205: "i64x2.shr_u", 206: "i64x2.add", 209: "i64x2.sub", 213: "i64x2.mul",

	214: "i64x2.eq", 215: "i64x2.ne", 216: "i64x2.lt_s", 217: "i64x2.gt_s", 218: "i64x2.le_s", 219: "i64x2.ge_s",

	220: "i64x2.extmul_low_i32x4_s", 221: "i64x2.extmul_high_i32x4_s",
	222: "i64x2.extmul_low_i32x4_u", 223: "i64x2.extmul_high_i32x4_u",

	224: "f32x4.abs", 225: "f32x4.neg", 227: "f32x4.sqrt", 228: "f32x4.add", 229: "f32x4.sub",
	230: "f32x4.mul", 231: "f32x4.div", 232: "f32x4.min", 233: "f32x4.max", 234: "f32x4.pmin", 235: "f32x4.pmax",

	236: "f64x2.abs", 237: "f64x2.neg", 239: "f64x2.sqrt", 240: "f64x2.add", 241: "f64x2.sub",
	242: "f64x2.mul", 243: "f64x2.div", 244: "f64x2.min", 245: "f64x2.max", 246: "f64x2.pmin", 247: "f64x2.pmax",

	248: "i32x4.trunc_sat_f32x4_s", 249: "i32x4.trunc_sat_f32x4_u",
	250: "f32x4.convert_i32x4_s", 251: "f32x4.convert_i32x4_u",
	252: "i32x4.trunc_sat_f64x2_s_zero", 253: "i32x4.trunc_sat_f64x2_u_zero",
	254: "f64x2.convert_low_i32x4_s", 255: "f64x2.convert_low_i32x4_u",
}

// feAtomicFenceSub is atomic.fence's sub-opcode: a single reserved byte
// that must be zero, carrying no meaningful immediate. It is not part
// of the threads proposal's numbered memory-access family below, but
// real producers (wasm-tools et al.) emit it, so it's recognized here
// alongside that family rather than rejected.
const feAtomicFenceSub = 3

// feSubNames enumerates every 0xFE (shared-memory atomics) sub-opcode
// this module recognizes, numbered per the threads proposal.
var feSubNames = map[uint32]string{
	0: "memory.atomic.notify", 1: "memory.atomic.wait32", 2: "memory.atomic.wait64",
	feAtomicFenceSub: "atomic.fence",

	0x10: "i32.atomic.load", 0x11: "i64.atomic.load", 0x12: "i32.atomic.load8_u", 0x13: "i32.atomic.load16_u",
	0x14: "i64.atomic.load8_u", 0x15: "i64.atomic.load16_u", 0x16: "i64.atomic.load32_u",

	0x17: "i32.atomic.store", 0x18: "i64.atomic.store", 0x19: "i32.atomic.store8", 0x1A: "i32.atomic.store16",
	0x1B: "i64.atomic.store8", 0x1C: "i64.atomic.store16", 0x1D: "i64.atomic.store32",

	0x1E: "i32.atomic.rmw.add", 0x1F: "i64.atomic.rmw.add", 0x20: "i32.atomic.rmw8.add_u",
	0x21: "i32.atomic.rmw16.add_u", 0x22: "i64.atomic.rmw8.add_u", 0x23: "i64.atomic.rmw16.add_u",
	0x24: "i64.atomic.rmw32.add_u",

	0x25: "i32.atomic.rmw.sub", 0x26: "i64.atomic.rmw.sub", 0x27: "i32.atomic.rmw8.sub_u",
	0x28: "i32.atomic.rmw16.sub_u", 0x29: "i64.atomic.rmw8.sub_u", 0x2A: "i64.atomic.rmw16.sub_u",
	0x2B: "i64.atomic.rmw32.sub_u",

	0x2C: "i32.atomic.rmw.and", 0x2D: "i64.atomic.rmw.and", 0x2E: "i32.atomic.rmw8.and_u",
	0x2F: "i32.atomic.rmw16.and_u", 0x30: "i64.atomic.rmw8.and_u", 0x31: "i64.atomic.rmw16.and_u",
	0x32: "i64.atomic.rmw32.and_u",

	0x33: "i32.atomic.rmw.or", 0x34: "i64.atomic.rmw.or", 0x35: "i32.atomic.rmw8.or_u",
	0x36: "i32.atomic.rmw16.or_u", 0x37: "i64.atomic.rmw8.or_u", 0x38: "i64.atomic.rmw16.or_u",
	0x39: "i64.atomic.rmw32.or_u",

	0x3A: "i32.atomic.rmw.xor", 0x3B: "i64.atomic.rmw.xor", 0x3C: "i32.atomic.rmw8.xor_u",
	0x3D: "i32.atomic.rmw16.xor_u", 0x3E: "i64.atomic.rmw8.xor_u", 0x3F: "i64.atomic.rmw16.xor_u",
	0x40: "i64.atomic.rmw32.xor_u",

	0x41: "i32.atomic.rmw.xchg", 0x42: "i64.atomic.rmw.xchg", 0x43: "i32.atomic.rmw8.xchg_u",
	0x44: "i32.atomic.rmw16.xchg_u", 0x45: "i64.atomic.rmw8.xchg_u", 0x46: "i64.atomic.rmw16.xchg_u",
	0x47: "i64.atomic.rmw32.xchg_u",

	0x48: "i32.atomic.rmw.cmpxchg", 0x49: "i64.atomic.rmw.cmpxchg", 0x4A: "i32.atomic.rmw8.cmpxchg_u",
	0x4B: "i32.atomic.rmw16.cmpxchg_u", 0x4C: "i64.atomic.rmw8.cmpxchg_u", 0x4D: "i64.atomic.rmw16.cmpxchg_u",
	0x4E: "i64.atomic.rmw32.cmpxchg_u",
}

func (p PrefixedOpcode) name() string {
	switch p.Proxy {
	case PrefixFC:
		if name, ok := fcSubNames[p.Sub]; ok {
			return name
		}
	case PrefixFD:
		if name, ok := fdSubNames[p.Sub]; ok {
			return name
		}
	case PrefixFE:
		if name, ok := feSubNames[p.Sub]; ok {
			return name
		}
	}
	return "unknown"
}

// prefixedSubKnown reports whether sub is a recognized sub-opcode under
// proxy. decodePrefixedOpcode rejects anything else, the same way a
// primary opcode byte outside the known ranges is rejected.
func prefixedSubKnown(proxy PrefixProxy, sub uint32) bool {
	switch proxy {
	case PrefixFC:
		_, ok := fcSubNames[sub]
		return ok
	case PrefixFD:
		_, ok := fdSubNames[sub]
		return ok
	case PrefixFE:
		_, ok := feSubNames[sub]
		return ok
	default:
		return false
	}
}

func decodePrefixedOpcode(offset *uint64, source ByteSource, proxy PrefixProxy) (PrefixedOpcode, error) {
	start := *offset
	sub, err := decodeU32(offset, source, "read prefixed sub-opcode")
	if err != nil {
		return PrefixedOpcode{}, wrapError(KindInvalidPrefixedOpcode, *offset, err, "read prefixed sub-opcode")
	}
	if !prefixedSubKnown(proxy, sub) {
		return PrefixedOpcode{}, newError(KindInvalidPrefixedOpcode, start, "unrecognized prefixed sub-opcode")
	}
	return PrefixedOpcode{Proxy: proxy, Sub: sub}, nil
}
