package wasmiter

// DataMode classifies a data segment's use: copied into memory at
// instantiation (Active), or left for explicit memory.init (Passive).
type DataMode int

const (
	DataModeActive DataMode = iota
	DataModePassive
)

// Data is one entry of the data section.
type Data struct {
	Mode      DataMode
	MemIndex  MemIndex // valid when Mode == DataModeActive
	Offset    ConstExpr // valid when Mode == DataModeActive
	Bytes     Window
}

// DataSection is the lazily-pulled vector of the module's data segments
// (section id 11).
type DataSection struct {
	Vector
}

// ParseDataSection builds a DataSection over a data section's contents.
func ParseDataSection(contents Window) (DataSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return DataSection{}, withContext(err, "read data section")
	}
	return DataSection{v}, nil
}

// Advance pulls the next Data, per the three data segment encodings
// (flags 0: active memory 0, 1: passive, 2: active with explicit
// memory index).
func (s *DataSection) Advance() (Data, bool, error) {
	var d Data
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		start := *offset
		flags, err := decodeU32(offset, source, "read data segment flags")
		if err != nil {
			return err
		}
		switch flags {
		case 0:
			off, err := ParseConstExpr(source, offset)
			if err != nil {
				return withContext(err, "read data offset expression")
			}
			d = Data{Mode: DataModeActive, Offset: off}
		case 1:
			d = Data{Mode: DataModePassive}
		case 2:
			idx, err := decodeIndex(offset, source)
			if err != nil {
				return withContext(err, "read data memory index")
			}
			off, err := ParseConstExpr(source, offset)
			if err != nil {
				return withContext(err, "read data offset expression")
			}
			d = Data{Mode: DataModeActive, MemIndex: idx, Offset: off}
		default:
			return newError(KindBadDataSegmentMode, start, "unrecognized data segment mode")
		}

		length, err := decodeU32(offset, source, "read data byte length")
		if err != nil {
			return err
		}
		d.Bytes = NewWindow(source, *offset, uint64(length))
		*offset += uint64(length)
		return nil
	})
	return d, ok, err
}
