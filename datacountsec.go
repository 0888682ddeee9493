package wasmiter

// DataCountSection is the module's optional data count section (id 12):
// a hint giving the number of data segments, allowing memory.init and
// data.drop in the code section to be validated before the data section
// itself is reached in a single forward pass.
type DataCountSection struct {
	Count uint32
}

// ParseDataCountSection reads a data count section's single u32 count.
func ParseDataCountSection(contents Window) (DataCountSection, error) {
	offset := contents.Base()
	count, err := decodeU32(&offset, contents, "read data count section")
	if err != nil {
		return DataCountSection{}, err
	}
	return DataCountSection{Count: count}, nil
}
