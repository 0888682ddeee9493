package wasmiter

// CustomSection is a parsed view of a custom section (id 0): its name,
// and the remaining payload bytes whose interpretation depends entirely
// on that name.
type CustomSection struct {
	Name     Name
	Contents Window
}

// ParseCustomSection reads a custom section's name and windows the
// remaining bytes as its type-specific contents.
func ParseCustomSection(contents Window) (CustomSection, error) {
	offset := contents.Base()
	name, err := ParseName(contents, &offset)
	if err != nil {
		return CustomSection{}, withContext(err, "read custom section name")
	}
	rest := NewWindow(contents, offset, contents.End()-offset)
	return CustomSection{Name: name, Contents: rest}, nil
}
