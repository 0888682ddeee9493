package wasmiter

// StartSection is the module's optional start section (id 8): a single
// function index invoked automatically once the module is instantiated.
type StartSection struct {
	FuncIndex FuncIndex
}

// ParseStartSection reads a start section's single function index.
func ParseStartSection(contents Window) (StartSection, error) {
	offset := contents.Base()
	idx, err := decodeIndex(&offset, contents)
	if err != nil {
		return StartSection{}, withContext(err, "read start section")
	}
	return StartSection{FuncIndex: idx}, nil
}
