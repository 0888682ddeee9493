package wasmiter

// AscendingIndexChecker accumulates indices one at a time and reports
// KindInvalidFormat the first time one is not strictly greater than the
// last, the ordering constraint the binary format places on name maps
// and a handful of other index-keyed vectors.
type AscendingIndexChecker struct {
	have bool
	last Index
}

// Check records idx, failing if it does not strictly exceed the
// previously checked index.
func (c *AscendingIndexChecker) Check(idx Index) error {
	if c.have && idx <= c.last {
		return newErrorNoOffset(KindInvalidFormat, "indices are not strictly ascending")
	}
	c.have = true
	c.last = idx
	return nil
}
