package wasmiter

// Tag is one entry of the tag section (exception-handling proposal):
// an attribute, currently always 0 (exception), and the function type
// describing the tag's payload.
type Tag struct {
	TypeIndex TypeIndex
}

// TagSection is the lazily-pulled vector of the module's tags (section
// id 13).
type TagSection struct {
	Vector
}

// ParseTagSection builds a TagSection over a tag section's contents.
func ParseTagSection(contents Window) (TagSection, error) {
	offset := contents.Base()
	v, err := ParseVector(contents, &offset)
	if err != nil {
		return TagSection{}, withContext(err, "read tag section")
	}
	return TagSection{v}, nil
}

// Advance pulls the next Tag.
func (s *TagSection) Advance() (Tag, bool, error) {
	var tag Tag
	ok, err := s.Vector.Advance(func(offset *uint64, source ByteSource) error {
		start := *offset
		attr, err := decodeByte(offset, source, "read tag attribute")
		if err != nil {
			return err
		}
		if attr != 0 {
			return newError(KindBadTagAttribute, start, "tag attribute must be 0")
		}
		idx, err := decodeIndex(offset, source)
		if err != nil {
			return withContext(err, "read tag type index")
		}
		tag = Tag{TypeIndex: idx}
		return nil
	})
	return tag, ok, err
}
