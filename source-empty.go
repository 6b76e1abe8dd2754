package cow

// EmptySource is a Deserializer that returns an InvalidTypeError for all values.
// It is useful as an embedded base for your own custom Deserializer implementation.
type EmptySource struct{}

var _ Deserializer = EmptySource{}

func (e EmptySource) DeserializeStr(v Visitor) error {
	return InvalidType("", v)
}

func (e EmptySource) DeserializeBytes(v Visitor) error {
	return InvalidType("", v)
}
