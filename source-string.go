package cow

import "unsafe"

// StringSource adapts a `string` to a Deserializer.
//
// Strings are immutable, so decoding a Str borrows the string directly. Decoding a
// Bytes copies the string, as the caller might modify the returned slice.
type StringSource string

var _ Deserializer = StringSource("")

func (s StringSource) DeserializeStr(v Visitor) error {
	return v.VisitBorrowed(s.view())
}

func (s StringSource) DeserializeBytes(v Visitor) error {
	return v.VisitTransient(s.view())
}

// view returns the strings memory as a read-only slice.
func (s StringSource) view() []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}
