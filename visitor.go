package cow

import (
	"bytes"
	"unsafe"
)

// strVisitor builds a Str. It never fails.
type strVisitor struct {
	result  Str
	visited bool
}

var _ Visitor = (*strVisitor)(nil)

func (v *strVisitor) Expecting() string {
	return "a string"
}

func (v *strVisitor) VisitBorrowed(data []byte) error {
	v.result = BorrowedStr(aliasString(data))
	v.visited = true
	return nil
}

func (v *strVisitor) VisitTransient(data []byte) error {
	v.result = OwnedStr(string(data))
	v.visited = true
	return nil
}

func (v *strVisitor) VisitOwned(data []byte) error {
	// we own data now and nobody else writes to it, so we can take over
	// the memory without copying it
	v.result = OwnedStr(aliasString(data))
	v.visited = true
	return nil
}

// bytesVisitor builds a Bytes. It never fails.
type bytesVisitor struct {
	result  Bytes
	visited bool
}

var _ Visitor = (*bytesVisitor)(nil)

func (v *bytesVisitor) Expecting() string {
	return "bytes"
}

func (v *bytesVisitor) VisitBorrowed(data []byte) error {
	v.result = BorrowedBytes(data)
	v.visited = true
	return nil
}

func (v *bytesVisitor) VisitTransient(data []byte) error {
	owned := bytes.Clone(data)
	if owned == nil {
		// bytes.Clone keeps nil as nil, we want an empty value instead
		owned = []byte{}
	}

	v.result = OwnedBytes(owned)
	v.visited = true
	return nil
}

func (v *bytesVisitor) VisitOwned(data []byte) error {
	v.result = OwnedBytes(data)
	v.visited = true
	return nil
}

// aliasString returns a string that shares its memory with data.
// The caller must ensure that data is never modified afterwards.
func aliasString(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(data), len(data))
}
