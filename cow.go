package cow

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Serializable is implemented by values that can emit themselves to a [Serializer].
type Serializable interface {
	Serialize(s Serializer) error
}

var _ Serializable = Str{}
var _ Serializable = Bytes{}

// Str holds text that is either borrowed from a decoders input or owned by the Str itself.
// The ownership is a storage detail only: [Str.Equal], [Str.String] and [Str.Serialize]
// behave the same for both variants.
//
// Use [Str.Equal] to compare two values. The == operator also compares the ownership and
// will report two Str values with the same text as different.
type Str struct {
	value    string
	borrowed bool
}

// BorrowedStr returns a Str that marks value as borrowed from some input buffer.
func BorrowedStr(value string) Str {
	return Str{value: value, borrowed: true}
}

// OwnedStr returns a Str that owns value.
func OwnedStr(value string) Str {
	return Str{value: value}
}

// String returns the text.
func (s Str) String() string {
	return s.value
}

// GoString formats the text as a quoted Go string literal.
func (s Str) GoString() string {
	return strconv.Quote(s.value)
}

func (s Str) Len() int {
	return len(s.value)
}

// IsBorrowed reports whether the text aliases the input it was decoded from.
func (s Str) IsBorrowed() bool {
	return s.borrowed
}

// Equal reports whether s and other hold the same text.
func (s Str) Equal(other Str) bool {
	return s.value == other.value
}

// IntoOwned returns a Str that does not depend on the input buffer anymore.
// The text is copied if s is borrowed.
func (s Str) IntoOwned() Str {
	if !s.borrowed {
		return s
	}

	return OwnedStr(strings.Clone(s.value))
}

func (s Str) Serialize(ser Serializer) error {
	return ser.SerializeStr(s.value)
}

func (s Str) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// Bytes holds a byte sequence that is either borrowed from a decoders input or owned by
// the Bytes itself. The ownership is a storage detail only: [Bytes.Equal], formatting
// and [Bytes.Serialize] behave the same for both variants.
//
// The slice returned by [Bytes.Bytes] must not be modified if the value is borrowed,
// as that would modify the input buffer too.
type Bytes struct {
	value    []byte
	borrowed bool
}

// BorrowedBytes returns a Bytes that marks value as borrowed from some input buffer.
// The capacity of value is clipped so that appending to [Bytes.Bytes] never writes
// into the input buffer.
func BorrowedBytes(value []byte) Bytes {
	return Bytes{value: value[:len(value):len(value)], borrowed: true}
}

// OwnedBytes returns a Bytes that takes ownership of value.
func OwnedBytes(value []byte) Bytes {
	return Bytes{value: value}
}

// Bytes returns the byte sequence.
func (b Bytes) Bytes() []byte {
	return b.value
}

func (b Bytes) Len() int {
	return len(b.value)
}

// IsBorrowed reports whether the bytes alias the input they were decoded from.
func (b Bytes) IsBorrowed() bool {
	return b.borrowed
}

// Equal reports whether b and other hold the same bytes.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.value, other.value)
}

// IntoOwned returns a Bytes that does not depend on the input buffer anymore.
// The bytes are copied if b is borrowed.
func (b Bytes) IntoOwned() Bytes {
	if !b.borrowed {
		return b
	}

	return OwnedBytes(bytes.Clone(b.value))
}

func (b Bytes) Serialize(ser Serializer) error {
	return ser.SerializeBytes(b.value)
}

func (b Bytes) MarshalBinary() ([]byte, error) {
	return bytes.Clone(b.value), nil
}

// String returns the bytes interpreted as text.
func (b Bytes) String() string {
	return string(b.value)
}

// Format formats the bytes as if they were a plain []byte.
func (b Bytes) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), b.value)
}
