package cow

import (
	"errors"
	"fmt"
)

var ErrInvalidType = errors.New("invalid type")
var ErrNoValue = errors.New("no value")
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// InvalidTypeError is returned by a [Deserializer] if the input holds a value of a different
// kind than the one requested. It matches [ErrInvalidType] using errors.Is.
type InvalidTypeError struct {
	// Unexpected describes the value found in the input, e.g. "number". Might be empty.
	Unexpected string

	// Expected is the expectation of the visitor, see Visitor.Expecting
	Expected string
}

func (e *InvalidTypeError) Error() string {
	if e.Unexpected == "" {
		return fmt.Sprintf("invalid type, expected %s", e.Expected)
	}

	return fmt.Sprintf("invalid type: %s, expected %s", e.Unexpected, e.Expected)
}

func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// InvalidType is a shortcut to create an InvalidTypeError for the given visitor.
func InvalidType(unexpected string, v Visitor) error {
	return &InvalidTypeError{Unexpected: unexpected, Expected: v.Expecting()}
}
