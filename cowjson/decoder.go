// Package cowjson decodes cow.Str and cow.Bytes values from JSON.
//
// A JSON string without escape sequences is borrowed from the input. Strings with escape
// sequences are unescaped into a new buffer. Bytes are expected as a base64 encoded string,
// like encoding/json does it, and are always decoded into a new buffer.
package cowjson

import (
	"errors"
	"fmt"
	"github.com/go-gum/cow"
	json "github.com/goccy/go-json"
	"io"
	"unicode/utf8"
	"unsafe"
)

var ErrTrailingData = errors.New("trailing data after value")

// SyntaxError describes malformed JSON input.
type SyntaxError struct {
	msg string

	// Offset of the error in the input
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json syntax error at offset %d: %s", e.Offset, e.msg)
}

// Decoder decodes a single JSON string value. Borrowed results alias data,
// which must not be modified while they are in use.
type Decoder struct {
	data []byte
}

var _ cow.Deserializer = (*Decoder)(nil)

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// UnmarshalStr decodes a JSON string into a cow.Str.
func UnmarshalStr(data []byte) (cow.Str, error) {
	return cow.DecodeStr(NewDecoder(data))
}

// UnmarshalBytes decodes a base64 encoded JSON string into a cow.Bytes.
func UnmarshalBytes(data []byte) (cow.Bytes, error) {
	return cow.DecodeBytes(NewDecoder(data))
}

func (d *Decoder) DeserializeStr(v cow.Visitor) error {
	start, end, escaped, err := d.stringToken(v)
	if err != nil {
		return err
	}

	// content between the quotes
	content := d.data[start+1 : end-1]

	if !escaped {
		if !utf8.Valid(content) {
			return fmt.Errorf("decode json string at offset %d: %w", start, cow.ErrInvalidUTF8)
		}

		return v.VisitBorrowed(content)
	}

	var unescaped string
	if err := json.Unmarshal(d.data[start:end], &unescaped); err != nil {
		return &SyntaxError{msg: err.Error(), Offset: start}
	}

	if !utf8.ValidString(unescaped) {
		return fmt.Errorf("decode json string at offset %d: %w", start, cow.ErrInvalidUTF8)
	}

	// the string was allocated for this call only, hand its memory over
	return v.VisitOwned(unsafe.Slice(unsafe.StringData(unescaped), len(unescaped)))
}

func (d *Decoder) DeserializeBytes(v cow.Visitor) error {
	start, end, _, err := d.stringToken(v)
	if err != nil {
		return err
	}

	var decoded []byte
	if err := json.Unmarshal(d.data[start:end], &decoded); err != nil {
		return fmt.Errorf("decode base64 at offset %d: %w", start, err)
	}

	if decoded == nil {
		decoded = []byte{}
	}

	return v.VisitOwned(decoded)
}

// stringToken locates the only value in the input, which must be a string.
// It returns the offsets of the opening quote and the byte after the closing quote.
func (d *Decoder) stringToken(v cow.Visitor) (start, end int, escaped bool, err error) {
	start = skipSpace(d.data, 0)
	if start == len(d.data) {
		return 0, 0, false, fmt.Errorf("decode json: %w", io.ErrUnexpectedEOF)
	}

	if d.data[start] != '"' {
		kind, ok := kindOf(d.data[start])
		if !ok {
			return 0, 0, false, &SyntaxError{
				msg:    fmt.Sprintf("invalid character %q looking for beginning of value", d.data[start]),
				Offset: start,
			}
		}

		return 0, 0, false, cow.InvalidType(kind, v)
	}

	end, escaped, err = scanString(d.data, start)
	if err != nil {
		return 0, 0, false, err
	}

	if rest := skipSpace(d.data, end); rest != len(d.data) {
		return 0, 0, false, fmt.Errorf("decode json at offset %d: %w", rest, ErrTrailingData)
	}

	return start, end, escaped, nil
}

// scanString scans the string starting with the quote at data[start].
func scanString(data []byte, start int) (end int, escaped bool, err error) {
	for idx := start + 1; idx < len(data); idx++ {
		switch ch := data[idx]; {
		case ch == '"':
			return idx + 1, escaped, nil

		case ch == '\\':
			// skip the escaped character, go-json validates it later
			escaped = true
			idx++

		case ch < 0x20:
			return 0, false, &SyntaxError{
				msg:    fmt.Sprintf("invalid character %q in string literal", ch),
				Offset: idx,
			}
		}
	}

	return 0, false, fmt.Errorf("unterminated json string at offset %d: %w", start, io.ErrUnexpectedEOF)
}

func skipSpace(data []byte, idx int) int {
	for idx < len(data) {
		switch data[idx] {
		case ' ', '\t', '\n', '\r':
			idx++
		default:
			return idx
		}
	}

	return idx
}

// kindOf names the json value that starts with ch.
func kindOf(ch byte) (string, bool) {
	switch {
	case ch == 'n':
		return "null", true
	case ch == 't' || ch == 'f':
		return "boolean", true
	case ch == '-' || ('0' <= ch && ch <= '9'):
		return "number", true
	case ch == '[':
		return "array", true
	case ch == '{':
		return "object", true
	default:
		return "", false
	}
}
