// Package cowpb decodes cow.Str and cow.Bytes values from a single length-delimited
// field of a protocol buffer message, borrowing the payload from the encoded message.
package cowpb

import (
	"fmt"
	"github.com/go-gum/cow"
	"google.golang.org/protobuf/encoding/protowire"
	"unicode/utf8"
)

// Decoder reads one field of an encoded message. If the field occurs multiple times,
// the last occurrence wins. Decoded values borrow from msg, which must not be modified
// while they are in use.
type Decoder struct {
	msg   []byte
	field protowire.Number
}

var _ cow.Deserializer = (*Decoder)(nil)

func NewDecoder(msg []byte, field protowire.Number) *Decoder {
	return &Decoder{msg: msg, field: field}
}

func (d *Decoder) DeserializeStr(v cow.Visitor) error {
	payload, err := d.lookup(v)
	if err != nil {
		return err
	}

	if !utf8.Valid(payload) {
		return fmt.Errorf("field %d: %w", d.field, cow.ErrInvalidUTF8)
	}

	return v.VisitBorrowed(payload)
}

func (d *Decoder) DeserializeBytes(v cow.Visitor) error {
	payload, err := d.lookup(v)
	if err != nil {
		return err
	}

	return v.VisitBorrowed(payload)
}

// lookup walks all fields of the message and returns the payload of the
// last occurrence of the requested field.
func (d *Decoder) lookup(v cow.Visitor) ([]byte, error) {
	var payload []byte
	var found bool

	msg := d.msg
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return nil, fmt.Errorf("parse tag: %w", protowire.ParseError(n))
		}

		msg = msg[n:]

		if num != d.field {
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return nil, fmt.Errorf("skip field %d: %w", num, protowire.ParseError(n))
			}

			msg = msg[n:]
			continue
		}

		if typ != protowire.BytesType {
			return nil, cow.InvalidType(wireTypeName(typ), v)
		}

		value, n := protowire.ConsumeBytes(msg)
		if n < 0 {
			return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}

		payload, found = value, true
		msg = msg[n:]
	}

	if !found {
		return nil, fmt.Errorf("field %d: %w", d.field, cow.ErrNoValue)
	}

	return payload, nil
}

func wireTypeName(typ protowire.Type) string {
	switch typ {
	case protowire.VarintType:
		return "varint"
	case protowire.Fixed32Type:
		return "fixed32"
	case protowire.Fixed64Type:
		return "fixed64"
	case protowire.StartGroupType, protowire.EndGroupType:
		return "group"
	default:
		return fmt.Sprintf("wire type %d", typ)
	}
}
