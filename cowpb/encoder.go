package cowpb

import (
	"github.com/go-gum/cow"
	"google.golang.org/protobuf/encoding/protowire"
)

// Encoder appends values as length-delimited fields to a message.
type Encoder struct {
	Field protowire.Number

	buf []byte
}

var _ cow.Serializer = (*Encoder)(nil)

// NewEncoder returns an Encoder that appends to msg.
func NewEncoder(msg []byte, field protowire.Number) *Encoder {
	return &Encoder{Field: field, buf: msg}
}

func (e *Encoder) Encode(v cow.Serializable) error {
	return v.Serialize(e)
}

func (e *Encoder) SerializeStr(value string) error {
	e.buf = protowire.AppendTag(e.buf, e.Field, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, value)
	return nil
}

func (e *Encoder) SerializeBytes(value []byte) error {
	e.buf = protowire.AppendTag(e.buf, e.Field, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, value)
	return nil
}

// Bytes returns the encoded message.
func (e *Encoder) Bytes() []byte {
	return e.buf
}
