package cowjson

import (
	"bytes"
	"fmt"
	"github.com/go-gum/cow"
	json "github.com/goccy/go-json"
	"io"
)

// Encoder writes values as JSON. Bytes are written as base64 encoded strings.
type Encoder struct {
	w io.Writer
}

var _ cow.Serializer = (*Encoder)(nil)

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Marshal returns the JSON encoding of v.
func Marshal(v cow.Serializable) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *Encoder) Encode(v cow.Serializable) error {
	return v.Serialize(e)
}

func (e *Encoder) SerializeStr(value string) error {
	return e.write(value)
}

func (e *Encoder) SerializeBytes(value []byte) error {
	if value == nil {
		// keep the output a string, go-json encodes a nil slice as null
		value = []byte{}
	}

	return e.write(value)
}

func (e *Encoder) write(value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %T: %w", value, err)
	}

	if _, err := e.w.Write(encoded); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}
