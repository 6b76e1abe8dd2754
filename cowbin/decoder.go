package cowbin

import (
	"fmt"
	"github.com/go-gum/cow"
	"io"
	"unicode/utf8"
)

// Decoder decodes frames from a byte slice. Each call to DeserializeStr or
// DeserializeBytes consumes one frame. Payloads are borrowed from data, which
// must not be modified while decoded values are in use.
type Decoder struct {
	data []byte
	pos  int
	opts options
}

var _ cow.Deserializer = (*Decoder)(nil)

func NewDecoder(data []byte, opts ...Option) *Decoder {
	return &Decoder{data: data, opts: newOptions(opts)}
}

// Remaining returns the number of bytes not yet consumed.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) DeserializeStr(v cow.Visitor) error {
	payload, err := d.next(KindStr, v)
	if err != nil {
		return err
	}

	return v.VisitBorrowed(payload)
}

func (d *Decoder) DeserializeBytes(v cow.Visitor) error {
	payload, err := d.next(KindBytes, v)
	if err != nil {
		return err
	}

	return v.VisitBorrowed(payload)
}

// next consumes the next frame and returns its payload. It returns io.EOF if there
// are no more frames. The position is not advanced if the frame can not be decoded.
func (d *Decoder) next(kind Kind, v cow.Visitor) ([]byte, error) {
	if d.pos == len(d.data) {
		return nil, io.EOF
	}

	if found := Kind(d.data[d.pos]); found != kind {
		return nil, cow.InvalidType(found.String(), v)
	}

	length, n, err := d.opts.prefix.parseLength(d.data[d.pos+1:])
	if err != nil {
		return nil, fmt.Errorf("frame at offset %d: %w", d.pos, err)
	}

	if length > d.opts.maxLength {
		return nil, fmt.Errorf("frame at offset %d with length %d: %w", d.pos, length, ErrTooLarge)
	}

	start := d.pos + 1 + n
	if uint64(len(d.data)-start) < length {
		return nil, fmt.Errorf("frame at offset %d: %w", d.pos, io.ErrUnexpectedEOF)
	}

	end := start + int(length)
	payload := d.data[start:end]

	if kind == KindStr && !utf8.Valid(payload) {
		return nil, fmt.Errorf("frame at offset %d: %w", d.pos, cow.ErrInvalidUTF8)
	}

	d.pos = end

	return payload, nil
}
