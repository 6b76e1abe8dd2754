package cowbin

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/go-gum/cow"
	"io"
	"slices"
	"unicode/utf8"
)

const readChunkSize = 32 << 10

type byteScanner interface {
	io.Reader
	io.ByteScanner
}

// Reader decodes frames from an io.Reader. The payload is read into a scratch
// buffer that is reused for the next frame, so decoded values are always copied.
//
// If r does not implement io.ByteScanner it is wrapped into a bufio.Reader,
// which might read more data from r than needed.
type Reader struct {
	r       byteScanner
	scratch []byte
	opts    options
}

var _ cow.Deserializer = (*Reader)(nil)

func NewReader(r io.Reader, opts ...Option) *Reader {
	scanner, ok := r.(byteScanner)
	if !ok {
		scanner = bufio.NewReader(r)
	}

	return &Reader{r: scanner, opts: newOptions(opts)}
}

func (r *Reader) DeserializeStr(v cow.Visitor) error {
	payload, err := r.next(KindStr, v)
	if err != nil {
		return err
	}

	return v.VisitTransient(payload)
}

func (r *Reader) DeserializeBytes(v cow.Visitor) error {
	payload, err := r.next(KindBytes, v)
	if err != nil {
		return err
	}

	return v.VisitTransient(payload)
}

// next reads the next frame into the scratch buffer. It returns io.EOF if
// the reader is at the end of the input.
func (r *Reader) next(kind Kind, v cow.Visitor) ([]byte, error) {
	kindByte, err := r.r.ReadByte()
	if err != nil {
		return nil, err
	}

	if found := Kind(kindByte); found != kind {
		// keep the frame for a call with the correct kind
		if err := r.r.UnreadByte(); err != nil {
			return nil, errors.Join(cow.InvalidType(found.String(), v), fmt.Errorf("unread kind: %w", err))
		}

		return nil, cow.InvalidType(found.String(), v)
	}

	length, err := r.readLength()
	if err != nil {
		return nil, fmt.Errorf("read length: %w", unexpectedEOF(err))
	}

	if length > r.opts.maxLength {
		return nil, fmt.Errorf("frame with length %d: %w", length, ErrTooLarge)
	}

	payload, err := r.readPayload(length)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", unexpectedEOF(err))
	}

	if kind == KindStr && !utf8.Valid(payload) {
		return nil, fmt.Errorf("read payload: %w", cow.ErrInvalidUTF8)
	}

	return payload, nil
}

// readPayload reads length bytes into the scratch buffer. The buffer grows in chunks
// as data arrives, so a truncated frame can not claim more memory than it delivers.
func (r *Reader) readPayload(length uint64) ([]byte, error) {
	payload := r.scratch[:0]

	for remaining := length; remaining > 0; {
		chunk := int(min(remaining, readChunkSize))

		payload = slices.Grow(payload, chunk)
		n, err := io.ReadFull(r.r, payload[len(payload):len(payload)+chunk])
		payload = payload[:len(payload)+n]

		// keep the grown buffer for the next frame
		r.scratch = payload[:0]

		if err != nil {
			return nil, err
		}

		remaining -= uint64(n)
	}

	return payload, nil
}

func (r *Reader) readLength() (uint64, error) {
	if r.opts.prefix == Uvarint {
		return binary.ReadUvarint(r.r)
	}

	var buf [8]byte

	prefix := buf[:r.opts.prefix.size()]
	if _, err := io.ReadFull(r.r, prefix); err != nil {
		return 0, err
	}

	length, _, err := r.opts.prefix.parseLength(prefix)
	return length, err
}

// unexpectedEOF maps io.EOF to io.ErrUnexpectedEOF, as a frame was already started.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}
