package cowbin

import (
	"fmt"
	"github.com/go-gum/cow"
	"io"
)

// Encoder writes frames to an io.Writer.
type Encoder struct {
	w    io.Writer
	buf  []byte
	opts options
}

var _ cow.Serializer = (*Encoder)(nil)

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: newOptions(opts)}
}

// Append appends the frame of v to dst.
func Append(dst []byte, v cow.Serializable, opts ...Option) ([]byte, error) {
	a := appender{buf: dst, opts: newOptions(opts)}
	if err := v.Serialize(&a); err != nil {
		return nil, err
	}

	return a.buf, nil
}

func (e *Encoder) Encode(v cow.Serializable) error {
	return v.Serialize(e)
}

func (e *Encoder) SerializeStr(value string) error {
	return e.write(KindStr, func(dst []byte) ([]byte, error) {
		return appendFrame(dst, KindStr, e.opts, value)
	})
}

func (e *Encoder) SerializeBytes(value []byte) error {
	return e.write(KindBytes, func(dst []byte) ([]byte, error) {
		return appendFrame(dst, KindBytes, e.opts, value)
	})
}

func (e *Encoder) write(kind Kind, appendTo func([]byte) ([]byte, error)) error {
	frame, err := appendTo(e.buf[:0])
	if err != nil {
		return err
	}

	// keep the buffer for the next frame
	e.buf = frame

	if _, err := e.w.Write(frame); err != nil {
		return fmt.Errorf("write %s frame: %w", kind, err)
	}

	return nil
}

// appender collects frames in a byte slice.
type appender struct {
	buf  []byte
	opts options
}

func (a *appender) SerializeStr(value string) (err error) {
	a.buf, err = appendFrame(a.buf, KindStr, a.opts, value)
	return err
}

func (a *appender) SerializeBytes(value []byte) (err error) {
	a.buf, err = appendFrame(a.buf, KindBytes, a.opts, value)
	return err
}

func appendFrame[T ~string | ~[]byte](dst []byte, kind Kind, opts options, value T) ([]byte, error) {
	length := uint64(len(value))
	if length > opts.maxLength {
		return nil, fmt.Errorf("%s frame with length %d: %w", kind, length, ErrTooLarge)
	}

	dst = append(dst, byte(kind))

	dst, err := opts.prefix.appendLength(dst, length)
	if err != nil {
		return nil, err
	}

	return append(dst, value...), nil
}
