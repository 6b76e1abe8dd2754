package cowbin

import (
	"encoding/binary"
	"errors"
	"fmt"
	"golang.org/x/exp/constraints"
	"io"
	"unsafe"
)

var ErrTooLarge = errors.New("value too large")
var ErrMalformedLength = errors.New("malformed length prefix")

// Kind identifies the type of value in a frame.
type Kind byte

const (
	KindStr   Kind = 0x01
	KindBytes Kind = 0x02
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("kind 0x%02x", byte(k))
	}
}

// LengthPrefix selects the encoding of the payload length.
type LengthPrefix int

const (
	Uvarint LengthPrefix = iota
	Fixed8
	Fixed16
	Fixed32
	Fixed64
)

func (p LengthPrefix) String() string {
	switch p {
	case Uvarint:
		return "uvarint"
	case Fixed8:
		return "fixed8"
	case Fixed16:
		return "fixed16"
	case Fixed32:
		return "fixed32"
	case Fixed64:
		return "fixed64"
	default:
		return fmt.Sprintf("LengthPrefix(%d)", int(p))
	}
}

// size returns the number of bytes of a fixed size prefix, or zero for Uvarint.
func (p LengthPrefix) size() int {
	switch p {
	case Fixed8:
		return 1
	case Fixed16:
		return 2
	case Fixed32:
		return 4
	case Fixed64:
		return 8
	default:
		return 0
	}
}

func (p LengthPrefix) appendLength(dst []byte, length uint64) ([]byte, error) {
	switch p {
	case Uvarint:
		return binary.AppendUvarint(dst, length), nil
	case Fixed8:
		return appendFixed[uint8](dst, length)
	case Fixed16:
		return appendFixed[uint16](dst, length)
	case Fixed32:
		return appendFixed[uint32](dst, length)
	case Fixed64:
		return appendFixed[uint64](dst, length)
	default:
		return nil, fmt.Errorf("unknown length prefix %s", p)
	}
}

// parseLength parses the length prefix at the beginning of b and returns
// the length and the number of bytes consumed.
func (p LengthPrefix) parseLength(b []byte) (uint64, int, error) {
	switch p {
	case Uvarint:
		length, n := binary.Uvarint(b)
		switch {
		case n == 0:
			return 0, 0, fmt.Errorf("parse length: %w", io.ErrUnexpectedEOF)
		case n < 0:
			return 0, 0, fmt.Errorf("parse length: %w", ErrMalformedLength)
		}

		return length, n, nil

	case Fixed8:
		return parseFixed[uint8](b)
	case Fixed16:
		return parseFixed[uint16](b)
	case Fixed32:
		return parseFixed[uint32](b)
	case Fixed64:
		return parseFixed[uint64](b)
	default:
		return 0, 0, fmt.Errorf("unknown length prefix %s", p)
	}
}

// appendFixed appends length as a little endian integer of type T.
func appendFixed[T constraints.Unsigned](dst []byte, length uint64) ([]byte, error) {
	value := T(length)
	if uint64(value) != length {
		return nil, fmt.Errorf("length %d does not fit into %d bytes: %w", length, unsafe.Sizeof(value), ErrTooLarge)
	}

	for idx := range int(unsafe.Sizeof(value)) {
		dst = append(dst, byte(value>>(8*idx)))
	}

	return dst, nil
}

// parseFixed parses a little endian integer of type T from the beginning of b.
func parseFixed[T constraints.Unsigned](b []byte) (uint64, int, error) {
	var value T

	size := int(unsafe.Sizeof(value))
	if len(b) < size {
		return 0, 0, fmt.Errorf("parse length: %w", io.ErrUnexpectedEOF)
	}

	for idx := range size {
		value |= T(b[idx]) << (8 * idx)
	}

	return uint64(value), size, nil
}
