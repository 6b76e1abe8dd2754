package cowbin

import (
	"fmt"
	"github.com/go-gum/cow"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"unsafe"
)

func TestDecoderBorrowsBytes(t *testing.T) {
	input := []byte{byte(KindBytes), 0x03, 0x01, 0x02, 0x03}

	value, err := cow.DecodeBytes(NewDecoder(input))
	require.NoError(t, err)
	require.True(t, value.IsBorrowed())
	require.Equal(t, []byte{1, 2, 3}, value.Bytes())
	require.Equal(t, unsafe.Pointer(&input[2]), unsafe.Pointer(unsafe.SliceData(value.Bytes())))
}

func TestDecoderBorrowsStr(t *testing.T) {
	input := []byte{byte(KindStr), 0x05, 'h', 'e', 'l', 'l', 'o'}

	str, err := cow.DecodeStr(NewDecoder(input))
	require.NoError(t, err)
	require.True(t, str.IsBorrowed())
	require.Equal(t, "hello", str.String())
	require.Equal(t, unsafe.Pointer(&input[2]), unsafe.Pointer(unsafe.StringData(str.String())))
}

func TestDecoderSequence(t *testing.T) {
	var input []byte
	input, _ = Append(input, cow.OwnedStr("first"))
	input, _ = Append(input, cow.OwnedBytes([]byte{0xff, 0x00}))
	input, _ = Append(input, cow.OwnedStr(""))

	dec := NewDecoder(input)

	first, err := cow.DecodeStr(dec)
	require.NoError(t, err)
	require.Equal(t, "first", first.String())

	// wrong kind does not consume the frame
	_, err = cow.DecodeStr(dec)
	require.ErrorIs(t, err, cow.ErrInvalidType)
	require.EqualError(t, err, "invalid type: bytes, expected a string")

	second, err := cow.DecodeBytes(dec)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0x00}, second.Bytes())

	third, err := cow.DecodeStr(dec)
	require.NoError(t, err)
	require.Equal(t, "", third.String())

	require.Equal(t, 0, dec.Remaining())

	_, err = cow.DecodeStr(dec)
	require.ErrorIs(t, err, io.EOF)
}

func TestDecoderPrefixes(t *testing.T) {
	prefixes := []LengthPrefix{Uvarint, Fixed8, Fixed16, Fixed32, Fixed64}

	for _, prefix := range prefixes {
		t.Run(prefix.String(), func(t *testing.T) {
			input, err := Append(nil, cow.OwnedStr("Hello World"), WithPrefix(prefix))
			require.NoError(t, err)

			// kind byte + prefix + payload
			if prefix != Uvarint {
				require.Len(t, input, 1+prefix.size()+11)
			}

			str, err := cow.DecodeStr(NewDecoder(input, WithPrefix(prefix)))
			require.NoError(t, err)
			require.True(t, str.IsBorrowed())
			require.Equal(t, "Hello World", str.String())
		})
	}
}

func TestDecoderFixedLittleEndian(t *testing.T) {
	input := []byte{byte(KindBytes), 0x02, 0x00, 0xaa, 0xbb}

	value, err := cow.DecodeBytes(NewDecoder(input, WithPrefix(Fixed16)))
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb}, value.Bytes())
}

func TestDecoderErrors(t *testing.T) {
	cases := []struct {
		Name  string
		Input []byte
		Opts  []Option
		Err   error
	}{
		{"truncated payload", []byte{byte(KindStr), 0x05, 'a', 'b'}, nil, io.ErrUnexpectedEOF},
		{"missing length", []byte{byte(KindStr)}, nil, io.ErrUnexpectedEOF},
		{"truncated fixed length", []byte{byte(KindStr), 0x01}, []Option{WithPrefix(Fixed32)}, io.ErrUnexpectedEOF},
		{"malformed varint", []byte{byte(KindStr), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, nil, ErrMalformedLength},
		{"too large", []byte{byte(KindStr), 0x03, 'a', 'b', 'c'}, []Option{WithMaxLength(2)}, ErrTooLarge},
		{"invalid utf-8", []byte{byte(KindStr), 0x01, 0xff}, nil, cow.ErrInvalidUTF8},
		{"unknown kind", []byte{0x07, 0x00}, nil, cow.ErrInvalidType},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			dec := NewDecoder(tc.Input, tc.Opts...)

			_, err := cow.DecodeStr(dec)
			require.ErrorIs(t, err, tc.Err)

			// nothing was consumed
			require.Equal(t, len(tc.Input), dec.Remaining())
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "string", KindStr.String())
	require.Equal(t, "bytes", KindBytes.String())
	require.Equal(t, "kind 0x07", Kind(7).String())
	require.Equal(t, "LengthPrefix(9)", fmt.Sprint(LengthPrefix(9)))
}
