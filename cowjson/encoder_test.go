package cowjson

import (
	"bytes"
	"errors"
	"github.com/go-gum/cow"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMarshalIgnoresOwnership(t *testing.T) {
	owned, err := Marshal(cow.OwnedStr("abc"))
	require.NoError(t, err)

	borrowed, err := Marshal(cow.BorrowedStr("abc"))
	require.NoError(t, err)

	require.Equal(t, `"abc"`, string(owned))
	require.Equal(t, owned, borrowed)
}

func TestMarshalBytes(t *testing.T) {
	encoded, err := Marshal(cow.OwnedBytes([]byte{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, `"AQID"`, string(encoded))

	encoded, err = Marshal(cow.OwnedBytes(nil))
	require.NoError(t, err)
	require.Equal(t, `""`, string(encoded))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`"Hello World"`,
		`"Hello\nWorld"`,
		`"tab\tand \"quotes\""`,
		`"\u00e4\u00f6\u00fc"`,
		`"😀"`,
		`""`,
	}

	for _, input := range inputs {
		str, err := UnmarshalStr([]byte(input))
		require.NoError(t, err, input)

		encoded, err := Marshal(str)
		require.NoError(t, err, input)

		again, err := UnmarshalStr(encoded)
		require.NoError(t, err, input)
		require.True(t, str.Equal(again), input)
	}

	value, err := UnmarshalBytes([]byte(`"AAEC/w=="`))
	require.NoError(t, err)

	encoded, err := Marshal(value)
	require.NoError(t, err)
	require.Equal(t, `"AAEC/w=="`, string(encoded))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncoderWriteError(t *testing.T) {
	err := NewEncoder(failingWriter{}).Encode(cow.OwnedStr("abc"))
	require.EqualError(t, err, "write json: disk full")
}

func TestEncoderSequence(t *testing.T) {
	var buf bytes.Buffer

	enc := NewEncoder(&buf)
	require.NoError(t, enc.SerializeStr("a"))
	require.NoError(t, enc.SerializeBytes([]byte("a")))
	require.Equal(t, `"a""YQ=="`, buf.String())
}
