package cow

import "fmt"

// DecodeStr decodes a Str from the given Deserializer. The result borrows from the
// deserializers input if possible. Errors of the deserializer are returned as is.
func DecodeStr(d Deserializer) (Str, error) {
	var v strVisitor
	if err := d.DeserializeStr(&v); err != nil {
		return Str{}, err
	}

	if !v.visited {
		return Str{}, fmt.Errorf("deserializer %T did not report a string: %w", d, ErrNoValue)
	}

	return v.result, nil
}

// DecodeBytes decodes a Bytes from the given Deserializer. The result borrows from the
// deserializers input if possible. Errors of the deserializer are returned as is.
func DecodeBytes(d Deserializer) (Bytes, error) {
	var v bytesVisitor
	if err := d.DeserializeBytes(&v); err != nil {
		return Bytes{}, err
	}

	if !v.visited {
		return Bytes{}, fmt.Errorf("deserializer %T did not report bytes: %w", d, ErrNoValue)
	}

	return v.result, nil
}

// Decode decodes either a Str or a Bytes, depending on the type parameter.
func Decode[T Str | Bytes](d Deserializer) (T, error) {
	var target T

	var err error
	switch t := any(&target).(type) {
	case *Str:
		*t, err = DecodeStr(d)
	case *Bytes:
		*t, err = DecodeBytes(d)
	}

	return target, err
}
