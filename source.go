package cow

// Deserializer represents the abstract interface to a serialized data source. It decodes a
// single string or byte sequence and reports it to the [Visitor] passed in.
//
// A [Deserializer] must call exactly one of the visitors methods on success and return the
// visitors error, if any. It picks the notification based on how it can provide the data:
//   - [Visitor.VisitBorrowed] if the data is a contiguous region of the input buffer and
//     stays valid for as long as the input buffer does.
//   - [Visitor.VisitTransient] if the data is only valid for the duration of the call,
//     e.g. because it lives in a scratch buffer that the deserializer reuses.
//   - [Visitor.VisitOwned] if the deserializer allocated a new buffer for the data,
//     e.g. because it had to process escape sequences. The visitor takes ownership of the
//     buffer, the deserializer must not touch it afterwards.
//
// If the input does not hold a value of the requested kind, the deserializer should return
// an [InvalidTypeError] using [Visitor.Expecting] as the expectation.
//
// For text, the data passed to the visitor must be valid UTF-8. Visitors do not validate it.
//
// To build a deserializer that supports only one kind of value, embed [EmptySource] and
// implement just the method you need.
type Deserializer interface {
	// DeserializeStr decodes a string and reports it to the visitor.
	DeserializeStr(v Visitor) error

	// DeserializeBytes decodes a byte sequence and reports it to the visitor.
	DeserializeBytes(v Visitor) error
}

// Visitor receives a decoded value from a [Deserializer]. The set of notifications is closed:
// a deserializer delivers data in one of exactly three ways, see [Deserializer].
type Visitor interface {
	// Expecting describes the value this visitor expects, e.g. "a string".
	// It is used in error messages.
	Expecting() string

	// VisitBorrowed receives data that lives in the input buffer.
	VisitBorrowed(data []byte) error

	// VisitTransient receives data that is only valid during this call.
	VisitTransient(data []byte) error

	// VisitOwned receives a buffer the visitor now owns.
	VisitOwned(data []byte) error
}

// Serializer is the encoding counterpart of [Deserializer].
type Serializer interface {
	SerializeStr(value string) error
	SerializeBytes(value []byte) error
}
