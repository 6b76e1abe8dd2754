// Package cow provides the conditionally-owned value types [Str] and [Bytes]. Decoding one of
// these borrows the data straight from the input buffer whenever the underlying format exposes
// it as a contiguous region, and only allocates a copy if the format has to synthesize the
// value, e.g. because of escape sequences.
//
// A [Deserializer] walks some serialized representation and reports the value it found to a
// [Visitor] using one of three notifications: [Visitor.VisitBorrowed], [Visitor.VisitTransient]
// or [Visitor.VisitOwned]. The functions [DecodeStr], [DecodeBytes] and [Decode] register the
// matching visitor and return the resulting container.
//
// A borrowed container aliases the input. The caller must not modify the input buffer for as
// long as the container is in use. Call [Str.IntoOwned] or [Bytes.IntoOwned] to detach a value
// from its input.
//
// The sub packages cowjson, cowbin and cowpb implement [Deserializer] and [Serializer] for
// JSON, a length-prefixed binary framing and the protocol buffer wire format.
package cow
