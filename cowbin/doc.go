// Package cowbin implements a length-prefixed binary framing for cow.Str and cow.Bytes.
//
// Each value is written as a frame:
//
//	kind (1 byte) | length prefix | payload
//
// The kind is KindStr or KindBytes. The length prefix is an unsigned varint by default,
// or a little endian fixed size integer, see WithPrefix.
//
// A Decoder reads frames from a byte slice and borrows each payload from it.
// A Reader reads frames from an io.Reader into a scratch buffer that is reused for
// the next frame, thus every value decoded by a Reader is copied.
package cowbin
