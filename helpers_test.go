package cow

import (
	"github.com/stretchr/testify/require"
	"testing"
	"unsafe"
)

type delivery int

const (
	deliverBorrowed delivery = iota
	deliverTransient
	deliverOwned
	deliverNothing
)

// deliverySource delivers Data using the configured notification, or fails with Err.
type deliverySource struct {
	Delivery delivery
	Data     []byte
	Err      error
}

func (d deliverySource) DeserializeStr(v Visitor) error {
	return d.deliver(v)
}

func (d deliverySource) DeserializeBytes(v Visitor) error {
	return d.deliver(v)
}

func (d deliverySource) deliver(v Visitor) error {
	if d.Err != nil {
		return d.Err
	}

	switch d.Delivery {
	case deliverBorrowed:
		return v.VisitBorrowed(d.Data)
	case deliverTransient:
		return v.VisitTransient(d.Data)
	case deliverOwned:
		return v.VisitOwned(d.Data)
	default:
		return nil
	}
}

// recordingSerializer records every call it receives.
type recordingSerializer struct {
	Calls []string
}

func (r *recordingSerializer) SerializeStr(value string) error {
	r.Calls = append(r.Calls, "str:"+value)
	return nil
}

func (r *recordingSerializer) SerializeBytes(value []byte) error {
	r.Calls = append(r.Calls, "bytes:"+string(value))
	return nil
}

func requireWithin(t *testing.T, ptr unsafe.Pointer, buf []byte) {
	t.Helper()

	start := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	end := start + uintptr(len(buf))

	require.GreaterOrEqual(t, uintptr(ptr), start, "pointer before buffer")
	require.Less(t, uintptr(ptr), end, "pointer after buffer")
}

func requireOutside(t *testing.T, ptr unsafe.Pointer, buf []byte) {
	t.Helper()

	start := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	end := start + uintptr(len(buf))

	require.False(t, uintptr(ptr) >= start && uintptr(ptr) < end, "pointer within buffer")
}

func strData(s Str) unsafe.Pointer {
	return unsafe.Pointer(unsafe.StringData(s.String()))
}

func bytesData(b Bytes) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b.Bytes()))
}

func unsafePointerOf(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}
