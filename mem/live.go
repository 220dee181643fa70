package mem

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/heaply"
	"github.com/viant/xunsafe"
)

// LiveObject represents an object handle over a live local Go value;
// its identity is the value address. Pairs with catalog.OfStruct for
// self inspection. The handle keeps the value reachable for its own
// lifetime; the viewed memory may still change under a concurrent writer.
type LiveObject struct {
	value interface{}
	ptr   unsafe.Pointer
	size  int
}

// LiveObjectOf creates a handle over a pointer to a struct value
func LiveObjectOf(value interface{}) (*LiveObject, error) {
	rType := reflect.TypeOf(value)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected pointer to struct, got %T", value)
	}
	return &LiveObject{
		value: value,
		ptr:   xunsafe.AsPointer(value),
		size:  int(rType.Elem().Size()),
	}, nil
}

// Identity returns the value address
func (l *LiveObject) Identity() heaply.Ref {
	return heaply.Ref(uintptr(l.ptr))
}

// Size returns the struct byte size
func (l *LiveObject) Size() int {
	return l.size
}

// ReadBytes reads width bytes at offset within the struct storage
func (l *LiveObject) ReadBytes(offset, width int) ([]byte, error) {
	if offset < 0 || width < 0 || offset+width > l.size {
		return nil, fmt.Errorf("%w: %d+%d of %d", ErrOutOfRange, offset, width, l.size)
	}
	view := unsafe.Slice((*byte)(l.ptr), l.size)
	return view[offset : offset+width], nil
}
