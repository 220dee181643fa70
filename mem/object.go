package mem

import (
	"fmt"

	"github.com/viant/heaply"
)

// Object represents an object handle over a byte slice, either extracted
// from a snapshot image or supplied directly.
type Object struct {
	identity uint64
	data     []byte
}

// NewObject creates a byte backed object handle
func NewObject(identity heaply.Ref, data []byte) *Object {
	return &Object{identity: uint64(identity), data: data}
}

// Identity returns the object reference identity
func (o *Object) Identity() heaply.Ref {
	return heaply.Ref(o.identity)
}

// Size returns object byte size
func (o *Object) Size() int {
	return len(o.data)
}

// ReadBytes reads width bytes at offset relative to the object base
func (o *Object) ReadBytes(offset, width int) ([]byte, error) {
	if offset < 0 || width < 0 || offset+width > len(o.data) {
		return nil, fmt.Errorf("%w: %d+%d of %d", ErrOutOfRange, offset, width, len(o.data))
	}
	return o.data[offset : offset+width], nil
}
