package heaply

import "fmt"

// Ref represents an opaque object reference identity in the foreign
// address space; it is forwarded for display and identity comparison,
// never dereferenced by this package.
type Ref uint64

// String returns hex representation
func (r Ref) String() string {
	return fmt.Sprintf("0x%x", uint64(r))
}

// ObjectHandle represents one heap object in a foreign process or memory
// image. A handle is borrowed by a Visitor for the lifetime of one visit;
// the underlying memory is read only and owned by the handle provider.
type ObjectHandle interface {
	//Identity returns the object reference identity
	Identity() Ref

	//Size returns object byte size
	Size() int

	//ReadBytes reads width bytes at offset relative to the object base;
	//the read may block on a remote transport
	ReadBytes(offset, width int) ([]byte, error)
}
