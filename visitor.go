// Package heaply decodes the fields of single heap objects in a foreign
// process or memory image and streams (descriptor, value) pairs to a Sink.
// A field catalog supplies the layout, an ObjectHandle supplies the bytes;
// this package only decodes, it never follows references and never mutates
// foreign memory.
package heaply

import (
	"errors"
	"math"
)

type (
	//Sink represents a consumer of decoded field values; rendering and
	//filtering policy belongs here, not in the Visitor. Prologue and
	//Epilogue always fire as a matched pair, even for zero field objects.
	Sink interface {
		//Prologue signals the start of one object visit
		Prologue(identity Ref, size int)

		//Field receives one decoded field value in catalog order
		Field(field *FieldDescriptor, value interface{})

		//Epilogue signals the end of the visit
		Epilogue()
	}

	//Visitor decodes object fields against one bound handle at a time.
	//A Visitor is not safe for concurrent use; concurrent workers each
	//own their own instance.
	Visitor struct {
		sink     Sink
		platform *Platform
		handle   ObjectHandle
		active   bool
	}
)

// New creates a visitor forwarding to the supplied sink. The platform
// option is copied on construction, so one Platform value can configure
// many concurrent visitors.
func New(sink Sink, opts ...Option) *Visitor {
	result := &Visitor{sink: sink}
	Options(opts).Apply(result)
	result.platform = result.platform.normalized()
	return result
}

// Platform returns the visitor platform model
func (v *Visitor) Platform() *Platform {
	return v.platform
}

// Bind associates the visitor with one object handle, discarding any prior
// session state. Returns ErrInvalidHandle when the handle is nil or its
// backing memory cannot be read.
func (v *Visitor) Bind(handle ObjectHandle) error {
	v.handle = nil
	v.active = false
	if handle == nil {
		return ErrInvalidHandle
	}
	if size := handle.Size(); size < 0 {
		return ErrInvalidHandle
	} else if size > 0 {
		//probe the first byte so an unreadable handle fails at bind time
		if _, err := handle.ReadBytes(0, 1); err != nil {
			return errorsJoin(ErrInvalidHandle, err)
		}
	}
	v.handle = handle
	return nil
}

// Begin opens the visit bracket, firing the sink prologue with the bound
// object identity and byte size. Must be called exactly once per bound
// object before any field decode.
func (v *Visitor) Begin() error {
	if v.handle == nil {
		return ErrSessionNotActive
	}
	v.active = true
	v.sink.Prologue(v.handle.Identity(), v.handle.Size())
	return nil
}

// End closes the visit bracket, firing the sink epilogue. Callers run End
// on every exit path so prologue and epilogue always pair up.
func (v *Visitor) End() error {
	if !v.active {
		return ErrSessionNotActive
	}
	v.active = false
	v.sink.Epilogue()
	return nil
}

// VisitField decodes one field of the bound object and forwards the
// decoded value to the sink. Fields must be supplied in catalog order;
// the visitor introduces no reordering or buffering. Any failure is
// returned as a *FieldError naming the offending descriptor.
func (v *Visitor) VisitField(field *FieldDescriptor) error {
	if !v.active {
		return fieldError(field, ErrSessionNotActive)
	}
	if !field.Kind.IsValid() {
		return fieldError(field, ErrUnsupportedKind)
	}
	width := field.Kind.Width(v.platform)
	if field.Offset < 0 || field.Offset+width > v.handle.Size() {
		return fieldError(field, ErrOutOfBounds)
	}
	data, err := v.handle.ReadBytes(field.Offset, width)
	if err != nil || len(data) < width {
		return fieldError(field, errorsJoin(ErrHandleRead, err))
	}
	v.sink.Field(field, v.decode(field.Kind, data))
	return nil
}

// Visit runs one complete bracketed visit: prologue, every field in the
// supplied order, epilogue. The epilogue fires even when a field decode
// fails mid way; the first failure aborts the remaining fields and is
// returned to the caller.
func (v *Visitor) Visit(fields []*FieldDescriptor) error {
	if err := v.Begin(); err != nil {
		return err
	}
	defer v.End()
	for _, field := range fields {
		if err := v.VisitField(field); err != nil {
			return err
		}
	}
	return nil
}

// decode is the single dispatch point over the closed kind enumeration;
// callers have already validated the kind and bounds.
func (v *Visitor) decode(kind Kind, data []byte) interface{} {
	order := v.platform.ByteOrder
	switch kind {
	case KindReference:
		return Ref(v.readWord(data))
	case KindCompressedReference:
		return v.platform.Widen(order.Uint32(data))
	case KindChar:
		return order.Uint16(data)
	case KindByte:
		return int8(data[0])
	case KindBoolean:
		return data[0] != 0
	case KindShort:
		return int16(order.Uint16(data))
	case KindInt:
		return int32(order.Uint32(data))
	case KindLong:
		return int64(order.Uint64(data))
	case KindFloat:
		return math.Float32frombits(order.Uint32(data))
	case KindDouble:
		return math.Float64frombits(order.Uint64(data))
	case KindPlatformInt:
		return v.readWord(data)
	}
	return nil
}

func (v *Visitor) readWord(data []byte) uint64 {
	if v.platform.PointerSize == 4 {
		return uint64(v.platform.ByteOrder.Uint32(data))
	}
	return v.platform.ByteOrder.Uint64(data)
}

func errorsJoin(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, cause)
}
