package heaply

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidHandle bind received a nil or unreadable handle
	ErrInvalidHandle = errors.New("invalid object handle")
	//ErrSessionNotActive a decode was attempted outside a bound visit
	ErrSessionNotActive = errors.New("visit session not active")
	//ErrOutOfBounds field offset and width exceed the object size
	ErrOutOfBounds = errors.New("field out of object bounds")
	//ErrUnsupportedKind catalog produced a kind outside the enumeration
	ErrUnsupportedKind = errors.New("unsupported field kind")
	//ErrHandleRead the foreign memory read failed
	ErrHandleRead = errors.New("object handle read failed")
)

// FieldError represents a decode failure for one field, carrying the
// offending descriptor name and kind.
type FieldError struct {
	Name string
	Kind Kind
	Err  error
}

// Error returns error message
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q (%s): %v", e.Name, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field *FieldDescriptor, err error) *FieldError {
	return &FieldError{Name: field.Name, Kind: field.Kind, Err: err}
}
