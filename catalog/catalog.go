// Package catalog resolves object type keys to ordered field descriptor
// sequences. Implementations must be stable and deterministic per key
// within one attach session.
package catalog

import (
	"errors"
	"fmt"

	"github.com/viant/heaply"
)

// ErrUnknownType no descriptors are registered for a type key
var ErrUnknownType = errors.New("unknown type")

// Catalog represents a field layout resolver
type Catalog interface {
	//Fields returns the descriptor sequence for a type key, in layout order
	Fields(key string) ([]*heaply.FieldDescriptor, error)
}

// Static represents a fixed type key to descriptor table
type Static map[string][]*heaply.FieldDescriptor

// Fields returns registered descriptors
func (s Static) Fields(key string) ([]*heaply.FieldDescriptor, error) {
	fields, ok := s[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, key)
	}
	return fields, nil
}
