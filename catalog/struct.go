package catalog

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/viant/heaply"
	"github.com/viant/xunsafe"
)

// FieldTag adjusts how a struct field is catalogued:
// `heaply:"-"` skips the field, `heaply:"name=alias"` renames it,
// `heaply:"internal"` marks it as VM bookkeeping.
const FieldTag = "heaply"

// OfStruct derives a descriptor sequence from a Go struct layout, in
// declaration order. Field types with no flat scalar representation
// (strings, slices, arrays, interfaces, nested structs) are skipped;
// following them is object graph traversal, which this module does not do.
func OfStruct(rType reflect.Type) ([]*heaply.FieldDescriptor, error) {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, got %s", rType.Kind())
	}
	xStruct := xunsafe.NewStruct(rType)
	var result = make([]*heaply.FieldDescriptor, 0, len(xStruct.Fields))
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		kind, ok := kindOf(xField.Type)
		if !ok {
			continue
		}
		name, internal, skip := parseFieldTag(xField.Tag)
		if skip {
			continue
		}
		if name == "" {
			name = xField.Name
		}
		result = append(result, &heaply.FieldDescriptor{
			Kind:     kind,
			Offset:   int(xField.Offset),
			Name:     name,
			Internal: internal || !isExported(xField.Name),
		})
	}
	return result, nil
}

// Structs represents a catalog over registered Go struct types
type Structs struct {
	types map[string]reflect.Type
}

// NewStructs creates a struct type catalog
func NewStructs() *Structs {
	return &Structs{types: make(map[string]reflect.Type)}
}

// Register associates a type key with a struct type
func (s *Structs) Register(key string, rType reflect.Type) {
	s.types[key] = rType
}

// Fields derives descriptors for a registered type
func (s *Structs) Fields(key string) ([]*heaply.FieldDescriptor, error) {
	rType, ok := s.types[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, key)
	}
	return OfStruct(rType)
}

func parseFieldTag(tag reflect.StructTag) (name string, internal, skip bool) {
	value, ok := tag.Lookup(FieldTag)
	if !ok {
		return "", false, false
	}
	if value == "-" {
		return "", false, true
	}
	for _, fragment := range strings.Split(value, ",") {
		switch {
		case fragment == "internal":
			internal = true
		case strings.HasPrefix(fragment, "name="):
			name = fragment[len("name="):]
		}
	}
	return name, internal, false
}

func kindOf(rType reflect.Type) (heaply.Kind, bool) {
	switch rType.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return heaply.KindReference, true
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return heaply.KindPlatformInt, true
	case reflect.Bool:
		return heaply.KindBoolean, true
	case reflect.Int8, reflect.Uint8:
		return heaply.KindByte, true
	case reflect.Int16:
		return heaply.KindShort, true
	case reflect.Uint16:
		return heaply.KindChar, true
	case reflect.Int32, reflect.Uint32:
		return heaply.KindInt, true
	case reflect.Int64, reflect.Uint64:
		return heaply.KindLong, true
	case reflect.Float32:
		return heaply.KindFloat, true
	case reflect.Float64:
		return heaply.KindDouble, true
	}
	return 0, false
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
