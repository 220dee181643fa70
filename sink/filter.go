package sink

import "github.com/viant/heaply"

// Filter forwards to a delegate sink only fields passing a predicate;
// prologue and epilogue are always forwarded so brackets stay paired.
type Filter struct {
	delegate  heaply.Sink
	predicate func(field *heaply.FieldDescriptor) bool
}

// NewFilter creates a filtering sink
func NewFilter(delegate heaply.Sink, predicate func(field *heaply.FieldDescriptor) bool) *Filter {
	return &Filter{delegate: delegate, predicate: predicate}
}

// UserFields returns a predicate rejecting VM internal fields
func UserFields() func(field *heaply.FieldDescriptor) bool {
	return func(field *heaply.FieldDescriptor) bool {
		return !field.Internal
	}
}

// Prologue forwards to the delegate
func (f *Filter) Prologue(identity heaply.Ref, size int) {
	f.delegate.Prologue(identity, size)
}

// Field forwards fields passing the predicate
func (f *Filter) Field(field *heaply.FieldDescriptor, value interface{}) {
	if !f.predicate(field) {
		return
	}
	f.delegate.Field(field, value)
}

// Epilogue forwards to the delegate
func (f *Filter) Epilogue() {
	f.delegate.Epilogue()
}
