package heaply

// FieldDescriptor represents one field of an object layout: its semantic
// kind, byte offset within the object backing storage and display name.
// Descriptors are produced by a catalog and are read only inputs to a Visitor.
type FieldDescriptor struct {
	Kind   Kind
	Offset int
	Name   string
	//Internal marks VM bookkeeping fields as opposed to user level state;
	//whether to surface them is sink policy
	Internal bool
}

// NewFieldDescriptor creates a field descriptor
func NewFieldDescriptor(kind Kind, offset int, name string) *FieldDescriptor {
	return &FieldDescriptor{Kind: kind, Offset: offset, Name: name}
}
