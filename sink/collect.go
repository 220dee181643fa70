package sink

import "github.com/viant/heaply"

type (
	//Entry represents one collected field value
	Entry struct {
		Field *heaply.FieldDescriptor
		Value interface{}
	}

	//Recorder collects the visit stream for programmatic use.
	//A Recorder is not safe for concurrent use; concurrent workers each
	//own their own instance.
	Recorder struct {
		Identity  heaply.Ref
		Size      int
		Entries   []Entry
		prologues int
		epilogues int
	}
)

// NewRecorder creates a recorder sink
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Prologue captures the object identity and size
func (r *Recorder) Prologue(identity heaply.Ref, size int) {
	r.Identity = identity
	r.Size = size
	r.Entries = nil
	r.prologues++
}

// Field captures one decoded field value
func (r *Recorder) Field(field *heaply.FieldDescriptor, value interface{}) {
	r.Entries = append(r.Entries, Entry{Field: field, Value: value})
}

// Epilogue captures the end of the visit
func (r *Recorder) Epilogue() {
	r.epilogues++
}

// Balanced returns true if every prologue has a matching epilogue
func (r *Recorder) Balanced() bool {
	return r.prologues == r.epilogues
}

// Visits returns the number of completed visits
func (r *Recorder) Visits() int {
	return r.epilogues
}

// Names returns collected field names in arrival order
func (r *Recorder) Names() []string {
	var result = make([]string, 0, len(r.Entries))
	for _, entry := range r.Entries {
		result = append(result, entry.Field.Name)
	}
	return result
}
