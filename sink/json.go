package sink

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/viant/heaply"
	"github.com/viant/tagly/format/text"
)

type (
	//JSON represents a sink encoding one JSON object per visit.
	//A JSON sink is not safe for concurrent use.
	JSON struct {
		writer       io.Writer
		names        nameTransformer
		skipInternal bool
		report       objectReport
		err          error
	}

	//JSONOption represents a JSON sink option
	JSONOption func(j *JSON)

	objectReport struct {
		identity heaply.Ref
		size     int
		fields   fieldReports
	}

	fieldReport struct {
		name     string
		kind     heaply.Kind
		value    interface{}
		internal bool
	}

	fieldReports []*fieldReport
)

// WithJSONSkipInternal suppresses VM internal fields
func WithJSONSkipInternal() JSONOption {
	return func(j *JSON) {
		j.skipInternal = true
	}
}

// WithJSONCaseFormat formats field names
func WithJSONCaseFormat(caseFormat text.CaseFormat) JSONOption {
	return func(j *JSON) {
		j.names = caseFormatTransformer{caseFormat: caseFormat}
	}
}

// NewJSON creates a JSON sink writing one line per visited object
func NewJSON(writer io.Writer, opts ...JSONOption) *JSON {
	result := &JSON{writer: writer, names: defaultNameTransformer{}}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Prologue starts a new object report
func (j *JSON) Prologue(identity heaply.Ref, size int) {
	j.report = objectReport{identity: identity, size: size}
}

// Field appends one decoded field to the pending report
func (j *JSON) Field(field *heaply.FieldDescriptor, value interface{}) {
	if field.Internal && j.skipInternal {
		return
	}
	j.report.fields = append(j.report.fields, &fieldReport{
		name:     j.names.Transform(field.Name),
		kind:     field.Kind,
		value:    value,
		internal: field.Internal,
	})
}

// Epilogue encodes and flushes the pending report
func (j *JSON) Epilogue() {
	if j.err != nil {
		return
	}
	enc := gojay.NewEncoder(j.writer)
	if err := enc.EncodeObject(&j.report); err != nil {
		j.err = err
		return
	}
	if _, err := j.writer.Write([]byte{'\n'}); err != nil {
		j.err = err
	}
}

// Err returns the first encode error encountered
func (j *JSON) Err() error {
	return j.err
}

// MarshalJSONObject encodes the object report
func (o *objectReport) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("id", o.identity.String())
	enc.IntKey("size", o.size)
	enc.ArrayKey("fields", o.fields)
}

// IsNil returns true on a nil report
func (o *objectReport) IsNil() bool {
	return o == nil
}

// MarshalJSONArray encodes collected fields
func (f fieldReports) MarshalJSONArray(enc *gojay.Encoder) {
	for _, report := range f {
		enc.Object(report)
	}
}

// IsNil returns true on an empty collection
func (f fieldReports) IsNil() bool {
	return len(f) == 0
}

// MarshalJSONObject encodes one field report
func (f *fieldReport) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", f.name)
	enc.StringKey("kind", f.kind.String())
	switch actual := f.value.(type) {
	case heaply.Ref:
		enc.StringKey("value", actual.String())
	case bool:
		enc.BoolKey("value", actual)
	case int8:
		enc.IntKey("value", int(actual))
	case int16:
		enc.IntKey("value", int(actual))
	case uint16:
		enc.IntKey("value", int(actual))
	case int32:
		enc.IntKey("value", int(actual))
	case int64:
		enc.Int64Key("value", actual)
	case uint64:
		enc.Uint64Key("value", actual)
	case float32:
		enc.Float32Key("value", actual)
	case float64:
		enc.FloatKey("value", actual)
	default:
		enc.StringKey("value", fmt.Sprintf("%v", actual))
	}
	if f.internal {
		enc.BoolKey("internal", true)
	}
}

// IsNil returns true on a nil report
func (f *fieldReport) IsNil() bool {
	return f == nil
}
