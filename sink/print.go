package sink

import (
	"fmt"
	"io"
	"unicode"

	"github.com/viant/heaply"
	"github.com/viant/tagly/format/text"
)

type (
	//Printer represents the reference sink rendering decoded fields for
	//human inspection, one object per prologue/epilogue bracket.
	//A Printer is not safe for concurrent use.
	Printer struct {
		writer       io.Writer
		names        nameTransformer
		skipInternal bool
		err          error
	}

	//PrintOption represents a printer option
	PrintOption func(p *Printer)
)

// WithSkipInternal suppresses VM internal fields
func WithSkipInternal() PrintOption {
	return func(p *Printer) {
		p.skipInternal = true
	}
}

// WithCaseFormat formats field display names
func WithCaseFormat(caseFormat text.CaseFormat) PrintOption {
	return func(p *Printer) {
		p.names = caseFormatTransformer{caseFormat: caseFormat}
	}
}

// NewPrinter creates a printer sink writing to the supplied writer
func NewPrinter(writer io.Writer, opts ...PrintOption) *Printer {
	result := &Printer{writer: writer, names: defaultNameTransformer{}}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Prologue prints the object identity and byte size
func (p *Printer) Prologue(identity heaply.Ref, size int) {
	p.printf("%v (object size = %d)\n", identity, size)
}

// Field prints one decoded field value
func (p *Printer) Field(field *heaply.FieldDescriptor, value interface{}) {
	if field.Internal && p.skipInternal {
		return
	}
	p.printf("  %s = %s\n", p.names.Transform(field.Name), p.render(field.Kind, value))
}

// Epilogue terminates the object section
func (p *Printer) Epilogue() {
	p.printf("\n")
}

// Err returns the first write error encountered
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) render(kind heaply.Kind, value interface{}) string {
	switch actual := value.(type) {
	case heaply.Ref:
		return actual.String()
	case uint16:
		if kind == heaply.KindChar {
			if r := rune(actual); unicode.IsLetter(r) || unicode.IsDigit(r) {
				return string(r)
			}
			return fmt.Sprintf("%d", actual)
		}
	}
	return fmt.Sprintf("%v", value)
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.writer, format, args...); err != nil {
		p.err = err
	}
}
