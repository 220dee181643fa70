package sink

import "github.com/viant/tagly/format/text"

// nameTransformer adjusts field display names before rendering
type nameTransformer interface {
	Transform(fieldName string) string
}

type defaultNameTransformer struct{}

func (d defaultNameTransformer) Transform(fieldName string) string {
	return fieldName
}

type caseFormatTransformer struct {
	caseFormat text.CaseFormat
}

func (c caseFormatTransformer) Transform(fieldName string) string {
	if c.caseFormat == "" {
		return fieldName
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, c.caseFormat)
}
