package sink

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/heaply"
	"github.com/viant/heaply/mem"
	"github.com/viant/tagly/format/text"
)

func TestJSON(t *testing.T) {
	platform := &heaply.Platform{PointerSize: 8, ByteOrder: binary.LittleEndian, RefBase: 0x800000000, RefShift: 3}
	data := []byte{
		0x2A, 0x00, 0x00, 0x00, // int 42
		0x10, 0x00, 0x00, 0x00, // compressed ref
		0x01, // boolean
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	fields := []*heaply.FieldDescriptor{
		heaply.NewFieldDescriptor(heaply.KindInt, 0, "HitCount"),
		heaply.NewFieldDescriptor(heaply.KindCompressedReference, 4, "Next"),
		{Kind: heaply.KindBoolean, Offset: 8, Name: "markWord", Internal: true},
	}

	buffer := new(bytes.Buffer)
	jsonSink := NewJSON(buffer, WithJSONCaseFormat(text.CaseFormatLowerCamel))
	visitor := heaply.New(jsonSink, heaply.WithPlatform(platform))
	assert.Nil(t, visitor.Bind(mem.NewObject(0x1000, data)))
	assert.Nil(t, visitor.Visit(fields))
	assert.Nil(t, jsonSink.Err())

	var report struct {
		ID     string `json:"id"`
		Size   int    `json:"size"`
		Fields []struct {
			Name     string      `json:"name"`
			Kind     string      `json:"kind"`
			Value    interface{} `json:"value"`
			Internal bool        `json:"internal"`
		} `json:"fields"`
	}
	assert.Nil(t, json.Unmarshal(buffer.Bytes(), &report))
	assert.EqualValues(t, "0x1000", report.ID)
	assert.EqualValues(t, 16, report.Size)
	if !assert.EqualValues(t, 3, len(report.Fields)) {
		return
	}
	assert.EqualValues(t, "hitCount", report.Fields[0].Name)
	assert.EqualValues(t, "int", report.Fields[0].Kind)
	assert.EqualValues(t, 42, report.Fields[0].Value)
	assert.EqualValues(t, "compressedReference", report.Fields[1].Kind)
	assert.EqualValues(t, heaply.Ref(0x800000000+0x10<<3).String(), report.Fields[1].Value)
	assert.EqualValues(t, true, report.Fields[2].Value)
	assert.True(t, report.Fields[2].Internal)
}

func TestJSON_ZeroFields(t *testing.T) {
	buffer := new(bytes.Buffer)
	jsonSink := NewJSON(buffer)
	visitor := heaply.New(jsonSink)
	assert.Nil(t, visitor.Bind(mem.NewObject(0x20, nil)))
	assert.Nil(t, visitor.Visit(nil))
	assert.Nil(t, jsonSink.Err())

	var report map[string]interface{}
	assert.Nil(t, json.Unmarshal(buffer.Bytes(), &report))
	assert.EqualValues(t, "0x20", report["id"])
}
