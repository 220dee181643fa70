package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/heaply"
)

func TestImage(t *testing.T) {
	image := NewImage()
	assert.Nil(t, image.AddSegment(0x1000, []byte{1, 2, 3, 4}))
	assert.Nil(t, image.AddSegment(0x2000, []byte{5, 6, 7, 8}))

	var testCases = []struct {
		description string
		addr        uint64
		width       int
		expect      []byte
		expectErr   bool
	}{
		{description: "read within first segment", addr: 0x1001, width: 2, expect: []byte{2, 3}},
		{description: "read within second segment", addr: 0x2000, width: 4, expect: []byte{5, 6, 7, 8}},
		{description: "read before any segment", addr: 0x500, width: 1, expectErr: true},
		{description: "read in the gap between segments", addr: 0x1800, width: 1, expectErr: true},
		{description: "read past the last segment", addr: 0x3000, width: 1, expectErr: true},
		{description: "read crossing a segment end", addr: 0x1003, width: 2, expectErr: true},
	}
	for _, testCase := range testCases {
		data, err := image.ReadBytes(testCase.addr, testCase.width)
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrUnmapped, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, data, testCase.description)
	}
}

func TestImage_OverlappingSegment(t *testing.T) {
	image := NewImage()
	assert.Nil(t, image.AddSegment(0x1000, make([]byte, 16)))
	assert.NotNil(t, image.AddSegment(0x1008, make([]byte, 16)))
	assert.Nil(t, image.AddSegment(0x1010, make([]byte, 16)))
}

func TestImage_SegmentAddressWrap(t *testing.T) {
	image := NewImage()
	//a segment whose end wraps the 64 bit address space is rejected,
	//not silently admitted past the overlap and bounds checks
	assert.NotNil(t, image.AddSegment(^uint64(0)-7, make([]byte, 16)))
	//ending exactly at the top wraps the exclusive end to zero
	assert.NotNil(t, image.AddSegment(^uint64(0)-15, make([]byte, 16)))
	assert.Nil(t, image.AddSegment(0x1000, make([]byte, 16)))
	_, err := image.ReadBytes(^uint64(0)-7, 1)
	assert.ErrorIs(t, err, ErrUnmapped)
}

func TestImage_ObjectAt(t *testing.T) {
	image := NewImage()
	assert.Nil(t, image.AddSegment(0x1000, []byte{0x2A, 0, 0, 0, 7, 0, 0, 0}))

	object, err := image.ObjectAt(0x1000, 8)
	assert.Nil(t, err)
	assert.EqualValues(t, heaply.Ref(0x1000), object.Identity())
	assert.EqualValues(t, 8, object.Size())

	data, err := object.ReadBytes(4, 1)
	assert.Nil(t, err)
	assert.EqualValues(t, []byte{7}, data)

	_, err = object.ReadBytes(6, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = image.ObjectAt(0x1004, 8)
	assert.ErrorIs(t, err, ErrUnmapped)
}

func TestObject(t *testing.T) {
	object := NewObject(0x42, []byte{1, 2, 3})
	assert.EqualValues(t, heaply.Ref(0x42), object.Identity())
	assert.EqualValues(t, 3, object.Size())

	data, err := object.ReadBytes(1, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, []byte{2, 3}, data)

	_, err = object.ReadBytes(-1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = object.ReadBytes(2, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
