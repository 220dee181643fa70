package heaply

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatform_NarrowWidenRoundTrip(t *testing.T) {
	var testCases = []struct {
		description string
		platform    *Platform
		ref         Ref
		expectOk    bool
	}{
		{
			description: "aligned reference above base round trips",
			platform:    &Platform{RefBase: 0x800000000, RefShift: 3},
			ref:         0x800000000 + 8*12345,
			expectOk:    true,
		},
		{
			description: "zero base with shift",
			platform:    &Platform{RefShift: 3},
			ref:         0x7FFFFFFF8,
			expectOk:    true,
		},
		{
			description: "nil reference round trips to nil",
			platform:    &Platform{RefBase: 0x800000000, RefShift: 3},
			ref:         0,
			expectOk:    true,
		},
		{
			description: "reference below base is not representable",
			platform:    &Platform{RefBase: 0x800000000, RefShift: 3},
			ref:         0x100,
			expectOk:    false,
		},
		{
			description: "misaligned reference is not representable",
			platform:    &Platform{RefBase: 0x800000000, RefShift: 3},
			ref:         0x800000000 + 3,
			expectOk:    false,
		},
		{
			description: "reference beyond narrow range is not representable",
			platform:    &Platform{RefShift: 0},
			ref:         1 << 40,
			expectOk:    false,
		},
	}

	for _, testCase := range testCases {
		narrow, ok := testCase.platform.Narrow(testCase.ref)
		assert.EqualValues(t, testCase.expectOk, ok, testCase.description)
		if !ok {
			continue
		}
		assert.EqualValues(t, testCase.ref, testCase.platform.Widen(narrow), testCase.description)
	}
}

func TestLocalPlatform(t *testing.T) {
	platform := LocalPlatform()
	assert.EqualValues(t, 8, platform.PointerSize)
	assert.NotNil(t, platform.ByteOrder)
	assert.EqualValues(t, Ref(0x1000), platform.Widen(0x1000))
}

func TestNew_PlatformCopied(t *testing.T) {
	shared := &Platform{RefBase: 0x800000000, RefShift: 3}
	visitor := New(&captureSink{}, WithPlatform(shared))

	//defaults are applied to the visitor's own copy
	assert.EqualValues(t, 8, visitor.Platform().PointerSize)
	assert.NotNil(t, visitor.Platform().ByteOrder)
	assert.EqualValues(t, Ref(0x800000000), visitor.Platform().RefBase)

	//the supplied value is never written, so it can configure
	//concurrent visitor constructions
	assert.EqualValues(t, 0, shared.PointerSize)
	assert.Nil(t, shared.ByteOrder)
}

func TestNew_NilPlatform(t *testing.T) {
	visitor := New(&captureSink{}, WithPlatform(nil))
	assert.EqualValues(t, 8, visitor.Platform().PointerSize)
	assert.NotNil(t, visitor.Platform().ByteOrder)
}

func TestKind_Width(t *testing.T) {
	p64 := &Platform{PointerSize: 8, ByteOrder: binary.LittleEndian}
	p32 := &Platform{PointerSize: 4, ByteOrder: binary.LittleEndian}

	var testCases = []struct {
		kind    Kind
		width64 int
		width32 int
	}{
		{KindReference, 8, 4},
		{KindCompressedReference, 4, 4},
		{KindChar, 2, 2},
		{KindByte, 1, 1},
		{KindBoolean, 1, 1},
		{KindShort, 2, 2},
		{KindInt, 4, 4},
		{KindLong, 8, 8},
		{KindFloat, 4, 4},
		{KindDouble, 8, 8},
		{KindPlatformInt, 8, 4},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.width64, testCase.kind.Width(p64), testCase.kind.String())
		assert.EqualValues(t, testCase.width32, testCase.kind.Width(p32), testCase.kind.String())
		assert.True(t, testCase.kind.IsValid(), testCase.kind.String())
	}
	assert.False(t, Kind(99).IsValid())
	assert.EqualValues(t, "unknown", Kind(99).String())
	assert.EqualValues(t, 0, Kind(99).Width(p64))
}
