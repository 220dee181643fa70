package heaply

// Kind represents the semantic kind of an object field
type Kind int

const (
	//KindReference full width reference field
	KindReference Kind = iota
	//KindCompressedReference narrow encoded reference, widened via Platform
	KindCompressedReference
	//KindChar UTF-16 code unit
	KindChar
	//KindByte signed 8-bit integer
	KindByte
	//KindBoolean single byte flag
	KindBoolean
	//KindShort signed 16-bit integer
	KindShort
	//KindInt signed 32-bit integer
	KindInt
	//KindLong signed 64-bit integer
	KindLong
	//KindFloat IEEE-754 single precision
	KindFloat
	//KindDouble IEEE-754 double precision
	KindDouble
	//KindPlatformInt word sized unsigned integer of the foreign process
	KindPlatformInt

	kindLimit
)

var kindNames = map[Kind]string{
	KindReference:           "reference",
	KindCompressedReference: "compressedReference",
	KindChar:                "char",
	KindByte:                "byte",
	KindBoolean:             "boolean",
	KindShort:               "short",
	KindInt:                 "int",
	KindLong:                "long",
	KindFloat:               "float",
	KindDouble:              "double",
	KindPlatformInt:         "platformInt",
}

// IsValid returns true if kind belongs to the closed enumeration
func (k Kind) IsValid() bool {
	return k >= KindReference && k < kindLimit
}

// Width returns kind byte width under the supplied platform model
func (k Kind) Width(platform *Platform) int {
	switch k {
	case KindReference, KindPlatformInt:
		return platform.PointerSize
	case KindCompressedReference, KindInt, KindFloat:
		return 4
	case KindChar, KindShort:
		return 2
	case KindByte, KindBoolean:
		return 1
	case KindLong, KindDouble:
		return 8
	}
	return 0
}

// String returns kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
