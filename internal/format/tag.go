package format

import "fmt"

// Tag is the one-byte type selector written before every value.
// Tags with the high bit set are containers or references added in later
// revisions of the format.
type Tag uint8

const (
	TagNone   Tag = 0
	TagBool   Tag = 1
	TagI8     Tag = 2
	TagU8     Tag = 3
	TagI16    Tag = 4
	TagU16    Tag = 5
	TagI32    Tag = 6
	TagU32    Tag = 7
	TagI64    Tag = 8
	TagU64    Tag = 9
	TagF32    Tag = 10
	TagVec2   Tag = 11
	TagVec3   Tag = 12
	TagVec4   Tag = 13
	TagMtx44  Tag = 14
	TagColor  Tag = 15
	TagString Tag = 16
	TagHash   Tag = 17
	TagFile   Tag = 18

	TagList    Tag = 0x80 | 0
	TagList2   Tag = 0x80 | 1 // same wire shape as TagList
	TagPointer Tag = 0x80 | 2
	TagEmbed   Tag = 0x80 | 3
	TagLink    Tag = 0x80 | 4
	TagOption  Tag = 0x80 | 5
	TagMap     Tag = 0x80 | 6
	TagFlag    Tag = 0x80 | 7 // same wire shape as TagBool

	// ComplexFlag marks the container/reference tag family.
	ComplexFlag Tag = 0x80
)

var tagNames = map[Tag]string{
	TagNone:    "none",
	TagBool:    "bool",
	TagI8:      "i8",
	TagU8:      "u8",
	TagI16:     "i16",
	TagU16:     "u16",
	TagI32:     "i32",
	TagU32:     "u32",
	TagI64:     "i64",
	TagU64:     "u64",
	TagF32:     "f32",
	TagVec2:    "vec2",
	TagVec3:    "vec3",
	TagVec4:    "vec4",
	TagMtx44:   "mtx44",
	TagColor:   "rgba",
	TagString:  "string",
	TagHash:    "hash",
	TagFile:    "file",
	TagList:    "list",
	TagList2:   "list2",
	TagPointer: "pointer",
	TagEmbed:   "embed",
	TagLink:    "link",
	TagOption:  "option",
	TagMap:     "map",
	TagFlag:    "flag",
}

// Valid reports whether t is a tag this package knows the wire width of.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

// IsComplex reports whether t belongs to the high-bit tag family.
func (t Tag) IsComplex() bool {
	return t&ComplexFlag != 0
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(0x%02x)", uint8(t))
}

// FixedSize returns the payload size of tags whose encoding has a constant
// width, or ok = false for variable-width tags.
func (t Tag) FixedSize() (size int, ok bool) {
	switch t {
	case TagNone:
		return 0, true
	case TagBool, TagFlag, TagI8, TagU8:
		return 1, true
	case TagI16, TagU16:
		return 2, true
	case TagI32, TagU32, TagF32, TagHash, TagLink:
		return 4, true
	case TagI64, TagU64, TagFile:
		return 8, true
	case TagVec2:
		return SizeVec2, true
	case TagVec3:
		return SizeVec3, true
	case TagVec4:
		return SizeVec4, true
	case TagMtx44:
		return SizeMtx44, true
	case TagColor:
		return SizeColor, true
	default:
		return 0, false
	}
}
