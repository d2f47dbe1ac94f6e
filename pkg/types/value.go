package types

import (
	"fmt"
	"maps"
	"slices"
)

// Kind enumerates the closed set of value kinds a document can carry.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindSigned
	KindUnsigned
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindMtx44
	KindColor
	KindString
	KindHash
	KindLink
	KindFile
	KindList
	KindMap
	KindStruct
)

var kindNames = [...]string{
	KindNone:     "none",
	KindBool:     "bool",
	KindSigned:   "signed",
	KindUnsigned: "unsigned",
	KindFloat:    "float",
	KindVec2:     "vec2",
	KindVec3:     "vec3",
	KindVec4:     "vec4",
	KindMtx44:    "mtx44",
	KindColor:    "color",
	KindString:   "string",
	KindHash:     "hash",
	KindLink:     "link",
	KindFile:     "file",
	KindList:     "list",
	KindMap:      "map",
	KindStruct:   "struct",
}

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is one decoded node. The set of implementations is closed; switch on
// the concrete type (or Kind) to inspect it.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	// None is an absent value: the none tag, an empty option, or a null struct.
	None struct{}
	// Bool covers both the bool and flag tags.
	Bool bool
	// Signed holds every signed integer width widened to 64 bits.
	Signed int64
	// Unsigned holds every unsigned integer width widened to 64 bits.
	Unsigned uint64
	Float    float32
	Vec2     [2]float32
	Vec3     [3]float32
	Vec4     [4]float32
	// Mtx44 is stored row by row as it appears on the wire.
	Mtx44  [4][4]float32
	String string
	// Hash is a generic hashed value resolved against the hash-value table.
	Hash struct{ Name32 }
	// Link references another entry by its entry-name hash.
	Link struct{ Name32 }
	// File references an asset path by its 64-bit path hash.
	File struct{ Name64 }
	List []Value
	// Map keeps pairs in wire order; duplicate keys are preserved.
	Map []Pair
)

// Color is an RGBA color in stored order. The wire order is A,B,G,R.
type Color struct {
	R, G, B, A uint8
}

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   Value
	Value Value
}

// Field is a named struct member.
type Field struct {
	Name  Name32
	Value Value
}

// Struct is a typed record. Fields are keyed by field-name hash; setting a
// field that already exists replaces it.
type Struct struct {
	Type   Name32
	Fields map[uint32]Field
}

// NewStruct returns an empty struct of the given type.
func NewStruct(typ Name32) *Struct {
	return &Struct{Type: typ, Fields: make(map[uint32]Field)}
}

// Set stores v under name, replacing any field with the same hash.
func (s *Struct) Set(name Name32, v Value) {
	if s.Fields == nil {
		s.Fields = make(map[uint32]Field)
	}
	s.Fields[name.Hash] = Field{Name: name, Value: v}
}

// Get returns the value stored under the field hash.
func (s *Struct) Get(hash uint32) (Value, bool) {
	f, ok := s.Fields[hash]
	if !ok {
		return nil, false
	}
	return f.Value, true
}

// SortedFields returns the fields ordered by hash. The wire order of fields
// is not retained.
func (s *Struct) SortedFields() []Field {
	keys := slices.Sorted(maps.Keys(s.Fields))
	out := make([]Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.Fields[k])
	}
	return out
}

func (None) Kind() Kind     { return KindNone }
func (Bool) Kind() Kind     { return KindBool }
func (Signed) Kind() Kind   { return KindSigned }
func (Unsigned) Kind() Kind { return KindUnsigned }
func (Float) Kind() Kind    { return KindFloat }
func (Vec2) Kind() Kind     { return KindVec2 }
func (Vec3) Kind() Kind     { return KindVec3 }
func (Vec4) Kind() Kind     { return KindVec4 }
func (Mtx44) Kind() Kind    { return KindMtx44 }
func (Color) Kind() Kind    { return KindColor }
func (String) Kind() Kind   { return KindString }
func (Hash) Kind() Kind     { return KindHash }
func (Link) Kind() Kind     { return KindLink }
func (File) Kind() Kind     { return KindFile }
func (List) Kind() Kind     { return KindList }
func (Map) Kind() Kind      { return KindMap }
func (*Struct) Kind() Kind  { return KindStruct }

func (None) isValue()     {}
func (Bool) isValue()     {}
func (Signed) isValue()   {}
func (Unsigned) isValue() {}
func (Float) isValue()    {}
func (Vec2) isValue()     {}
func (Vec3) isValue()     {}
func (Vec4) isValue()     {}
func (Mtx44) isValue()    {}
func (Color) isValue()    {}
func (String) isValue()   {}
func (Hash) isValue()     {}
func (Link) isValue()     {}
func (File) isValue()     {}
func (List) isValue()     {}
func (Map) isValue()      {}
func (*Struct) isValue()  {}
