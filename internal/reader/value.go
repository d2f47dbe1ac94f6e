package reader

import (
	"fmt"

	"github.com/joshuapare/binkit/internal/buf"
	"github.com/joshuapare/binkit/internal/format"
	"github.com/joshuapare/binkit/pkg/types"
)

// value decodes one value of the given tag. Containers recurse through sub,
// which enforces the depth cap and region bounds.
func (c *cursor) value(t format.Tag) (types.Value, error) {
	if size, ok := t.FixedSize(); ok {
		return c.fixed(t, size)
	}
	switch t {
	case format.TagString:
		s, err := c.text()
		if err != nil {
			return nil, err
		}
		return types.String(s), nil
	case format.TagOption:
		return c.option()
	case format.TagList, format.TagList2:
		return c.list()
	case format.TagMap:
		return c.mapValue()
	case format.TagPointer, format.TagEmbed:
		return c.structValue()
	default:
		return nil, c.errAt(types.ErrKindUnknownTag, c.pos, format.ErrUnknownTag,
			fmt.Sprintf("no decoder for %s", t))
	}
}

// fixed decodes tags with a constant wire width. The payload is taken in one
// step so a short buffer fails before any partial decode.
func (c *cursor) fixed(t format.Tag, size int) (types.Value, error) {
	b, err := c.take(size)
	if err != nil {
		return nil, err
	}
	switch t {
	case format.TagNone:
		return types.None{}, nil
	case format.TagBool, format.TagFlag:
		return types.Bool(b[0] != 0), nil
	case format.TagI8:
		return types.Signed(int8(b[0])), nil
	case format.TagU8:
		return types.Unsigned(b[0]), nil
	case format.TagI16:
		return types.Signed(int16(buf.U16LE(b))), nil
	case format.TagU16:
		return types.Unsigned(buf.U16LE(b)), nil
	case format.TagI32:
		return types.Signed(int32(buf.U32LE(b))), nil
	case format.TagU32:
		return types.Unsigned(buf.U32LE(b)), nil
	case format.TagI64:
		return types.Signed(int64(buf.U64LE(b))), nil
	case format.TagU64:
		return types.Unsigned(buf.U64LE(b)), nil
	case format.TagF32:
		return types.Float(buf.F32LE(b)), nil
	case format.TagVec2:
		var v types.Vec2
		floatsLE(b, v[:])
		return v, nil
	case format.TagVec3:
		var v types.Vec3
		floatsLE(b, v[:])
		return v, nil
	case format.TagVec4:
		var v types.Vec4
		floatsLE(b, v[:])
		return v, nil
	case format.TagMtx44:
		var m types.Mtx44
		for i := range m {
			floatsLE(b[i*format.SizeVec4:], m[i][:])
		}
		return m, nil
	case format.TagColor:
		return colorABGR(b), nil
	case format.TagHash:
		return types.Hash{Name32: c.d.hashName(buf.U32LE(b))}, nil
	case format.TagLink:
		return types.Link{Name32: c.d.entryName(buf.U32LE(b))}, nil
	case format.TagFile:
		return types.File{Name64: c.d.pathName(buf.U64LE(b))}, nil
	}
	return nil, c.errAt(types.ErrKindUnknownTag, c.pos-size, format.ErrUnknownTag,
		fmt.Sprintf("no fixed decoder for %s", t))
}

// option: inner tag, presence byte, then the inline value when present.
// Containers inside an option are counted by the regions they open.
func (c *cursor) option() (types.Value, error) {
	defer func(prev string) { c.stage = prev }(c.stage)
	c.stage = stageOption
	inner, err := c.tag()
	if err != nil {
		return nil, err
	}
	present, err := c.u8()
	if err != nil {
		return nil, err
	}
	if present == 0 {
		return types.None{}, nil
	}
	if inner == format.TagOption {
		// Option chains open no region; count them so they stay capped.
		done, err := c.nest()
		if err != nil {
			return nil, err
		}
		defer done()
	}
	return c.value(inner)
}

// list: element tag, region, u32 count, then count values.
func (c *cursor) list() (types.Value, error) {
	elem, err := c.tag()
	if err != nil {
		return nil, err
	}
	r, err := c.sub(stageList)
	if err != nil {
		return nil, err
	}
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	out := make(types.List, 0, r.capHint(n, elem))
	for range n {
		v, err := r.value(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// mapValue: key tag, value tag, region, u32 count, then count pairs kept in
// wire order. Duplicate keys are not merged.
func (c *cursor) mapValue() (types.Value, error) {
	kt, err := c.tag()
	if err != nil {
		return nil, err
	}
	vt, err := c.tag()
	if err != nil {
		return nil, err
	}
	r, err := c.sub(stageMap)
	if err != nil {
		return nil, err
	}
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	out := make(types.Map, 0, r.capHint(n, kt))
	for range n {
		k, err := r.value(kt)
		if err != nil {
			return nil, err
		}
		v, err := r.value(vt)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Pair{Key: k, Value: v})
	}
	return out, nil
}

// structValue handles pointer and embed: a type hash, and unless it is the
// null hash, a region holding the field list.
func (c *cursor) structValue() (types.Value, error) {
	h, err := c.u32()
	if err != nil {
		return nil, err
	}
	if h == format.NullTypeHash {
		return types.None{}, nil
	}
	r, err := c.sub(stageStruct)
	if err != nil {
		return nil, err
	}
	s := types.NewStruct(c.d.typeName(h))
	if err := r.fields(s); err != nil {
		return nil, err
	}
	return s, nil
}

// fields reads a u16 count of (field hash, tag, value) triples into s. A
// repeated field hash replaces the earlier value.
func (c *cursor) fields(s *types.Struct) error {
	n, err := c.u16()
	if err != nil {
		return err
	}
	for range n {
		h, err := c.u32()
		if err != nil {
			return err
		}
		t, err := c.tag()
		if err != nil {
			return err
		}
		v, err := c.value(t)
		if err != nil {
			return err
		}
		s.Set(c.d.fieldName(h), v)
	}
	return nil
}

// capHint bounds a preallocation by what the remaining bytes could hold, so
// a hostile count cannot force a huge allocation up front.
func (c *cursor) capHint(n uint32, t format.Tag) int {
	size, ok := t.FixedSize()
	if !ok || size == 0 {
		size = 1
	}
	return capCount(n, c.remaining()/size)
}

// capCount returns n clamped to room without overflowing int.
func capCount(n uint32, room int) int {
	if uint64(n) > uint64(room) {
		return room
	}
	return int(n)
}
