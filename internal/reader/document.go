package reader

import (
	"github.com/joshuapare/binkit/pkg/types"
)

// links reads the u32-counted list of dependency paths. Order and
// duplicates are preserved.
func (c *cursor) links() ([]string, error) {
	c.stage = stageLinks
	n, err := c.u32()
	if err != nil {
		return nil, err
	}
	// Each link needs at least its u16 length.
	out := make([]string, 0, capCount(n, c.remaining()/2))
	for range n {
		s, err := c.text()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// entries reads the entry table in two phases: all type hashes first, then
// one region per entry holding its name hash and fields. A later entry with
// the same name hash replaces the earlier one.
func (c *cursor) entries(doc *types.Document) error {
	c.stage = stageEntryTypes
	n, err := c.u32()
	if err != nil {
		return err
	}
	typeNames := make([]types.Name32, 0, capCount(n, c.remaining()/4))
	for range n {
		h, err := c.u32()
		if err != nil {
			return err
		}
		typeNames = append(typeNames, c.d.typeName(h))
	}

	c.stage = stageEntry
	for _, typ := range typeNames {
		r, err := c.sub(stageEntry)
		if err != nil {
			return err
		}
		h, err := r.u32()
		if err != nil {
			return err
		}
		s := types.NewStruct(typ)
		r.stage = stageFields
		if err := r.fields(s); err != nil {
			return err
		}
		doc.Put(types.Entry{Name: c.d.entryName(h), Struct: s})
	}
	return nil
}
