package bin

import "github.com/joshuapare/binkit/pkg/types"

// Stats summarizes a decoded document.
type Stats struct {
	Version  uint32             `json:"version"`
	Links    int                `json:"links"`
	Entries  int                `json:"entries"`
	Fields   int                `json:"fields"`
	Kinds    map[types.Kind]int `json:"-"`
	MaxDepth int                `json:"max_depth"`
	// Unresolved counts distinct hashes without a label, per dictionary.
	Unresolved Unresolved `json:"unresolved"`
}

// Unresolved holds per-table counts of names that have no label.
type Unresolved struct {
	Fields  int `json:"fields"`
	Entries int `json:"entries"`
	Types   int `json:"types"`
	Hashes  int `json:"hashes"`
	Paths   int `json:"paths"`
}

// KindCounts returns Kinds keyed by kind name, for display.
func (s *Stats) KindCounts() map[string]int {
	out := make(map[string]int, len(s.Kinds))
	for k, n := range s.Kinds {
		out[k.String()] = n
	}
	return out
}

type collector struct {
	st                             *Stats
	fields, entries, types, hashes map[uint32]struct{}
	paths                          map[uint64]struct{}
}

// Collect walks doc and counts values by kind. An entry's struct sits at
// depth 1; every nested list, map or struct adds one.
func Collect(doc *types.Document) *Stats {
	st := &Stats{
		Version: doc.Version,
		Links:   len(doc.Links),
		Entries: len(doc.Entries),
		Kinds:   make(map[types.Kind]int),
	}
	c := &collector{
		st:      st,
		fields:  map[uint32]struct{}{},
		entries: map[uint32]struct{}{},
		types:   map[uint32]struct{}{},
		hashes:  map[uint32]struct{}{},
		paths:   map[uint64]struct{}{},
	}
	for _, e := range doc.SortedEntries() {
		c.name32(c.entries, e.Name)
		if e.Struct != nil {
			c.value(e.Struct, 1)
		}
	}
	st.Unresolved = Unresolved{
		Fields:  len(c.fields),
		Entries: len(c.entries),
		Types:   len(c.types),
		Hashes:  len(c.hashes),
		Paths:   len(c.paths),
	}
	return st
}

func (c *collector) name32(set map[uint32]struct{}, n types.Name32) {
	if !n.Resolved() {
		set[n.Hash] = struct{}{}
	}
}

func (c *collector) value(v types.Value, depth int) {
	c.st.Kinds[v.Kind()]++
	switch v := v.(type) {
	case *types.Struct:
		c.depth(depth)
		c.name32(c.types, v.Type)
		for _, f := range v.Fields {
			c.st.Fields++
			c.name32(c.fields, f.Name)
			c.value(f.Value, depth+1)
		}
	case types.List:
		c.depth(depth)
		for _, e := range v {
			c.value(e, depth+1)
		}
	case types.Map:
		c.depth(depth)
		for _, p := range v {
			c.value(p.Key, depth+1)
			c.value(p.Value, depth+1)
		}
	case types.Hash:
		c.name32(c.hashes, v.Name32)
	case types.Link:
		// links name entries
		c.name32(c.entries, v.Name32)
	case types.File:
		if !v.Resolved() {
			c.paths[v.Hash] = struct{}{}
		}
	}
}

func (c *collector) depth(d int) {
	if d > c.st.MaxDepth {
		c.st.MaxDepth = d
	}
}
