package types

import (
	"cmp"
	"maps"
	"slices"
)

// Entry is a top-level named struct record.
type Entry struct {
	Name   Name32
	Struct *Struct
}

// Document is a fully decoded property-bag file.
type Document struct {
	Version uint32   // carried through unvalidated
	Links   []string // dependency paths in file order, duplicates kept
	Entries map[uint32]Entry
}

// NewDocument returns an empty document with the given version.
func NewDocument(version uint32) *Document {
	return &Document{
		Version: version,
		Links:   []string{},
		Entries: make(map[uint32]Entry),
	}
}

// Put inserts an entry, replacing any entry with the same name hash.
func (d *Document) Put(e Entry) {
	if d.Entries == nil {
		d.Entries = make(map[uint32]Entry)
	}
	d.Entries[e.Name.Hash] = e
}

// Entry looks up an entry by name hash.
func (d *Document) Entry(hash uint32) (Entry, bool) {
	e, ok := d.Entries[hash]
	return e, ok
}

// SortedEntries returns the entries ordered by name hash.
func (d *Document) SortedEntries() []Entry {
	out := slices.Collect(maps.Values(d.Entries))
	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.Name.Hash, b.Name.Hash) })
	return out
}
