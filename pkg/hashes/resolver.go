package hashes

import (
	"path/filepath"

	"github.com/joshuapare/binkit/pkg/types"
)

// Conventional dictionary file names inside a hash directory.
const (
	FieldsFile  = "hashes.binfields.txt"
	EntriesFile = "hashes.binentries.txt"
	TypesFile   = "hashes.bintypes.txt"
	HashesFile  = "hashes.binhashes.txt"
	PathsFile   = "hashes.game.txt"
)

// Resolver bundles the five dictionaries and implements types.NameResolver.
// A nil *Resolver resolves nothing.
// Populate it before decoding; it must not be modified while a decode that
// uses it is running.
type Resolver struct {
	Fields  *Table32
	Entries *Table32
	Types   *Table32
	Hashes  *Table32
	Paths   *Table64
}

var _ types.NameResolver = (*Resolver)(nil)

// NewResolver returns a Resolver with five empty tables.
func NewResolver() *Resolver {
	return &Resolver{
		Fields:  NewTable32(),
		Entries: NewTable32(),
		Types:   NewTable32(),
		Hashes:  NewTable32(),
		Paths:   NewTable64(),
	}
}

func (r *Resolver) FieldName(h uint32) types.Name32 {
	if r == nil {
		return types.Name32{Hash: h}
	}
	return r.Fields.Name(h)
}

func (r *Resolver) EntryName(h uint32) types.Name32 {
	if r == nil {
		return types.Name32{Hash: h}
	}
	return r.Entries.Name(h)
}

func (r *Resolver) TypeName(h uint32) types.Name32 {
	if r == nil {
		return types.Name32{Hash: h}
	}
	return r.Types.Name(h)
}

func (r *Resolver) HashName(h uint32) types.Name32 {
	if r == nil {
		return types.Name32{Hash: h}
	}
	return r.Hashes.Name(h)
}

func (r *Resolver) PathName(h uint64) types.Name64 {
	if r == nil {
		return types.Name64{Hash: h}
	}
	return r.Paths.Name(h)
}

// Files names one dictionary file per table. Empty paths are skipped.
type Files struct {
	Fields  string `yaml:"fields"`
	Entries string `yaml:"entries"`
	Types   string `yaml:"types"`
	Hashes  string `yaml:"hashes"`
	Paths   string `yaml:"paths"`
}

// DirFiles returns the conventional file names inside dir.
func DirFiles(dir string) Files {
	return Files{
		Fields:  filepath.Join(dir, FieldsFile),
		Entries: filepath.Join(dir, EntriesFile),
		Types:   filepath.Join(dir, TypesFile),
		Hashes:  filepath.Join(dir, HashesFile),
		Paths:   filepath.Join(dir, PathsFile),
	}
}

// Counts reports how many labels each table holds.
type Counts struct {
	Fields, Entries, Types, Hashes, Paths int
}

// Counts returns the current table sizes.
func (r *Resolver) Counts() Counts {
	return Counts{
		Fields:  r.Fields.Len(),
		Entries: r.Entries.Len(),
		Types:   r.Types.Len(),
		Hashes:  r.Hashes.Len(),
		Paths:   r.Paths.Len(),
	}
}

// Load fills the tables from files. With skipMissing, files that do not exist
// are ignored; any other failure, including a malformed line, aborts.
func (r *Resolver) Load(files Files, skipMissing bool) error {
	jobs := []struct {
		path string
		load func(string) error
	}{
		{files.Fields, r.Fields.LoadFile},
		{files.Entries, r.Entries.LoadFile},
		{files.Types, r.Types.LoadFile},
		{files.Hashes, r.Hashes.LoadFile},
		{files.Paths, r.Paths.LoadFile},
	}
	for _, j := range jobs {
		if j.path == "" {
			continue
		}
		if err := j.load(j.path); err != nil {
			if skipMissing && isNotExist(err) {
				continue
			}
			return err
		}
	}
	return nil
}

// LoadDir loads the conventional dictionary files from dir, skipping those
// that are absent.
func LoadDir(dir string) (*Resolver, error) {
	r := NewResolver()
	if err := r.Load(DirFiles(dir), true); err != nil {
		return nil, err
	}
	return r, nil
}
