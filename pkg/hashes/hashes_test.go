package hashes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binkit/pkg/types"
)

func TestFNV1a(t *testing.T) {
	// Reference values for 32-bit FNV-1a.
	assert.Equal(t, uint32(0x811c9dc5), FNV1a(""))
	assert.Equal(t, uint32(0xe40c292c), FNV1a("a"))
	assert.Equal(t, uint32(0xbf9cf968), FNV1a("foobar"))
	assert.Equal(t, FNV1a("foobar"), FNV1a("FooBar"))
}

func TestXXH64(t *testing.T) {
	assert.Equal(t, uint64(0xef46db3751d8e999), XXH64(""))
	assert.Equal(t, XXH64("assets/characters/shaco.dds"), XXH64("ASSETS/Characters/Shaco.dds"))
	assert.NotEqual(t, XXH64("a"), XXH64("b"))
}

func TestTable32_Load(t *testing.T) {
	tbl := NewTable32()
	src := "0000abcd mName\n1234 with spaces inside\nABCD0000 Upper\n0000abcd mOverride\n"
	require.NoError(t, tbl.Load(strings.NewReader(src), "fields"))

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, types.Name32{Hash: 0xabcd, Label: "mOverride"}, tbl.Name(0xabcd))
	assert.Equal(t, "with spaces inside", tbl.Name(0x1234).Label)
	assert.Equal(t, "Upper", tbl.Name(0xABCD0000).Label)

	missing := tbl.Name(0x99)
	assert.False(t, missing.Resolved())
	assert.Equal(t, "0x00000099", missing.String())
}

func TestTable32_LoadCRLF(t *testing.T) {
	tbl := NewTable32()
	require.NoError(t, tbl.Load(strings.NewReader("0001 one\r\n0002 two\r\n"), "crlf"))
	assert.Equal(t, "one", tbl.Name(1).Label)
	assert.Equal(t, "two", tbl.Name(2).Label)
}

func TestTable_LoadMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"no separator", "0001 ok\nnospace\n", 2},
		{"empty line", "0001 ok\n\n0002 ok\n", 2},
		{"not hex", "zz12 name\n", 1},
		{"too wide", "100000000 name\n", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewTable32().Load(strings.NewReader(tc.src), "test.txt")
			require.ErrorIs(t, err, types.ErrMalformedHashFile)
			te, ok := err.(*types.Error)
			require.True(t, ok)
			assert.Equal(t, tc.line, te.Offset)
			assert.Equal(t, "test.txt", te.Stage)
		})
	}
}

func TestTable64_Load(t *testing.T) {
	tbl := NewTable64()
	require.NoError(t, tbl.Load(strings.NewReader("00000000deadbeef data/a.bin\n"), "paths"))
	assert.Equal(t, "data/a.bin", tbl.Name(0xDEADBEEF).String())
	assert.Equal(t, "0x0000000000000001", tbl.Name(1).String())

	err := NewTable64().Load(strings.NewReader("10000000000000000 x\n"), "paths")
	require.ErrorIs(t, err, types.ErrMalformedHashFile)
}

func TestTable_AddName(t *testing.T) {
	t32 := NewTable32()
	h := t32.AddName("mSpellName")
	assert.Equal(t, FNV1a("mspellname"), h)
	assert.Equal(t, "mSpellName", t32.Name(h).Label)

	t64 := NewTable64()
	p := t64.AddName("Data/Shaco.bin")
	assert.Equal(t, "Data/Shaco.bin", t64.Name(p).Label)
}

func TestResolver_RoutesByRole(t *testing.T) {
	r := NewResolver()
	r.Fields.Add(1, "field")
	r.Entries.Add(1, "entry")
	r.Types.Add(1, "type")
	r.Hashes.Add(1, "hash")
	r.Paths.Add(1, "path")

	assert.Equal(t, "field", r.FieldName(1).Label)
	assert.Equal(t, "entry", r.EntryName(1).Label)
	assert.Equal(t, "type", r.TypeName(1).Label)
	assert.Equal(t, "hash", r.HashName(1).Label)
	assert.Equal(t, "path", r.PathName(1).Label)
	assert.False(t, r.FieldName(2).Resolved())
	assert.Equal(t, Counts{1, 1, 1, 1, 1}, r.Counts())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FieldsFile), []byte("0001 mName\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, PathsFile), []byte("0002 a/b.bin\n"), 0o644))

	r, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Counts{Fields: 1, Paths: 1}, r.Counts())
	assert.Equal(t, "a/b.bin", r.PathName(2).Label)

	require.NoError(t, os.WriteFile(filepath.Join(dir, TypesFile), []byte("oops\n"), 0o644))
	_, err = LoadDir(dir)
	require.ErrorIs(t, err, types.ErrMalformedHashFile)
}

func TestResolver_LoadMissingStrict(t *testing.T) {
	r := NewResolver()
	err := r.Load(Files{Fields: filepath.Join(t.TempDir(), "absent.txt")}, false)
	require.Error(t, err)
	assert.True(t, isNotExist(err))
}

func TestResolver_Nil(t *testing.T) {
	var r *Resolver
	assert.Equal(t, types.Name32{Hash: 7}, r.FieldName(7))
	assert.Equal(t, types.Name64{Hash: 7}, r.PathName(7))
}
