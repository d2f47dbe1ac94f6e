package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binkit/pkg/hashes"
	"github.com/joshuapare/binkit/pkg/types"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, types.DefaultDecodeOptions(), cfg.DecodeOptions())
	assert.False(t, cfg.HasDictionaries())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestParse_Full(t *testing.T) {
	src := `
hash_dir: /data/hashes
hashes:
  fields: extra-fields.txt
max_depth: 32
lenient_text: true
workers: 8
format: json
color: never
log:
  level: debug
  json: true
`
	cfg, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "/data/hashes", cfg.HashDir)
	assert.Equal(t, hashes.Files{Fields: "extra-fields.txt"}, cfg.Hashes)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, types.DecodeOptions{MaxDepth: 32, LenientText: true}, cfg.DecodeOptions())
	assert.True(t, cfg.HasDictionaries())
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"depth too large", "max_depth: 500\n", "max_depth: must satisfy lte=128"},
		{"negative workers", "workers: -1\n", "workers: must satisfy gte=0"},
		{"bad format", "format: xml\n", "format: must satisfy oneof=text json"},
		{"bad color", "color: sometimes\n", "color"},
		{"bad log level", "log:\n  level: loud\n", "log.level"},
		{"unknown key", "max_dpeth: 3\n", "max_dpeth"},
		{"not yaml", "max_depth: [\n", "parse config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindump.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadResolver(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, hashes.FieldsFile), []byte("0001 mName\n"), 0o644))
	extra := filepath.Join(t.TempDir(), "types.txt")
	require.NoError(t, os.WriteFile(extra, []byte("0002 SpellData\n"), 0o644))

	cfg := Default()
	r, err := cfg.LoadResolver()
	require.NoError(t, err)
	assert.Nil(t, r)

	cfg.HashDir = dir
	cfg.Hashes.Types = extra
	r, err = cfg.LoadResolver()
	require.NoError(t, err)
	assert.Equal(t, "mName", r.FieldName(1).Label)
	assert.Equal(t, "SpellData", r.TypeName(2).Label)

	cfg.Hashes.Paths = filepath.Join(dir, "nope.txt")
	_, err = cfg.LoadResolver()
	require.ErrorIs(t, err, os.ErrNotExist)
}
