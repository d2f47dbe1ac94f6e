package hashes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joshuapare/binkit/pkg/types"
)

// Table32 maps 32-bit hashes to labels.
type Table32 struct {
	labels map[uint32]string
}

// Table64 maps 64-bit hashes to labels.
type Table64 struct {
	labels map[uint64]string
}

// NewTable32 returns an empty table.
func NewTable32() *Table32 { return &Table32{labels: make(map[uint32]string)} }

// NewTable64 returns an empty table.
func NewTable64() *Table64 { return &Table64{labels: make(map[uint64]string)} }

// Add records label for hash, replacing any previous label.
func (t *Table32) Add(hash uint32, label string) { t.labels[hash] = label }

// AddName hashes name with FNV1a and records it.
func (t *Table32) AddName(name string) uint32 {
	h := FNV1a(name)
	t.Add(h, name)
	return h
}

// Lookup returns the label for hash, if known.
func (t *Table32) Lookup(hash uint32) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.labels[hash]
	return s, ok
}

// Name returns hash with its label, or with no label when unknown.
func (t *Table32) Name(hash uint32) types.Name32 {
	s, _ := t.Lookup(hash)
	return types.Name32{Hash: hash, Label: s}
}

// Len reports the number of labels.
func (t *Table32) Len() int {
	if t == nil {
		return 0
	}
	return len(t.labels)
}

// Load reads "<hex-hash> <string>" lines from r. source names r in errors.
func (t *Table32) Load(r io.Reader, source string) error {
	return scanLines(r, source, 32, func(h uint64, label string) {
		t.Add(uint32(h), label)
	})
}

// LoadFile loads a dictionary file.
func (t *Table32) LoadFile(path string) error {
	return loadFile(path, t.Load)
}

// Add records label for hash, replacing any previous label.
func (t *Table64) Add(hash uint64, label string) { t.labels[hash] = label }

// AddName hashes path with XXH64 and records it.
func (t *Table64) AddName(path string) uint64 {
	h := XXH64(path)
	t.Add(h, path)
	return h
}

// Lookup returns the label for hash, if known.
func (t *Table64) Lookup(hash uint64) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.labels[hash]
	return s, ok
}

// Name returns hash with its label, or with no label when unknown.
func (t *Table64) Name(hash uint64) types.Name64 {
	s, _ := t.Lookup(hash)
	return types.Name64{Hash: hash, Label: s}
}

// Len reports the number of labels.
func (t *Table64) Len() int {
	if t == nil {
		return 0
	}
	return len(t.labels)
}

// Load reads "<hex-hash> <string>" lines from r. source names r in errors.
func (t *Table64) Load(r io.Reader, source string) error {
	return scanLines(r, source, 64, func(h uint64, label string) {
		t.Add(h, label)
	})
}

// LoadFile loads a dictionary file.
func (t *Table64) LoadFile(path string) error {
	return loadFile(path, t.Load)
}

// maxLine bounds a single dictionary line; some path dictionaries carry very
// long asset paths.
const maxLine = 1 << 20

// scanLines parses dictionary lines. The hash and label are separated by the
// first space; everything after it, including further spaces, is the label.
func scanLines(r io.Reader, source string, bits int, add func(uint64, string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		hexHash, label, ok := strings.Cut(text, " ")
		if !ok {
			return malformed(source, line, "missing space separator", nil)
		}
		h, err := strconv.ParseUint(hexHash, 16, bits)
		if err != nil {
			return malformed(source, line, fmt.Sprintf("bad hex hash %q", hexHash), err)
		}
		add(h, label)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}
	return nil
}

func malformed(source string, line int, msg string, cause error) error {
	return &types.Error{
		Kind:   types.ErrKindMalformedHashFile,
		Offset: line,
		Stage:  source,
		Msg:    msg,
		Err:    cause,
	}
}

func loadFile(path string, load func(io.Reader, string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open hash file: %w", err)
	}
	defer f.Close()
	return load(f, filepath.Base(path))
}

// isNotExist reports whether err came from a missing dictionary file.
func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
