package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/joshuapare/binkit/internal/config"
	"github.com/joshuapare/binkit/internal/format"
	"github.com/joshuapare/binkit/internal/testutil"
	"github.com/joshuapare/binkit/pkg/hashes"
)

// Names used by the sample document. Their hashes are the FNV-1a of the
// names, so a dictionary built with hashes.FNV1a resolves them.
const (
	sampleEntry = "Characters/Shaco/Root"
	sampleType  = "CharacterRecord"
	sampleField = "mCharacterName"
	sampleLink  = "data/common.bin"
)

// sampleBin returns a small valid document with one entry and one string field.
func sampleBin() []byte {
	return testutil.Document(3, []string{sampleLink}, testutil.Entry{
		Type:       hashes.FNV1a(sampleType),
		Name:       hashes.FNV1a(sampleEntry),
		FieldCount: 2,
		Fields: func(w *testutil.Writer) {
			w.Field(hashes.FNV1a(sampleField), format.TagString, func(w *testutil.Writer) { w.Str("Shaco") })
			w.Field(0x1234, format.TagList, func(w *testutil.Writer) {
				w.Tag(format.TagI32).Region(func(w *testutil.Writer) { w.U32(1).U32(7) })
			})
		},
	})
}

// writeTestFile writes data into a temp dir and returns its path.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// writeHashDir writes dictionaries labelling the sample document.
func writeHashDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		hashes.EntriesFile: sampleEntry,
		hashes.TypesFile:   sampleType,
		hashes.FieldsFile:  sampleField,
	}
	for file, name := range files {
		line := []byte(hexHash(name) + " " + name + "\n")
		if err := os.WriteFile(filepath.Join(dir, file), line, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func hexHash(name string) string {
	return fmt.Sprintf("%08x", hashes.FNV1a(name))
}

// resetFlags restores every global the commands read.
func resetFlags(t *testing.T) {
	t.Helper()
	quiet, verbose, jsonOut, noColor = false, false, false, false
	colorMode, configPath, hashDir = "auto", "", ""
	maxDepth, lenientText, workers = 0, false, 0
	dumpDepth, dumpEntries, dumpNoKinds, dumpNoLinks, dumpIndent = 0, nil, false, false, 2
	hashLines = ""
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	cfg = config.Default()
	cfg.Color = "never"
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
