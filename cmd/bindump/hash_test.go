package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/joshuapare/binkit/pkg/hashes"
)

func TestHashCommand(t *testing.T) {
	resetFlags(t)
	output, err := captureOutput(t, func() error {
		return runHash([]string{"mSpellName", "Assets/X.dds"})
	})
	if err != nil {
		t.Fatalf("runHash() error = %v", err)
	}
	assertContains(t, output, []string{
		"mSpellName\n",
		fmt.Sprintf("fnv1a: 0x%08X", hashes.FNV1a("mspellname")),
		fmt.Sprintf("xxh64: 0x%016X", hashes.XXH64("assets/x.dds")),
	})
}

func TestHashCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	output, err := captureOutput(t, func() error {
		return runHash([]string{"a"})
	})
	if err != nil {
		t.Fatalf("runHash() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"fnv1a": "0xE40C292C"`})
}

func TestHashCommand_Lines(t *testing.T) {
	resetFlags(t)
	hashLines = "fnv1a"
	output, err := captureOutput(t, func() error {
		return runHash([]string{"mName", "with space"})
	})
	if err != nil {
		t.Fatalf("runHash() error = %v", err)
	}

	// The output must load back as a dictionary.
	tbl := hashes.NewTable32()
	if err := tbl.Load(strings.NewReader(output), "stdout"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tbl.Name(hashes.FNV1a("with space")).Label; got != "with space" {
		t.Errorf("label = %q", got)
	}

	hashLines = "crc32"
	if _, err := captureOutput(t, func() error { return runHash([]string{"x"}) }); err == nil {
		t.Error("expected error for unknown hash")
	}
}
