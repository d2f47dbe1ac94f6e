package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// newFlagCmd returns a command whose flag set mirrors the root persistent
// flags, parsed from args.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return cmd
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "bindump.yaml")
	if err := os.WriteFile(path, []byte("workers: 3\nmax_depth: 64\nhash_dir: /from/config\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := newFlagCmd(t, "--config", path, "--max-depth", "16", "--json", "--no-color")
	if err := setup(cmd); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("workers = %d, want 3 from config", cfg.Workers)
	}
	if cfg.MaxDepth != 16 {
		t.Errorf("max depth = %d, want 16 from flag", cfg.MaxDepth)
	}
	if cfg.HashDir != "/from/config" {
		t.Errorf("hash dir = %q", cfg.HashDir)
	}
	if !jsonOut || cfg.Format != "json" {
		t.Errorf("json flag not applied")
	}
	if useColor() {
		t.Errorf("--no-color should disable color")
	}
}

func TestSetup_InvalidFlag(t *testing.T) {
	resetFlags(t)
	cmd := newFlagCmd(t, "--max-depth", "1000")
	if err := setup(cmd); err == nil {
		t.Fatal("expected validation error for max depth")
	}

	resetFlags(t)
	cmd = newFlagCmd(t, "--color", "rainbow")
	if err := setup(cmd); err == nil {
		t.Fatal("expected validation error for color")
	}
}

func TestSetup_ConfigFormat(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "bindump.yaml")
	if err := os.WriteFile(path, []byte("format: json\ncolor: always\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := setup(newFlagCmd(t, "--config", path)); err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	if !jsonOut {
		t.Error("format from config should enable JSON output")
	}
	if !useColor() {
		t.Error("color: always should force color")
	}
}
