package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuapare/binkit/pkg/bin"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Summarize .bin files",
		Long: `The info command decodes each file and reports its version, link and
entry counts, value counts per kind, the deepest container nesting, and how
many names could not be resolved against the dictionaries.

Example:
  bindump info shaco.bin
  bindump info -H ./hashes data/*.bin --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args)
		},
	}
	return cmd
}

// fileInfo is the JSON form of one file's summary.
type fileInfo struct {
	Path  string         `json:"path"`
	Size  int64          `json:"size"`
	Kinds map[string]int `json:"kinds"`
	*bin.Stats
}

func runInfo(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := loadResolver()
	if err != nil {
		return err
	}
	results, err := bin.DecodeAll(ctx, args, res, cfg.DecodeOptions(), cfg.Workers, false)
	if err != nil {
		return err
	}

	var infos []fileInfo
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			printError("%v\n", r.Err)
			continue
		}
		st := bin.Collect(r.Doc)
		fi := fileInfo{Path: r.Path, Stats: st, Kinds: st.KindCounts()}
		if stat, err := os.Stat(r.Path); err == nil {
			fi.Size = stat.Size()
		}
		infos = append(infos, fi)
	}

	if jsonOut {
		if err := printJSON(infos); err != nil {
			return err
		}
	} else {
		for _, fi := range infos {
			printFileInfo(fi)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to decode", failed, len(results))
	}
	return nil
}

func printFileInfo(fi fileInfo) {
	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", fi.Path)
	printInfo("  Size: %s\n", formatSize(fi.Size))
	printInfo("  Version: %d\n", fi.Version)
	printInfo("  Links: %d\n", fi.Links)
	printInfo("  Entries: %d\n", fi.Stats.Entries)
	printInfo("  Fields: %d\n", fi.Fields)
	printInfo("  Max depth: %d\n", fi.MaxDepth)

	printInfo("\nValue Kinds:\n")
	names := make([]string, 0, len(fi.Kinds))
	for k := range fi.Kinds {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		printInfo("  %s: %d\n", k, fi.Kinds[k])
	}

	u := fi.Unresolved
	printInfo("\nUnresolved Names:\n")
	printInfo("  fields: %d\n", u.Fields)
	printInfo("  entries: %d\n", u.Entries)
	printInfo("  types: %d\n", u.Types)
	printInfo("  hashes: %d\n", u.Hashes)
	printInfo("  paths: %d\n", u.Paths)
}

func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
