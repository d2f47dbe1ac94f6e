package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/binkit/internal/logger"
	"github.com/joshuapare/binkit/pkg/bin"
	"github.com/joshuapare/binkit/pkg/hashes"
	"github.com/joshuapare/binkit/pkg/printer"
	"github.com/joshuapare/binkit/pkg/types"
)

var (
	dumpDepth   int
	dumpEntries []string
	dumpNoKinds bool
	dumpNoLinks bool
	dumpIndent  int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum container depth to expand (0 = unlimited)")
	cmd.Flags().StringSliceVarP(&dumpEntries, "entry", "e", nil, "Print only these entries (name or 0x hash)")
	cmd.Flags().BoolVar(&dumpNoKinds, "no-kinds", false, "Omit value kind annotations")
	cmd.Flags().BoolVar(&dumpNoLinks, "no-links", false, "Omit the link table")
	cmd.Flags().IntVar(&dumpIndent, "indent", printer.DefaultIndentSize, "Spaces per indent level")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Print the contents of one or more .bin files",
		Long: `The dump command decodes each file and prints its version, links and
entries. Several files are decoded in parallel and printed in argument order.

Example:
  bindump dump shaco.bin
  bindump dump -H ./hashes shaco.bin --entry Characters/Shaco/CharacterRecords/Root
  bindump dump data/*.bin --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), args)
		},
	}
	return cmd
}

func dumpOptions() printer.Options {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.MaxDepth = dumpDepth
	opts.ShowKinds = !dumpNoKinds
	opts.ShowLinks = !dumpNoLinks
	opts.IndentSize = dumpIndent
	opts.Color = !jsonOut && useColor()
	return opts
}

func runDump(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := loadResolver()
	if err != nil {
		return err
	}
	filter, err := parseEntryFilter(dumpEntries)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := bin.DecodeAll(ctx, args, res, cfg.DecodeOptions(), cfg.Workers, false)
	if err != nil {
		return err
	}
	logger.Debug("decoded files", "count", len(args), "elapsed", time.Since(start))

	p := printer.New(os.Stdout, dumpOptions())
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			printError("%v\n", r.Err)
			continue
		}
		if quiet {
			continue
		}
		if len(results) > 1 && !jsonOut {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("==> %s <==\n", r.Path)
		}
		printVerbose("%s: %d entries, %d links\n", r.Path, len(r.Doc.Entries), len(r.Doc.Links))
		if err := printDocument(p, r.Doc, filter); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to decode", failed, len(results))
	}
	return nil
}

func printDocument(p *printer.Printer, doc *types.Document, filter map[uint32]struct{}) error {
	if filter == nil {
		return p.PrintDocument(doc)
	}
	for _, e := range doc.SortedEntries() {
		if _, ok := filter[e.Name.Hash]; !ok {
			continue
		}
		if err := p.PrintEntry(e); err != nil {
			return err
		}
	}
	return nil
}

// parseEntryFilter turns entry names or 0x-prefixed hashes into a set of
// entry hashes. It returns nil when no filter is given.
func parseEntryFilter(names []string) (map[uint32]struct{}, error) {
	if len(names) == 0 {
		return nil, nil
	}
	set := make(map[uint32]struct{}, len(names))
	for _, n := range names {
		h, err := entryHash(n)
		if err != nil {
			return nil, err
		}
		set[h] = struct{}{}
	}
	return set, nil
}

func entryHash(name string) (uint32, error) {
	if hex, ok := strings.CutPrefix(strings.ToLower(name), "0x"); ok {
		h, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid entry hash %q: %w", name, err)
		}
		return uint32(h), nil
	}
	return hashes.FNV1a(name), nil
}
