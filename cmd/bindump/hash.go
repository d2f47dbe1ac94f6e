package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/binkit/pkg/hashes"
)

var hashLines string

func init() {
	cmd := newHashCmd()
	cmd.Flags().StringVar(&hashLines, "lines", "", "Print dictionary lines using fnv1a or xxh64")
	rootCmd.AddCommand(cmd)
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <name>...",
		Short: "Compute the hashes used for names and file paths",
		Long: `The hash command prints the FNV-1a (field, entry, type and hash-value
names) and XXH64 (file paths) hashes of each argument. Both are computed on
the lowercased text.

With --lines, output is in dictionary format ("<hex> <name>") so it can be
appended to a hashes.*.txt file.

Example:
  bindump hash mSpellName
  bindump hash --lines xxh64 assets/characters/shaco/shaco.dds >> hashes.game.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

type hashResult struct {
	Name  string `json:"name"`
	FNV1a string `json:"fnv1a"`
	XXH64 string `json:"xxh64"`
}

func runHash(args []string) error {
	switch hashLines {
	case "":
	case "fnv1a":
		for _, name := range args {
			fmt.Printf("%08x %s\n", hashes.FNV1a(name), name)
		}
		return nil
	case "xxh64":
		for _, name := range args {
			fmt.Printf("%016x %s\n", hashes.XXH64(name), name)
		}
		return nil
	default:
		return fmt.Errorf("unknown --lines hash %q (want fnv1a or xxh64)", hashLines)
	}

	out := make([]hashResult, 0, len(args))
	for _, name := range args {
		out = append(out, hashResult{
			Name:  name,
			FNV1a: fmt.Sprintf("0x%08X", hashes.FNV1a(name)),
			XXH64: fmt.Sprintf("0x%016X", hashes.XXH64(name)),
		})
	}
	if jsonOut {
		return printJSON(out)
	}
	for _, r := range out {
		printInfo("%s\n  fnv1a: %s\n  xxh64: %s\n", r.Name, r.FNV1a, r.XXH64)
	}
	return nil
}
