package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/binkit/internal/config"
	"github.com/joshuapare/binkit/internal/logger"
	"github.com/joshuapare/binkit/pkg/hashes"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	noColor     bool
	colorMode   string
	configPath  string
	hashDir     string
	maxDepth    int
	lenientText bool
	workers     int

	// cfg is the effective configuration: the config file (or defaults)
	// with explicit flags applied on top.
	cfg = config.Default()

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "bindump",
	Short: "Inspect property-bag (.bin) files",
	Long: `bindump decodes tagged binary property-bag files ("PROP" documents)
and prints their entries as an indented tree or JSON. Hashed names are
resolved against hash dictionaries when a dictionary directory is given.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup(cmd) },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = closeLog() },
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output (same as --color never)")
	pf.StringVar(&colorMode, "color", "auto", "Colorize text output: auto, always or never")
	pf.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&hashDir, "hashes", "H", "", "Directory holding hashes.*.txt dictionaries")
	pf.IntVar(&maxDepth, "max-depth", 0, "Region nesting limit (0 = default, capped at 128)")
	pf.BoolVar(&lenientText, "lenient-text", false, "Decode non-UTF-8 text as Latin-1 instead of failing")
	pf.IntVarP(&workers, "workers", "j", 0, "Files decoded in parallel (0 = number of CPUs)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup builds the effective configuration and initializes logging.
func setup(cmd *cobra.Command) error {
	c := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("hashes") {
		c.HashDir = hashDir
	}
	if flags.Changed("max-depth") {
		c.MaxDepth = maxDepth
	}
	if flags.Changed("lenient-text") {
		c.LenientText = lenientText
	}
	if flags.Changed("workers") {
		c.Workers = workers
	}
	if flags.Changed("json") && jsonOut {
		c.Format = "json"
	}
	if flags.Changed("color") {
		c.Color = colorMode
	}
	if noColor {
		c.Color = "never"
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	jsonOut = cfg.Format == "json"

	level := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	closeFn, err := logger.Init(logger.Options{
		Enabled: verbose || cfg.Log.Dir != "",
		Level:   level,
		JSON:    cfg.Log.JSON,
		LogDir:  cfg.Log.Dir,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	closeLog = closeFn
	logger.Debug("configuration loaded", "config", configPath, "hash_dir", cfg.HashDir,
		"max_depth", cfg.MaxDepth, "workers", cfg.Workers, "format", cfg.Format)
	return nil
}

// loadResolver loads the configured dictionaries, or returns nil when none
// are configured.
func loadResolver() (*hashes.Resolver, error) {
	res, err := cfg.LoadResolver()
	if err != nil {
		return nil, fmt.Errorf("load hash dictionaries: %w", err)
	}
	if res != nil {
		n := res.Counts()
		logger.Debug("dictionaries loaded",
			"fields", n.Fields, "entries", n.Entries, "types", n.Types,
			"hashes", n.Hashes, "paths", n.Paths)
	}
	return res, nil
}

// useColor decides whether text output gets ANSI colors.
func useColor() bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message to stderr if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
