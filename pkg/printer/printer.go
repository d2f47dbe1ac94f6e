// Package printer renders decoded documents as an indented text tree or as
// JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/binkit/pkg/types"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented, human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs one JSON document per call.
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many nested containers are expanded (0 = unlimited).
	// Deeper containers print as an elision marker.
	MaxDepth int

	// ShowKinds annotates each field with its value kind (text format only).
	// Default: true
	ShowKinds bool

	// ShowLinks includes the link table.
	// Default: true
	ShowLinks bool

	// Color styles names and literals with lipgloss (text format only).
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ShowKinds:  true,
		ShowLinks:  true,
	}
}

// Printer writes documents to an io.Writer.
type Printer struct {
	opts   Options
	writer io.Writer
	styles *styles // nil unless opts.Color
}

// New creates a Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintDocument(doc)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	p := &Printer{writer: w, opts: opts}
	if opts.Color {
		p.styles = newStyles(w)
	}
	return p
}

// PrintDocument prints the version, links and every entry ordered by name
// hash.
func (p *Printer) PrintDocument(doc *types.Document) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printDocumentJSON(doc)
	default:
		return p.printDocumentText(doc)
	}
}

// PrintEntry prints a single entry.
func (p *Printer) PrintEntry(e types.Entry) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.writeJSON(toJSONEntry(e))
	default:
		return p.printEntryText(e, 0)
	}
}

// PrintValue prints one value on its own.
func (p *Printer) PrintValue(v types.Value) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.writeJSON(toJSONValue(v))
	default:
		t := p.newText()
		t.value(v, 0)
		t.newline()
		return t.err
	}
}
