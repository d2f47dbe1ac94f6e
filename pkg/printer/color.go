package printer

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	fieldColor   = lipgloss.Color("6") // cyan
	typeColor    = lipgloss.Color("3") // yellow
	literalColor = lipgloss.Color("2") // green

	fieldStyle = lipgloss.NewStyle().
			Foreground(fieldColor).
			TabWidth(lipgloss.NoTabConversion)

	typeStyle = lipgloss.NewStyle().
			Foreground(typeColor).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion)

	literalStyle = lipgloss.NewStyle().
			Foreground(literalColor).
			TabWidth(lipgloss.NoTabConversion)

	kindStyle = lipgloss.NewStyle().
			Faint(true).
			TabWidth(lipgloss.NoTabConversion)
)

// styles holds the styles bound to one output. Whether to color is decided
// by Options.Color, so the renderer is pinned to ANSI rather than probing w.
type styles struct {
	field, typ, literal, kind lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &styles{
		field:   fieldStyle.Renderer(r),
		typ:     typeStyle.Renderer(r),
		literal: literalStyle.Renderer(r),
		kind:    kindStyle.Renderer(r),
	}
}

// Each helper returns s unchanged when color is off.

func (p *Printer) fieldName(s string) string {
	if p.styles == nil {
		return s
	}
	return p.styles.field.Render(s)
}

func (p *Printer) typeName(s string) string {
	if p.styles == nil {
		return s
	}
	return p.styles.typ.Render(s)
}

func (p *Printer) literal(s string) string {
	if p.styles == nil {
		return s
	}
	return p.styles.literal.Render(s)
}

func (p *Printer) kindName(s string) string {
	if p.styles == nil {
		return s
	}
	return p.styles.kind.Render(s)
}
