package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/binkit/pkg/types"
)

// textWriter keeps the first write error so rendering code can stay linear.
type textWriter struct {
	p   *Printer
	err error
}

func (p *Printer) newText() *textWriter { return &textWriter{p: p} }

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.p.writer, format, args...)
}

func (t *textWriter) indent(depth int) {
	t.printf("%s", strings.Repeat(" ", depth*t.p.opts.IndentSize))
}

func (t *textWriter) newline() { t.printf("\n") }

// elided reports whether a container at depth is past MaxDepth.
func (t *textWriter) elided(depth int) bool {
	return t.p.opts.MaxDepth > 0 && depth > t.p.opts.MaxDepth
}

func (p *Printer) printDocumentText(doc *types.Document) error {
	t := p.newText()
	t.printf("version: %d\n", doc.Version)
	if p.opts.ShowLinks {
		t.printf("links: %d\n", len(doc.Links))
		for _, l := range doc.Links {
			t.indent(1)
			t.printf("%s\n", p.literal(strconv.Quote(l)))
		}
	}
	t.printf("entries: %d\n", len(doc.Entries))
	for _, e := range doc.SortedEntries() {
		t.entry(e, 1)
	}
	return t.err
}

func (p *Printer) printEntryText(e types.Entry, depth int) error {
	t := p.newText()
	t.entry(e, depth)
	return t.err
}

func (t *textWriter) entry(e types.Entry, depth int) {
	t.indent(depth)
	t.printf("%s = ", t.p.fieldName(e.Name.String()))
	if e.Struct == nil {
		t.printf("null\n")
		return
	}
	t.structValue(e.Struct, depth)
	t.newline()
}

// value writes v starting at the current column. Multi-line values close at
// the indent of depth.
func (t *textWriter) value(v types.Value, depth int) {
	p := t.p
	switch v := v.(type) {
	case types.None:
		t.printf("%s", p.literal("null"))
	case types.Bool:
		t.printf("%s", p.literal(strconv.FormatBool(bool(v))))
	case types.Signed:
		t.printf("%s", p.literal(strconv.FormatInt(int64(v), 10)))
	case types.Unsigned:
		t.printf("%s", p.literal(strconv.FormatUint(uint64(v), 10)))
	case types.Float:
		t.printf("%s", p.literal(formatFloat(float32(v))))
	case types.Vec2:
		t.printf("%s", p.literal(formatFloats(v[:])))
	case types.Vec3:
		t.printf("%s", p.literal(formatFloats(v[:])))
	case types.Vec4:
		t.printf("%s", p.literal(formatFloats(v[:])))
	case types.Mtx44:
		t.printf("{\n")
		for _, row := range v {
			t.indent(depth + 1)
			t.printf("%s\n", p.literal(formatFloats(row[:])))
		}
		t.indent(depth)
		t.printf("}")
	case types.Color:
		t.printf("%s", p.literal(fmt.Sprintf("{ %d, %d, %d, %d }", v.R, v.G, v.B, v.A)))
	case types.String:
		t.printf("%s", p.literal(strconv.Quote(string(v))))
	case types.Hash:
		t.printf("%s", p.literal(v.String()))
	case types.Link:
		t.printf("%s", p.fieldName(v.String()))
	case types.File:
		if v.Resolved() {
			t.printf("%s", p.literal(strconv.Quote(v.Label)))
		} else {
			t.printf("%s", p.literal(v.Hex()))
		}
	case types.List:
		t.list(v, depth)
	case types.Map:
		t.mapValue(v, depth)
	case *types.Struct:
		t.structValue(v, depth)
	default:
		t.printf("<%T>", v)
	}
}

func (t *textWriter) list(l types.List, depth int) {
	switch {
	case len(l) == 0:
		t.printf("[]")
		return
	case t.elided(depth):
		t.printf("[ ... %d items ]", len(l))
		return
	}
	t.printf("[\n")
	for _, v := range l {
		t.indent(depth + 1)
		t.value(v, depth+1)
		t.newline()
	}
	t.indent(depth)
	t.printf("]")
}

func (t *textWriter) mapValue(m types.Map, depth int) {
	switch {
	case len(m) == 0:
		t.printf("{}")
		return
	case t.elided(depth):
		t.printf("{ ... %d pairs }", len(m))
		return
	}
	t.printf("{\n")
	for _, pair := range m {
		t.indent(depth + 1)
		t.value(pair.Key, depth+1)
		t.printf(" => ")
		t.value(pair.Value, depth+1)
		t.newline()
	}
	t.indent(depth)
	t.printf("}")
}

func (t *textWriter) structValue(s *types.Struct, depth int) {
	t.printf("%s ", t.p.typeName(s.Type.String()))
	switch {
	case len(s.Fields) == 0:
		t.printf("{}")
		return
	case t.elided(depth):
		t.printf("{ ... %d fields }", len(s.Fields))
		return
	}
	t.printf("{\n")
	for _, f := range s.SortedFields() {
		t.indent(depth + 1)
		t.printf("%s", t.p.fieldName(f.Name.String()))
		if t.p.opts.ShowKinds {
			t.printf(": %s", t.p.kindName(f.Value.Kind().String()))
		}
		t.printf(" = ")
		t.value(f.Value, depth+1)
		t.newline()
	}
	t.indent(depth)
	t.printf("}")
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatFloats(fs []float32) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
