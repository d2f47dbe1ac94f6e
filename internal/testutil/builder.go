// Package testutil builds property-bag documents byte by byte for tests.
// Nothing here is an encoder: callers spell out the wire layout explicitly,
// which lets tests produce malformed input as easily as valid input.
package testutil

import (
	"encoding/binary"
	"math"

	"github.com/joshuapare/binkit/internal/format"
)

// Writer appends little-endian primitives to a growing buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) Raw(b ...byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

func (w *Writer) U8(v uint8) *Writer { return w.Raw(v) }

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

func (w *Writer) U64(v uint64) *Writer {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
	return w
}

func (w *Writer) F32(v float32) *Writer { return w.U32(math.Float32bits(v)) }

// Tag writes a one-byte type tag.
func (w *Writer) Tag(t format.Tag) *Writer { return w.U8(uint8(t)) }

// Str writes a u16 byte length followed by the raw bytes of s.
func (w *Writer) Str(s string) *Writer {
	w.U16(uint16(len(s)))
	return w.Raw([]byte(s)...)
}

// Region writes whatever fn writes, prefixed by its u32 byte length.
func (w *Writer) Region(fn func(*Writer)) *Writer {
	inner := NewWriter()
	fn(inner)
	return w.RegionLen(uint32(inner.Len()), inner.Bytes())
}

// RegionLen writes an explicit (possibly wrong) length followed by body.
func (w *Writer) RegionLen(n uint32, body []byte) *Writer {
	w.U32(n)
	return w.Raw(body...)
}

// Field writes a field-name hash and tag, then the payload written by fn.
func (w *Writer) Field(hash uint32, t format.Tag, fn func(*Writer)) *Writer {
	w.U32(hash).Tag(t)
	if fn != nil {
		fn(w)
	}
	return w
}

// NestedLists writes the payload of a list value (element tag onward) that
// opens exactly levels regions. The innermost list is an empty list of none.
func NestedLists(w *Writer, levels int) {
	if levels <= 1 {
		w.Tag(format.TagNone).Region(func(w *Writer) { w.U32(0) })
		return
	}
	w.Tag(format.TagList).Region(func(w *Writer) {
		w.U32(1)
		NestedLists(w, levels-1)
	})
}

// Entry describes one entry for Document.
type Entry struct {
	Type       uint32
	Name       uint32
	FieldCount uint16
	Fields     func(*Writer) // writes FieldCount fields; may be nil
}

// Document assembles a complete document: header, links, type table, then
// one region per entry.
func Document(version uint32, links []string, entries ...Entry) []byte {
	w := NewWriter().Raw(format.Magic...).U32(version)
	w.U32(uint32(len(links)))
	for _, l := range links {
		w.Str(l)
	}
	w.U32(uint32(len(entries)))
	for _, e := range entries {
		w.U32(e.Type)
	}
	for _, e := range entries {
		w.Region(func(w *Writer) {
			w.U32(e.Name).U16(e.FieldCount)
			if e.Fields != nil {
				e.Fields(w)
			}
		})
	}
	return w.Bytes()
}
