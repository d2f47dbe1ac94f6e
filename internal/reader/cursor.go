package reader

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/binkit/internal/buf"
	"github.com/joshuapare/binkit/internal/format"
	"github.com/joshuapare/binkit/pkg/types"
)

// Parsing stages reported in errors.
const (
	stageHeader     = "header"
	stageLinks      = "links"
	stageEntryTypes = "entry types"
	stageEntry      = "entry"
	stageFields     = "fields"
	stageList       = "list"
	stageMap        = "map"
	stageOption     = "option"
	stageStruct     = "struct"
)

// cursor is a forward-only view over buf[pos:end]. Sub-regions share buf and
// get their own pos/end; nothing is copied.
type cursor struct {
	buf   []byte
	pos   int
	end   int // exclusive; the region end, or len(buf) at top level
	depth int // regions open above this cursor
	stage string
	d     *decoder
}

// take returns the next n bytes and advances past them.
func (c *cursor) take(n int) ([]byte, error) {
	end, ok := buf.Span(c.pos, n, c.end)
	if !ok {
		return nil, c.errEOF(n)
	}
	b := c.buf[c.pos:end]
	c.pos = end
	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return buf.U16LE(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return buf.U32LE(b), nil
}

// floatsLE fills dst from consecutive little-endian float32s in b.
func floatsLE(b []byte, dst []float32) {
	for i := range dst {
		dst[i] = buf.F32LE(b[4*i:])
	}
}

// colorABGR converts the wire order A,B,G,R to a stored R,G,B,A color.
func colorABGR(b []byte) types.Color {
	return types.Color{R: b[3], G: b[2], B: b[1], A: b[0]}
}

// text reads a u16 byte length followed by that many bytes of UTF-8.
func (c *cursor) text() (string, error) {
	n, err := c.u16()
	if err != nil {
		return "", err
	}
	start := c.pos
	b, err := c.take(int(n))
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	if c.d.lenient {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", c.errAt(types.ErrKindInvalidText, start, err, "latin-1 fallback failed")
		}
		return string(out), nil
	}
	return "", c.errAt(types.ErrKindInvalidText, start, format.ErrInvalidText,
		fmt.Sprintf("%d bytes of text are not valid utf-8", n))
}

// tag reads and validates a one-byte type tag.
func (c *cursor) tag() (format.Tag, error) {
	start := c.pos
	b, err := c.u8()
	if err != nil {
		return 0, err
	}
	t := format.Tag(b)
	if !t.Valid() {
		return 0, c.errAt(types.ErrKindUnknownTag, start, format.ErrUnknownTag, fmt.Sprintf("tag byte 0x%02X", b))
	}
	return t, nil
}

func (c *cursor) remaining() int { return c.end - c.pos }

func (c *cursor) errEOF(n int) error {
	return c.errAt(types.ErrKindUnexpectedEOF, c.pos, format.ErrTruncated,
		fmt.Sprintf("need %d bytes, %d remain", n, c.remaining()))
}

func (c *cursor) errAt(kind types.ErrKind, off int, cause error, msg string) error {
	return &types.Error{Kind: kind, Offset: off, Stage: c.stage, Msg: msg, Err: cause}
}
