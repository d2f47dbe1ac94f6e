package reader

import (
	"fmt"

	"github.com/joshuapare/binkit/internal/buf"
	"github.com/joshuapare/binkit/internal/format"
	"github.com/joshuapare/binkit/pkg/types"
)

// sub reads a u32 region length and returns a child cursor over exactly that
// many bytes. The parent is moved past the whole region before the child
// reads anything, so a child that stops early leaves no gap and a child can
// never read into its siblings.
func (c *cursor) sub(stage string) (cursor, error) {
	depth := c.depth + 1
	if depth > c.d.maxDepth {
		return cursor{}, c.errAt(types.ErrKindDepthExceeded, c.pos, format.ErrDepth,
			fmt.Sprintf("region depth %d exceeds limit %d", depth, c.d.maxDepth))
	}
	lenOff := c.pos
	n, err := c.u32()
	if err != nil {
		return cursor{}, err
	}
	start := c.pos
	end, ok := buf.Span(start, int(n), c.end)
	if !ok {
		return cursor{}, c.errAt(types.ErrKindRegionOverrun, lenOff, format.ErrRegionOverrun,
			fmt.Sprintf("region of %d bytes at 0x%X ends past 0x%X", n, start, c.end))
	}
	c.pos = end
	return cursor{
		buf:   c.buf,
		pos:   start,
		end:   end,
		depth: depth,
		stage: stage,
		d:     c.d,
	}, nil
}

// nest counts an inline nesting level that does not open a region, used for
// an option directly holding another option. The returned func restores the
// depth.
func (c *cursor) nest() (func(), error) {
	if c.depth+1 > c.d.maxDepth {
		return nil, c.errAt(types.ErrKindDepthExceeded, c.pos, format.ErrDepth,
			fmt.Sprintf("inline depth %d exceeds limit %d", c.depth+1, c.d.maxDepth))
	}
	c.depth++
	return func() { c.depth-- }, nil
}
