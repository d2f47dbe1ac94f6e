// Package reader decodes property-bag documents into the types data model.
// The exported entry point is used by the public wrapper (pkg/bin) so the
// cursor and region machinery stay internal.
package reader

import (
	"errors"
	"fmt"

	"github.com/joshuapare/binkit/internal/format"
	"github.com/joshuapare/binkit/pkg/types"
)

// Decode parses a complete document held in buf. The buffer is read in place
// and never modified; res may be nil, in which case every name is numeric.
func Decode(buf []byte, res types.NameResolver, opts types.DecodeOptions) (*types.Document, error) {
	d := &decoder{
		res:      res,
		maxDepth: opts.EffectiveDepth(),
		lenient:  opts.LenientText,
	}

	head, err := format.ParseHeader(buf)
	if err != nil {
		return nil, wrapHeaderErr(err, len(buf))
	}

	c := &cursor{buf: buf, pos: format.HeaderSize, end: len(buf), d: d}
	doc := types.NewDocument(head.Version)

	if doc.Links, err = c.links(); err != nil {
		return nil, err
	}
	if err := c.entries(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// decoder holds the per-call settings shared by every cursor of one decode.
type decoder struct {
	res      types.NameResolver
	maxDepth int
	lenient  bool
}

func (d *decoder) fieldName(h uint32) types.Name32 {
	if d.res == nil {
		return types.Name32{Hash: h}
	}
	return d.res.FieldName(h)
}

func (d *decoder) entryName(h uint32) types.Name32 {
	if d.res == nil {
		return types.Name32{Hash: h}
	}
	return d.res.EntryName(h)
}

func (d *decoder) typeName(h uint32) types.Name32 {
	if d.res == nil {
		return types.Name32{Hash: h}
	}
	return d.res.TypeName(h)
}

func (d *decoder) hashName(h uint32) types.Name32 {
	if d.res == nil {
		return types.Name32{Hash: h}
	}
	return d.res.HashName(h)
}

func (d *decoder) pathName(h uint64) types.Name64 {
	if d.res == nil {
		return types.Name64{Hash: h}
	}
	return d.res.PathName(h)
}

func wrapHeaderErr(err error, size int) error {
	switch {
	case errors.Is(err, format.ErrSignatureMismatch):
		return &types.Error{Kind: types.ErrKindBadMagic, Stage: stageHeader, Msg: "document does not start with PROP", Err: err}
	case errors.Is(err, format.ErrTruncated):
		return &types.Error{
			Kind:   types.ErrKindUnexpectedEOF,
			Offset: size,
			Stage:  stageHeader,
			Msg:    fmt.Sprintf("need %d header bytes, have %d", format.HeaderSize, size),
			Err:    err,
		}
	default:
		return &types.Error{Kind: types.ErrKindUnexpectedEOF, Stage: stageHeader, Err: err}
	}
}
