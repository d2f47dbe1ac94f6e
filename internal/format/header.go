package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/binkit/internal/buf"
)

// Header is the fixed prefix of a document.
//
//	Offset  Size  Description
//	------  ----  -------------------------------
//	 0x000   4    'P' 'R' 'O' 'P'
//	 0x004   4    Version (opaque, not validated)
//
// The link table starts at HeaderSize.
type Header struct {
	Version uint32
}

// ParseHeader validates the magic and extracts the version.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < MagicSize {
		return Header{}, fmt.Errorf("header magic: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:MagicSize], Magic) {
		return Header{}, fmt.Errorf("header: %w", ErrSignatureMismatch)
	}
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header version: %w", ErrTruncated)
	}
	return Header{Version: buf.U32LE(b[MagicSize:])}, nil
}
