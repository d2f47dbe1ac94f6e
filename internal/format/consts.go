// Package format houses the wire-level constants and header decoding for
// property-bag ("PROP") documents. Value decoding lives in internal/reader;
// this package keeps the numbers and the small fixed structures in one place.
package format

// Magic is the four-byte signature at offset 0 of every document.
// Layout:
//
//	0x00  'P' 'R' 'O' 'P'
var Magic = []byte{'P', 'R', 'O', 'P'}

const (
	// MagicSize is the length of the document signature.
	MagicSize = 4

	// HeaderSize covers the magic and the u32 version that follows it.
	HeaderSize = MagicSize + 4

	// NullTypeHash marks an absent pointer/embed struct. No region follows it.
	NullTypeHash = 0
)

// Fixed payload sizes in bytes.
const (
	SizeVec2  = 2 * 4
	SizeVec3  = 3 * 4
	SizeVec4  = 4 * 4
	SizeMtx44 = 4 * SizeVec4
	SizeColor = 4
)
