package format

import "errors"

var (
	// ErrSignatureMismatch indicates the document did not start with Magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownTag indicates a type tag outside the known set.
	ErrUnknownTag = errors.New("format: unknown type tag")
	// ErrDepth indicates nesting beyond MaxDepth.
	ErrDepth = errors.New("format: nesting too deep")
	// ErrRegionOverrun indicates a region length reaching past its parent.
	ErrRegionOverrun = errors.New("format: region overruns parent")
	// ErrInvalidText indicates text bytes that are not valid UTF-8.
	ErrInvalidText = errors.New("format: invalid utf-8 text")
)
