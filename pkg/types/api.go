package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnexpectedEOF     ErrKind = iota + 1 // fewer bytes remain than a read needs
	ErrKindBadMagic                             // document does not start with "PROP"
	ErrKindUnknownTag                           // type tag outside the known set
	ErrKindDepthExceeded                        // nested regions beyond the depth cap
	ErrKindRegionOverrun                        // region length reaches past its parent
	ErrKindInvalidText                          // text bytes are not valid UTF-8
	ErrKindMalformedHashFile                    // dictionary line without separator or hex hash
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindUnexpectedEOF:
		return "unexpected end of data"
	case ErrKindBadMagic:
		return "bad magic"
	case ErrKindUnknownTag:
		return "unknown type tag"
	case ErrKindDepthExceeded:
		return "depth exceeded"
	case ErrKindRegionOverrun:
		return "region overrun"
	case ErrKindInvalidText:
		return "invalid text"
	case ErrKindMalformedHashFile:
		return "malformed hash file"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Error is a typed error with the byte offset and parsing stage where it was
// raised. For MalformedHashFile, Offset holds the 1-based line number.
type Error struct {
	Kind   ErrKind
	Offset int    // absolute byte offset in the document (or line number)
	Stage  string // innermost parsing stage, e.g. "fields" or "map"
	Msg    string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Kind.String()
	if e.Kind == ErrKindMalformedHashFile {
		s += fmt.Sprintf(" at line %d", e.Offset)
	} else {
		s += fmt.Sprintf(" at offset 0x%X", e.Offset)
	}
	if e.Stage != "" {
		s += " (" + e.Stage + ")"
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of offset or stage.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrUnexpectedEOF     = &Error{Kind: ErrKindUnexpectedEOF}
	ErrBadMagic          = &Error{Kind: ErrKindBadMagic}
	ErrUnknownTag        = &Error{Kind: ErrKindUnknownTag}
	ErrDepthExceeded     = &Error{Kind: ErrKindDepthExceeded}
	ErrRegionOverrun     = &Error{Kind: ErrKindRegionOverrun}
	ErrInvalidText       = &Error{Kind: ErrKindInvalidText}
	ErrMalformedHashFile = &Error{Kind: ErrKindMalformedHashFile}
)
