package types

// DepthLimit is the hard cap on nested regions. DecodeOptions.MaxDepth can
// lower it but never raise it.
const DepthLimit = 128

// StrictDepth is the depth used by StrictDecodeOptions.
const StrictDepth = 32

// DecodeOptions controls decoder behavior.
type DecodeOptions struct {
	// MaxDepth bounds nested containers. Zero or values above DepthLimit
	// select DepthLimit.
	MaxDepth int

	// LenientText decodes text that is not valid UTF-8 as ISO-8859-1 instead
	// of failing with ErrKindInvalidText. Every byte maps to one rune, so the
	// original bytes can be recovered by re-encoding.
	LenientText bool
}

// DefaultDecodeOptions returns the standard options: full depth, strict text.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxDepth: DepthLimit}
}

// StrictDecodeOptions returns options for untrusted input in constrained
// environments.
func StrictDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxDepth: StrictDepth}
}

// EffectiveDepth returns the depth cap actually enforced for o.
func (o DecodeOptions) EffectiveDepth() int {
	if o.MaxDepth <= 0 || o.MaxDepth > DepthLimit {
		return DepthLimit
	}
	return o.MaxDepth
}
