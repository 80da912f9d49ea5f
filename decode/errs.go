package decode

import "errors"

var (
	// ErrTruncated reports a source exhausted in the middle of a field.
	ErrTruncated = errors.New("truncated input")
	// ErrUnknownTag reports a leading byte matching no wire form.
	ErrUnknownTag = errors.New("unrecognized tag")
	// ErrDepth reports structural nesting past the configured bound.
	ErrDepth = errors.New("nesting depth exceeded")
)
