package decode

// DefaultMaxDepth bounds structural nesting when no MaxDepth option
// is given.
const DefaultMaxDepth = 512

type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	maxDepth int
}

// MaxDepth sets the maximum structural nesting depth accepted before
// Decode fails with ErrDepth.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}
