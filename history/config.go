package history

// UnlimitedDepth is the MaxDepth value that disables stack trimming.
const UnlimitedDepth = 0

// Config configures a Context's bookkeeping.
type Config struct {
	// MaxDepth bounds the number of committed (non-redo-tail) records a
	// Context keeps. Once exceeded, the oldest record above the sentinel
	// is dropped. UnlimitedDepth disables trimming.
	MaxDepth int

	// IDGenerator produces Record ids. Defaults to a monotonically
	// increasing process-wide counter when nil.
	IDGenerator func() uint64
}

// Defaults is the zero-value Config: unlimited depth, the default id
// generator. Use it as a starting point for modifications instead of an
// empty Config literal.
var Defaults = Config{}
