// Package historyids provides an alternate Record id generator backed by
// github.com/google/uuid, for hosts that persist history dumps across a
// distributed system and need collision-proof ids instead of the core's
// default monotonic counter.
package historyids

import (
	"github.com/google/uuid"
	"github.com/rasteric/history"
)

// UUIDGenerator returns a history.Config.IDGenerator that derives a
// uint64 id from a fresh random UUID's low 64 bits. Collisions are
// astronomically unlikely and, unlike the monotonic counter, ids carry no
// ordering information across processes - exactly the trade-off a host
// wants when merging dumps from multiple processes rather than running a
// single one.
func UUIDGenerator() func() uint64 {
	return func() uint64 {
		id := uuid.New()
		var n uint64
		for _, b := range id[8:] {
			n = n<<8 | uint64(b)
		}
		return n
	}
}

// WithUUIDs returns a history.Config with MaxDepth carried over from base
// and IDGenerator set to UUIDGenerator().
func WithUUIDs(base history.Config) history.Config {
	base.IDGenerator = UUIDGenerator()
	return base
}
