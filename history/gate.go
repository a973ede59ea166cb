package history

// recordingGate is the process-wide recording switch: the active context
// that Push/Save/Load operate against, and the lock that silences them.
// It is a package-level singleton by design (see DESIGN.md) but isolated
// behind get/set accessors so tests can substitute or reset it between
// cases.
type recordingGate struct {
	active *Context
	locked bool
}

var gate = &recordingGate{}

// SetContext swaps the process-wide active context. Safe to call at any
// time; used by PushScope/PopScope to switch contexts as nested operations
// begin and end.
func SetContext(ctx *Context) {
	gate.active = ctx
}

// GetContext returns the process-wide active context, or nil if none has
// been set.
func GetContext() *Context {
	return gate.active
}

// GetRootContext ascends from the active context to the one whose parent
// is nil, or returns nil if no active context is set.
func GetRootContext() *Context {
	ctx := gate.active
	for ctx != nil && ctx.parent != nil {
		ctx = ctx.parent
	}
	return ctx
}

// Disable locks the gate. While locked, every mutating and most query
// operations on Context and Record become no-ops returning a neutral
// value, letting hosts silence recording wholesale (e.g. during bulk
// loads or internal edits) without conditional branches at every call
// site.
func Disable() {
	gate.locked = true
}

// Enable unlocks the gate.
func Enable() {
	gate.locked = false
}

// Locked reports whether the gate currently silences recording.
func Locked() bool {
	return gate.locked
}
