package history_test

import (
	"testing"

	"github.com/rasteric/history"
)

// resetGate restores the package-level gate to a known, unlocked, empty
// state before each test. The gate is intentionally a process-wide
// singleton (see DESIGN.md); tests that touch it must not leak state into
// one another.
func resetGate(t *testing.T) *history.Context {
	t.Helper()
	history.Enable()
	ctx, err := history.NewContext(nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	history.SetContext(ctx)
	t.Cleanup(func() {
		history.SetContext(nil)
		history.Enable()
	})
	return ctx
}

// doPush mimics a host do-function: it pushes a record carrying the given
// do/undo closures, wraps the closure's first execution in a PushScope
// (as real callers must), and runs it.
func doPush(label string, do, undo func() bool) *history.Record {
	ctx := history.GetContext()
	rec := ctx.Push(label, do, undo)
	if rec == nil {
		return nil
	}
	scope := history.NewPushScope()
	defer scope.Close()
	rec.Redo()
	return rec
}
