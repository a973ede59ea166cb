package historycmd

import (
	"context"
	"sync"

	"github.com/rasteric/history"
)

// AsyncExecutor runs Registry invocations on background goroutines,
// tracking them with a WaitGroup and a cancelable master context - the
// same bookkeeping a host needs when a command may block on I/O and the
// surrounding application still has to shut down cleanly.
//
// A single history.Context is not safe for concurrent Invoke calls;
// an AsyncExecutor is meant to serialize access to one Context from many
// goroutines that each call Invoke, not to run several Invokes against the
// same Context truly in parallel.
type AsyncExecutor struct {
	reg        *Registry
	mu         sync.Mutex
	wg         sync.WaitGroup
	mainCtx    context.Context
	mainCancel context.CancelFunc
}

// NewAsyncExecutor returns an AsyncExecutor dispatching through reg.
func NewAsyncExecutor(reg *Registry) *AsyncExecutor {
	ctx, cancel := context.WithCancel(context.Background())
	return &AsyncExecutor{reg: reg, mainCtx: ctx, mainCancel: cancel}
}

// Context returns the executor's cancelable master context. Proc functions
// that accept a context via their args should derive from this one so
// CancelAll reaches them.
func (e *AsyncExecutor) Context() context.Context {
	return e.mainCtx
}

// CancelAll cancels the master context.
func (e *AsyncExecutor) CancelAll() {
	e.mainCancel()
}

// Wait blocks until every Invoke call started before it returns.
func (e *AsyncExecutor) Wait() {
	e.wg.Wait()
}

// Shutdown optionally cancels, then waits for all pending invocations to
// finish. Well-behaved Proc functions should still run to completion
// quickly after cancellation rather than leaving history in a half
// recorded state.
func (e *AsyncExecutor) Shutdown(cancel bool) {
	if cancel {
		e.CancelAll()
	}
	e.Wait()
}

// Invoke runs reg.Invoke(ctx, id, args) on a new goroutine, serialized
// against this executor's other Invoke calls, and reports the result to
// final once done.
func (e *AsyncExecutor) Invoke(ctx *history.Context, id int, args []interface{}, final func(interface{}, error)) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.mu.Lock()
		result, err := e.reg.Invoke(ctx, id, args)
		e.mu.Unlock()
		final(result, err)
	}()
}
