package history

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

var nextID uint64

func defaultIDGenerator() uint64 {
	return atomic.AddUint64(&nextID, 1)
}

// Context is a node in the history tree: an ordered stack of Records with
// a present cursor. Index 0 of the stack is a sentinel "before-first"
// element that is never executed; real records occupy indices 1..N.
type Context struct {
	stack   []*Record
	present int

	parent *Context

	isUndoing bool
	isRedoing bool

	onStackChanged func(present int)

	mu sync.Mutex

	config Config
}

// NewContext constructs a Context with the given parent (nil for a root
// context) and an optional Config. Passing more than one Config is a
// programmer error; NewContext returns an error in that case so callers
// don't have to guard every other call site against it.
func NewContext(parent *Context, config ...Config) (*Context, error) {
	if len(config) > 1 {
		return nil, ErrTooManyConfig
	}
	cfg := Defaults
	if len(config) == 1 {
		cfg = config[0]
	}
	ctx := &Context{
		parent: parent,
		config: cfg,
	}
	ctx.stack = []*Record{ctx.newSentinel()}
	return ctx, nil
}

func (c *Context) newSentinel() *Record {
	return &Record{label: "<sentinel>", mementos: newMementos()}
}

func (c *Context) genID() uint64 {
	if c.config.IDGenerator != nil {
		return c.config.IDGenerator()
	}
	return defaultIDGenerator()
}

// Parent returns the Context whose current record owns this one, or nil
// at the root.
func (c *Context) Parent() *Context { return c.parent }

// IsUndoing reports whether this context or any ancestor is currently
// inside a call to Undo.
func (c *Context) IsUndoing() bool {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if ctx.isUndoing {
			return true
		}
	}
	return false
}

// IsRedoing reports whether this context or any ancestor is currently
// inside a call to Redo.
func (c *Context) IsRedoing() bool {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if ctx.isRedoing {
			return true
		}
	}
	return false
}

// BindOnStackChanged sets the single observer invoked with the new present
// index after every undo, redo, and clear, and after every push completed
// by PushScope.Close outside a redo (Push itself does not fire it). There
// is one observer per
// context, not a list; bind again to replace it.
func (c *Context) BindOnStackChanged(fn func(present int)) {
	c.onStackChanged = fn
}

// UnbindOnStackChanged clears the observer.
func (c *Context) UnbindOnStackChanged() {
	c.onStackChanged = nil
}

func (c *Context) notify() {
	if c.onStackChanged != nil {
		c.onStackChanged(c.present)
	}
}

// Push captures do and undo (which must already have their arguments
// bound, typically via closures) into a new Record, truncates any redo
// tail, appends the record, and advances present. It is a no-op (returns
// nil) if the gate is locked or this context or an ancestor is currently
// undoing or redoing.
func (c *Context) Push(label string, do, undo func() bool) *Record {
	if gate.locked {
		return nil
	}
	if c.IsUndoing() || c.IsRedoing() {
		return nil
	}
	// truncate redo tail
	c.stack = c.stack[:c.present+1]

	rec := &Record{
		label:    label,
		id:       c.genID(),
		do:       do,
		undo:     undo,
		mementos: newMementos(),
	}
	rec.sub, _ = NewContext(c)
	c.stack = append(c.stack, rec)
	c.present++
	c.trim()
	return rec
}

// trim enforces config.MaxDepth by dropping the oldest non-sentinel,
// already-committed records once the cap is exceeded. It never touches
// the sentinel at index 0 or any record in the redo tail.
func (c *Context) trim() {
	if c.config.MaxDepth <= 0 {
		return
	}
	committed := c.present // records at indices 1..present
	if committed <= c.config.MaxDepth {
		return
	}
	drop := committed - c.config.MaxDepth
	c.stack = append(c.stack[:1], c.stack[1+drop:]...)
	c.present -= drop
}

// AbortPush removes the most recently pushed record and retreats present
// by one, as if the push had never happened. It is a no-op under the same
// conditions as Push. Used when a do-body determines, after the fact,
// that its operation produced no observable change.
func (c *Context) AbortPush() {
	if gate.locked {
		return
	}
	if c.IsUndoing() || c.IsRedoing() {
		return
	}
	if c.present == 0 {
		return
	}
	c.stack = c.stack[:c.present]
	c.present--
}

// Undo invokes the undo-closure of the present record and retreats the
// cursor. Returns false if the gate is locked or there is nothing to
// undo; otherwise returns the closure's own result.
func (c *Context) Undo() bool {
	if gate.locked {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.present == 0 {
		return false
	}
	c.isUndoing = true
	result := c.stack[c.present].Undo()
	c.present--
	c.isUndoing = false
	c.notify()
	return result
}

// Redo invokes the do-closure of the record just past present and
// advances the cursor. Returns false if the gate is locked or there is
// nothing to redo; otherwise returns the closure's own result.
//
// The cursor is advanced only after the do-closure returns and BEFORE
// isRedoing is cleared (Undo likewise retreats its cursor before clearing
// isUndoing). PushScope's release step runs inside the do-closure and
// relies on IsRedoing still being true and present not yet advanced; do
// not reorder these steps.
func (c *Context) Redo() bool {
	if gate.locked {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.present == len(c.stack)-1 {
		return false
	}
	c.isRedoing = true
	result := c.stack[c.present+1].Redo()
	c.present++
	c.isRedoing = false
	c.notify()
	return result
}

// MustUndo is a convenience wrapper over Undo for hosts that prefer an
// error-returning call: it reports ErrCantUndo when there was nothing to
// undo, and nil otherwise (the underlying closure's own false return is
// not itself an error - it is the bool result of Undo).
func (c *Context) MustUndo() error {
	if c.Present() == nil || c.present == 0 {
		return ErrCantUndo
	}
	c.Undo()
	return nil
}

// MustRedo is the Redo analogue of MustUndo.
func (c *Context) MustRedo() error {
	if gate.locked || c.PeekFuture() == nil {
		return ErrCantRedo
	}
	c.Redo()
	return nil
}

// Present returns the record at the present cursor, or nil if the gate is
// locked. At present==0 this returns the never-executed sentinel, not nil.
func (c *Context) Present() *Record {
	if gate.locked {
		return nil
	}
	return c.stack[c.present]
}

// PeekFuture returns the record one past present (the next redo target),
// or nil if there is none.
func (c *Context) PeekFuture() *Record {
	if c.present+1 >= len(c.stack) {
		return nil
	}
	return c.stack[c.present+1]
}

// StackView returns a read-only snapshot of the stack: a copy, so callers
// cannot mutate internal ordering through the returned slice.
func (c *Context) StackView() []*Record {
	out := make([]*Record, len(c.stack))
	copy(out, c.stack)
	return out
}

// Clear resets the stack to a single sentinel element and fires the
// observer. It is a no-op if the gate is locked.
func (c *Context) Clear() {
	if gate.locked {
		return
	}
	c.stack = []*Record{c.newSentinel()}
	c.present = 0
	c.notify()
}

// UndoLabel returns the label of the record a subsequent Undo would
// touch, or "" if there is none.
func (c *Context) UndoLabel() string {
	if c.present == 0 {
		return ""
	}
	return c.stack[c.present].label
}

// RedoLabel returns the label of the record a subsequent Redo would
// touch, or "" if there is none.
func (c *Context) RedoLabel() string {
	if r := c.PeekFuture(); r != nil {
		return r.label
	}
	return ""
}

// Dump renders the stack top-down for debugging, marking the present
// record and recursing into each record's sub-context with increased
// indent.
func (c *Context) Dump(indent string) string {
	var b strings.Builder
	for i := len(c.stack) - 1; i >= 0; i-- {
		rec := c.stack[i]
		marker := "  "
		if i == c.present {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s%s [%d] %s", indent, marker, rec.id, rec.label)
		if keys := rec.dumpKeys(); len(keys) > 0 {
			fmt.Fprintf(&b, " (mementos: %s)", strings.Join(keys, ", "))
		}
		b.WriteString("\n")
		if rec.sub != nil && len(rec.sub.stack) > 1 {
			b.WriteString(rec.sub.Dump(indent + "    "))
		}
	}
	return b.String()
}
