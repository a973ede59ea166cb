package history

// PushScope is a scoped controller bracketing a do-function's body. Its
// constructor descends the process-wide active context into the
// just-pushed record's sub-context; its Close ascends back out and
// performs the cursor bookkeeping a plain push would have performed had
// it run normally (skipped during redo, since the record already exists).
//
// Hosts must ensure a PushScope's lifetime spans exactly the remainder of
// the do-function body, including early returns - call Close via defer.
type PushScope struct {
	outer  *Context
	active bool
}

// NewPushScope constructs a PushScope. It is a no-op (Close will also be a
// no-op) if the gate is locked or the currently active context is
// undoing - a do-function is never entered from inside an undo body;
// the symmetric Pop controller handles that descent instead.
func NewPushScope() *PushScope {
	p := &PushScope{}
	if gate.locked {
		return p
	}
	outer := gate.active
	if outer == nil || outer.IsUndoing() {
		return p
	}
	p.outer = outer
	SetContext(outer.Present().sub)
	p.active = true
	return p
}

// Close ascends the active context back to its parent. Safe to call more
// than once; only the first call (while active) has effect.
func (p *PushScope) Close() {
	if gate.locked || !p.active {
		return
	}
	p.active = false
	if cur := GetContext(); cur != nil && cur.IsUndoing() {
		return
	}
	SetContext(p.outer)
	a := p.outer
	if a.parent != nil && a.IsRedoing() && a.present < len(a.stack)-1 {
		a.present++
		return
	}
	if !a.IsRedoing() {
		a.notify()
	}
}

// Abort implements the abort protocol: it releases this scope early,
// ascending the active context back to the outer one and clearing the
// internal active flag, WITHOUT the normal redo bookkeeping or observer
// notification a completed push would trigger - then removes the
// just-pushed record from the outer context, as if the push never
// happened. A later call to Close (e.g. a deferred one) becomes a no-op
// because the active flag is already cleared.
//
// Used when a do-body determines, after the fact, that its operation
// produced no observable change.
func (p *PushScope) Abort() {
	if !p.active {
		return
	}
	p.active = false
	outer := p.outer
	if !gate.locked {
		SetContext(outer)
	}
	if outer != nil {
		outer.AbortPush()
	}
}

// PopScope is the symmetric scoped controller used inside an undo body.
type PopScope struct {
	outer  *Context
	active bool
}

// NewPopScope constructs a PopScope, descending the active context into
// the present record's sub-context.
func NewPopScope() *PopScope {
	p := &PopScope{}
	if gate.locked {
		return p
	}
	outer := gate.active
	if outer == nil {
		return p
	}
	p.outer = outer
	SetContext(outer.Present().sub)
	p.active = true
	return p
}

// Close ascends the active context back to its parent. When that context
// is itself nested (has a parent) and its present is above 1, Close
// retreats its cursor by one to propagate "one step undone" through nested
// layers; a root context's cursor is left to its own Undo.
func (p *PopScope) Close() {
	if gate.locked || !p.active {
		return
	}
	p.active = false
	SetContext(p.outer)
	a := p.outer
	if a.parent != nil && a.present > 1 {
		a.present--
	}
}
