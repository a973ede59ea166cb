package history

import "strings"

const undoKeySuffix = "_Undo"

// Record is one reversible operation: a label, a process-unique id, the
// do/undo closures captured at push time, a memento store, and a
// sub-context holding whatever records were pushed while this record's
// do-body ran.
type Record struct {
	label string
	id    uint64
	do    func() bool
	undo  func() bool

	mementos *Mementos
	sub      *Context
}

// Label returns the record's human-readable tag.
func (r *Record) Label() string { return r.label }

// ID returns the record's id: by default a process-unique, monotonically
// increasing counter value, or whatever the context's Config.IDGenerator
// produced.
func (r *Record) ID() uint64 { return r.id }

// SubContext returns the Context nested beneath this record.
func (r *Record) SubContext() *Context { return r.sub }

// Redo invokes the record's do-closure, propagating its result verbatim.
// The sentinel record (id 0) has a nil do and must never reach here.
func (r *Record) Redo() bool {
	if r.do == nil {
		return false
	}
	return r.do()
}

// Undo invokes the record's undo-closure, propagating its result verbatim.
func (r *Record) Undo() bool {
	if r.undo == nil {
		return false
	}
	return r.undo()
}

// Save stores value under key in the record's memento map. It fails,
// returning false, if the gate is locked or this record is not currently
// in its natural first execution (i.e. its sub-context, or an ancestor of
// it, is mid undo/redo). Saves made outside that window would silently
// clobber replay data, so they are refused.
func (r *Record) Save(key string, value interface{}) bool {
	if gate.locked {
		return false
	}
	if r.sub.IsUndoing() || r.sub.IsRedoing() {
		return false
	}
	r.mementos.save(key, value)
	return true
}

// Load retrieves a previously saved value into out. It fails if the gate
// is locked, if this record is NOT currently being replayed (undone or
// redone), if key (after _Undo suffix stripping) was never saved, or if
// the stored value's dynamic type does not match *out.
func (r *Record) Load(key string, out interface{}) bool {
	if gate.locked {
		return false
	}
	if !r.sub.IsUndoing() && !r.sub.IsRedoing() {
		return false
	}
	key = strings.TrimSuffix(key, undoKeySuffix)
	return r.mementos.load(key, out)
}

// dumpKeys exposes the memento keys in insertion order for Dump rendering.
func (r *Record) dumpKeys() []string {
	return r.mementos.keys()
}
