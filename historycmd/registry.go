// Package historycmd adapts a menu-style command catalog - each operation
// identified by a numeric ID, a name, a help string, and a shortcut - onto
// a history.Context, so a host with a fixed set of named commands (the
// kind a menu bar or a REPL dispatches by name) gets undo/redo for free
// instead of wiring ad hoc do/undo closures at every call site.
package historycmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rasteric/history"
)

// ErrUnknownCommand is returned by Invoke when no Spec is registered under
// the given id.
var ErrUnknownCommand = errors.New("historycmd: no command registered with that id")

// ErrNotRecording is returned by Invoke when the history gate refused the
// push (locked, or called from inside an undo/redo replay).
var ErrNotRecording = errors.New("historycmd: push was refused by the history gate")

// Command describes a registered operation's display metadata, independent
// of any particular invocation's arguments.
type Command interface {
	ID() int              // the numeric command sort
	Name() string         // the name of the command
	Info() string         // a help string describing the command
	MenuShortcut() string // the associated menu shortcut
}

// Proc runs a command with the given arguments, either performing it or
// reversing it depending on which field of Spec it was assigned to.
type Proc func(args []interface{}) (interface{}, error)

// Spec binds a Command's metadata to the procs that perform and reverse
// it. UndoArgs, if set, derives the arguments passed to Undo from the
// arguments the original invocation was called with (e.g. capturing the
// prior value of something about to be overwritten); if nil, Undo
// receives the same args Do did.
type Spec struct {
	Cmd      Command
	Do       Proc
	Undo     Proc
	UndoArgs func(args []interface{}) []interface{}
}

// Registry is a catalog of Specs keyed by Command ID.
type Registry struct {
	mu    sync.RWMutex
	specs map[int]Spec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[int]Spec)}
}

// Register adds or replaces the Spec for spec.Cmd.ID().
func (r *Registry) Register(spec Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[spec.Cmd.ID()] = spec
}

// Lookup returns the Spec registered under id, if any.
func (r *Registry) Lookup(id int) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[id]
	return s, ok
}

// CommandOf returns the Command metadata registered under id, or nil.
func (r *Registry) CommandOf(id int) Command {
	s, ok := r.Lookup(id)
	if !ok {
		return nil
	}
	return s.Cmd
}

// Invoke runs the registered command's Do proc with args and pushes the
// resulting reversible operation onto ctx, so a later ctx.Undo() runs
// Undo with either args or UndoArgs(args). The push (and therefore the
// undo/redo history) is skipped under the same conditions history.Push
// itself refuses a push; Invoke still runs Do in that case without
// recording it, and returns Do's result with Do's own error, or with
// ErrNotRecording if Do succeeded.
func (r *Registry) Invoke(ctx *history.Context, id int, args []interface{}) (interface{}, error) {
	spec, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, id)
	}

	var result interface{}
	var doErr error
	rec := ctx.Push(spec.Cmd.Name(),
		func() bool {
			result, doErr = spec.Do(args)
			return doErr == nil
		},
		func() bool {
			undoArgs := args
			if spec.UndoArgs != nil {
				undoArgs = spec.UndoArgs(args)
			}
			_, undoErr := spec.Undo(undoArgs)
			return undoErr == nil
		},
	)
	if rec == nil {
		result, doErr = spec.Do(args)
		if doErr != nil {
			return result, doErr
		}
		return result, ErrNotRecording
	}

	scope := history.NewPushScope()
	defer scope.Close()
	if !rec.Redo() {
		scope.Abort()
	}
	return result, doErr
}
