package history

import "errors"

// ErrTooManyConfig is returned when more than one optional Config is passed
// to NewContext.
var ErrTooManyConfig = errors.New("only one optional configuration argument can be passed to NewContext")

// ErrCantUndo is the sentinel a host may compare against when it wants to
// distinguish "nothing to undo" from other false returns of Undo.
var ErrCantUndo = errors.New("cannot undo operation - nothing to undo")

// ErrCantRedo is the sentinel a host may compare against when it wants to
// distinguish "nothing to redo" from other false returns of Redo.
var ErrCantRedo = errors.New("cannot redo operation - nothing to redo")
