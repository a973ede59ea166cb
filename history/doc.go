// Package history implements an in-process undo/redo framework for
// interactive applications. Application code registers reversible
// operations as they execute by pushing Records onto a Context; later it
// replays them in reverse (Undo) or forward (Redo).
//
// The package is silent by design: no logging, no persistence, no
// cross-process coordination. See historylog for an optional logging
// adapter and historyconfig for loading a Config from outside the
// process.
package history
