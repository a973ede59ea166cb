// Package historylog adapts a history.Context's observer to structured
// logging via zerolog. It is a host-side concern only - the history
// package itself never logs (see its doc comment) - so wiring it is
// opt-in: call Attach once per context a host wants to observe.
package historylog

import (
	"github.com/rasteric/history"
	"github.com/rs/zerolog"
)

// Direction describes which stack transition produced a log line.
type Direction string

const (
	DirectionPush  Direction = "push"
	DirectionUndo  Direction = "undo"
	DirectionRedo  Direction = "redo"
	DirectionClear Direction = "clear"
)

// StackLogger binds to a Context's single observer slot and emits one
// structured log line per transition: the new present index, the label
// of the record now at that index (if any), and a best-effort guess at
// which operation produced the change based on how the index moved from
// the previous notification. A rise is logged as redo and a fall as undo;
// a push is therefore logged as redo, and a clear of a non-empty stack as
// undo. Clear is logged only when the index stays at 0, and push only when
// the index stays at the same non-zero value.
type StackLogger struct {
	logger zerolog.Logger
	ctx    *history.Context
	last   int
}

// Attach binds a StackLogger to ctx, replacing any observer already bound
// (Context keeps exactly one observer, not a list - see history.Context's
// doc comment on BindOnStackChanged).
func Attach(ctx *history.Context, logger zerolog.Logger) *StackLogger {
	sl := &StackLogger{logger: logger, ctx: ctx, last: presentIndex(ctx)}
	ctx.BindOnStackChanged(sl.onChange)
	return sl
}

// Detach unbinds the logger from its context.
func (sl *StackLogger) Detach() {
	sl.ctx.UnbindOnStackChanged()
}

func (sl *StackLogger) onChange(present int) {
	dir := DirectionPush
	switch {
	case present < sl.last:
		dir = DirectionUndo
	case present == 0 && sl.last == 0:
		dir = DirectionClear
	case present > sl.last:
		dir = DirectionRedo
	}
	sl.last = present

	ev := sl.logger.Info().Str("direction", string(dir)).Int("present", present)
	if rec := sl.ctx.Present(); rec != nil {
		ev = ev.Str("label", rec.Label()).Uint64("id", rec.ID())
	}
	ev.Msg("history stack changed")
}

func presentIndex(ctx *history.Context) int {
	if rec := ctx.Present(); rec != nil {
		view := ctx.StackView()
		for i, r := range view {
			if r == rec {
				return i
			}
		}
	}
	return 0
}
