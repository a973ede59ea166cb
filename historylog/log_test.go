package historylog_test

import (
	"bytes"
	"testing"

	"github.com/rasteric/history"
	"github.com/rasteric/history/historylog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestStackLoggerEmitsOneLineOnUndo(t *testing.T) {
	history.Enable()
	ctx, err := history.NewContext(nil)
	require.NoError(t, err)
	history.SetContext(ctx)
	t.Cleanup(func() { history.SetContext(nil) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	historylog.Attach(ctx, logger)

	rec := ctx.Push("Add", func() bool { return true }, func() bool { return true })
	require.NotNil(t, rec)
	scope := history.NewPushScope()
	rec.Redo()
	scope.Close()

	buf.Reset()
	ctx.Undo()

	require.Contains(t, buf.String(), `"direction":"undo"`)
	// After undoing the only record, present is back on the sentinel.
	require.Contains(t, buf.String(), `"label":"<sentinel>"`)
}
