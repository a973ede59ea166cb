package history_test

import (
	"sort"
	"testing"

	"github.com/rasteric/history"
	"github.com/stretchr/testify/require"
)

// This file exercises scenario 5 (nested merge): a MergeObjects record
// whose do-body pushes RemoveObject/SetObject sub-records into its own
// sub-context, verifying P9 (sub-stack unwind) along the way.

// rec is captured by the do/undo closures themselves, not looked up via
// ctx.Present() at call time: Context.Redo() invokes a record's do-closure
// BEFORE advancing present (see Context.Redo's doc comment), so Present()
// would resolve to the previous record during a redo replay. Closing over
// rec directly is correct regardless of where the cursor happens to be.

func removeSet(m map[string][]int, key string) {
	ctx := history.GetContext()
	var rec *history.Record
	rec = ctx.Push("RemoveObject",
		func() bool {
			if v, ok := m[key]; ok {
				rec.Save("hOldValue", v)
			}
			delete(m, key)
			return true
		},
		func() bool {
			var old []int
			if rec.Load("hOldValue_Undo", &old) {
				m[key] = old
			}
			return true
		},
	)
	scope := history.NewPushScope()
	defer scope.Close()
	rec.Redo()
}

func setSet(m map[string][]int, key string, val []int) {
	ctx := history.GetContext()
	var rec *history.Record
	rec = ctx.Push("SetObject",
		func() bool {
			if old, existed := m[key]; existed {
				rec.Save("hOldValues", old)
			}
			m[key] = val
			return true
		},
		func() bool {
			var old []int
			if rec.Load("hOldValues_Undo", &old) {
				m[key] = old
			} else {
				delete(m, key)
			}
			return true
		},
	)
	scope := history.NewPushScope()
	defer scope.Close()
	rec.Redo()
}

func union(m map[string][]int, keys []string) []int {
	seen := map[int]struct{}{}
	for _, k := range keys {
		for _, v := range m[k] {
			seen[v] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func mergeObjects(m map[string][]int, keys []string, newKey string) *history.Record {
	ctx := history.GetContext()
	// rec, not ctx.Present(), is the do-closure's handle on "this record":
	// Context.Redo() invokes the do-closure before advancing present, so
	// ctx.Present() would still point at the previous record during a
	// redo replay and both the Load below and the nested pushes further
	// down would operate on the wrong record's state.
	var rec *history.Record
	rec = ctx.Push("MergeObjects",
		func() bool {
			var merged []int
			if rec.Load("hNewValues", &merged) {
				// Replaying an already-built merge: the sub-records exist,
				// just redo them forward in the order they were pushed.
				sub := rec.SubContext()
				for sub.PeekFuture() != nil {
					sub.Redo()
				}
				return true
			}
			merged = union(m, keys)
			rec.Save("hNewValues", merged)
			// The outer PushScope constructed around this record's Redo
			// call has already descended the active context into this
			// record's sub-context, so these sub-operations land there
			// without a second scope.
			for _, k := range keys {
				removeSet(m, k)
			}
			setSet(m, newKey, merged)
			return true
		},
		func() bool {
			scope := history.NewPopScope()
			defer scope.Close()
			sub := history.GetContext()
			// undo in reverse order of the forward pushes: SetObject first,
			// then RemoveObject for each key in reverse.
			sub.Undo() // undoes SetObject(newKey)
			for i := len(keys) - 1; i >= 0; i-- {
				sub.Undo() // undoes RemoveObject(keys[i])
			}
			return true
		},
	)
	scope := history.NewPushScope()
	defer scope.Close()
	rec.Redo()
	return rec
}

func TestNestedMergeObjects(t *testing.T) {
	resetGate(t)
	ctx := history.GetContext()
	m := map[string][]int{
		"foo": {11, 23, 49},
		"bar": {7, 8, 23},
	}

	presentBefore := presentOf(ctx)
	rec := mergeObjects(m, []string{"foo", "bar"}, "foobar")
	require.NotNil(t, rec)

	require.Len(t, m, 1)
	require.Equal(t, []int{7, 8, 11, 23, 49}, m["foobar"])

	// P9: the outer push advanced the parent cursor by exactly one, and
	// the child sub-context recorded exactly 3 sub-records (2 removes + 1
	// set).
	require.Equal(t, presentBefore+1, presentOf(ctx))
	require.Equal(t, 3, presentOf(rec.SubContext()))

	ctx.Undo()
	require.Equal(t, []int{11, 23, 49}, m["foo"])
	require.Equal(t, []int{7, 8, 23}, m["bar"])
	_, hasFoobar := m["foobar"]
	require.False(t, hasFoobar)
	require.Equal(t, presentBefore, presentOf(ctx))
	require.Equal(t, 0, presentOf(rec.SubContext()))

	ctx.Redo()
	require.Len(t, m, 1)
	require.Equal(t, []int{7, 8, 11, 23, 49}, m["foobar"])
	require.Equal(t, 3, presentOf(rec.SubContext()))
}
