// Command historydemo exercises the history package end to end: push a
// few records onto a root Context, undo, redo, and dump the resulting
// tree - useful as a smoke test and as a worked example for hosts wiring
// the library into their own command set.
package main

import (
	"fmt"
	"os"

	"github.com/rasteric/history"
	"github.com/spf13/cobra"
)

var items []string

func main() {
	history.Enable()
	root, err := history.NewContext(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "historydemo:", err)
		os.Exit(1)
	}
	history.SetContext(root)

	rootCmd := &cobra.Command{
		Use:   "historydemo",
		Short: "Demonstrate the history undo/redo core",
		Long: `historydemo pushes a handful of scripted "Add" operations onto an
in-memory list, then walks through undo and redo, printing the list after
each step and the history tree after the adds, the undos and the redo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(root)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runDemo(ctx *history.Context) error {
	ctx.BindOnStackChanged(func(present int) {
		fmt.Printf("-- stack changed, present=%d\n", present)
	})

	for _, word := range []string{"alpha", "beta", "gamma"} {
		addItem(ctx, word)
		fmt.Printf("after add %q: %v\n", word, items)
	}

	fmt.Println("\n--- history tree ---")
	fmt.Print(ctx.Dump(""))

	fmt.Println("\n--- undo twice ---")
	ctx.Undo()
	ctx.Undo()
	fmt.Printf("items: %v\n", items)
	fmt.Print(ctx.Dump(""))

	fmt.Println("\n--- redo once ---")
	ctx.Redo()
	fmt.Printf("items: %v\n", items)
	fmt.Print(ctx.Dump(""))

	return nil
}

func addItem(ctx *history.Context, word string) {
	rec := ctx.Push("Add "+word,
		func() bool {
			items = append(items, word)
			return true
		},
		func() bool {
			items = items[:len(items)-1]
			return true
		},
	)
	if rec == nil {
		return
	}
	scope := history.NewPushScope()
	defer scope.Close()
	rec.Redo()
}
