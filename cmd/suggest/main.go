// Command suggest is a small demo/debug CLI over the suggestengine
// core, grounded on sgx-labs-statelessagent's cmd/same layout: one
// cobra.Command-returning constructor per subcommand, registered from
// main.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "suggest",
		Short: "Typo-tolerant prefix search over a small in-memory catalogue",
		Long: `suggest drives the suggestengine core from the command line.

Since the engine is purely in-memory (spec.md 1: no persistence), each
invocation rebuilds its catalogue from a plain --data file of
"id<TAB>rating<TAB>title" lines before running a command.`,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.PersistentFlags().StringVar(&dataFile, "data", "suggest-data.tsv", "Catalogue file (id<TAB>rating<TAB>title per line)")

	root.AddCommand(addCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(limitCmd())
	root.AddCommand(highlightWithCmd())
	root.AddCommand(debugDistanceCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var dataFile string
