// Command exprc is a one-shot CLI host for the expression compiler and
// evaluator: it exists to exercise the core from a terminal, not as a
// REPL (spec.md Non-goals explicitly exclude history/line-editing).
package main

import (
	"fmt"
	"os"

	"github.com/exprlang/exprc/cmd/exprc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
