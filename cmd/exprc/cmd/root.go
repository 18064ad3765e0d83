package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "exprc",
	Short: "Compiler and evaluator for a small embeddable expression language",
	Long: `exprc lexes, parses, and evaluates standalone boolean/number/datetime/
string expressions — the kind of thing a host application embeds for
user-configurable filters, computed fields, and validation rules.

This is a one-shot compiler/evaluator host, not a REPL: every subcommand
reads one expression (inline via -e, or from a file) and produces one
result.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.exprc.yaml or $HOME/.exprc.yaml)")
}
