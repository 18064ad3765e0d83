package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// runCLI executes the root command with args, capturing stdout.
// Package-level flag vars are not reset between calls, so a flag set by
// one test keeps its value in later tests of the same subcommand.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	rootCmd.SetArgs(args)
	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)

	if runErr != nil {
		t.Fatalf("exprc %v: %v", args, runErr)
	}
	return buf.String()
}

func TestParseCommandGolden(t *testing.T) {
	out := runCLI(t, "parse", "-e", "1 + 2 * 3", "--type", "number")
	snaps.MatchSnapshot(t, "parse_number_instruction_stream", out)
}

func TestCompileCommandGoldenSuccess(t *testing.T) {
	out := runCLI(t, "compile", "-e", "true && (1 < 2)", "--type", "bool")
	snaps.MatchSnapshot(t, "compile_bool_success", out)
}

func TestLexCommandGolden(t *testing.T) {
	out := runCLI(t, "lex", "-e", `"hi" + $x`, "--show-type")
	snaps.MatchSnapshot(t, "lex_string_plus_variable", out)
}

func TestVersionCommandGolden(t *testing.T) {
	out := runCLI(t, "version")
	snaps.MatchSnapshot(t, "version_output", out)
}
