package cmd

import (
	"fmt"
	"os"

	"github.com/exprlang/exprc/internal/lexer"
	"github.com/exprlang/exprc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexExpr     string
	showPos     bool
	showType    bool
	onlyIllegal bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an expression and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize this inline expression instead of reading a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's byte offset")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyIllegal, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	count, illegal := 0, 0
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if onlyIllegal && tok.Type != token.ILLEGAL {
			continue
		}
		count++
		if tok.Type == token.ILLEGAL {
			illegal++
		}
		printToken(tok)
	}

	if illegal > 0 {
		return fmt.Errorf("found %d illegal token(s)", illegal)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showType {
		out = fmt.Sprintf("[%-14s]", tok.Type)
	}
	if tok.Literal == "" {
		out += fmt.Sprintf(" %s", tok.Type)
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%d", tok.Pos.Offset)
	}
	fmt.Println(out)
}

// readInput resolves the input source for any subcommand accepting
// either -e/--eval or a single file argument: inline expression takes
// priority, then the file argument, then stdin is not supported (every
// exprc subcommand needs exactly one expression, never a stream).
func readInput(inline string, args []string) (input, source string, err error) {
	if inline != "" {
		return inline, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e/--eval for an inline expression")
}
