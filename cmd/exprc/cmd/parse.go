package cmd

import (
	"fmt"

	"github.com/exprlang/exprc/internal/parser"
	"github.com/exprlang/exprc/internal/value"
	"github.com/spf13/cobra"
)

var (
	parseExpr string
	parseType string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Compile an expression and print the postfix instruction stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse this inline expression instead of reading a file")
	parseCmd.Flags().StringVar(&parseType, "type", "any", "expression type: bool|number|datetime|string|any")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	ws := value.NewWorkspace(64)
	kind, perr := compileAs(parseType, input, ws)
	if perr != nil {
		return fmt.Errorf("%s", perr.Message)
	}

	fmt.Printf("type: %s\n", kind)
	for i, instr := range ws.Output() {
		fmt.Printf("%3d: %s\n", i, describeInstruction(instr))
	}
	return nil
}

// compileAs dispatches to the fixed-kind entry point matching typeName,
// or to CompileAny when typeName is "any"/empty.
func compileAs(typeName, input string, ws *value.Workspace) (value.Kind, *parser.ParseError) {
	switch typeName {
	case "bool":
		return value.KindBool, parser.CompileBool(input, ws)
	case "number":
		return value.KindNumber, parser.CompileNumber(input, ws)
	case "datetime":
		return value.KindDatetime, parser.CompileDatetime(input, ws)
	case "string":
		return value.KindString, parser.CompileString(input, ws)
	case "any", "":
		return parser.CompileAny(input, ws)
	default:
		return 0, &parser.ParseError{Kind: value.ErrSyntax, Message: fmt.Sprintf("unknown --type %q", typeName)}
	}
}

func describeInstruction(v value.Value) string {
	switch v.Kind {
	case value.KindFunction:
		return fmt.Sprintf("call %s", v.Func().Name)
	case value.KindVariable:
		return fmt.Sprintf("push $%s", v.Str())
	default:
		return fmt.Sprintf("push %s", v.Kind)
	}
}
