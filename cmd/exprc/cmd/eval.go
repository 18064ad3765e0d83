package cmd

import (
	"fmt"
	"os"

	"github.com/exprlang/exprc/internal/compileerr"
	"github.com/exprlang/exprc/internal/eval"
	"github.com/exprlang/exprc/internal/jsonresolver"
	"github.com/exprlang/exprc/internal/value"
	"github.com/spf13/cobra"
)

var (
	evalExpr    string
	evalType    string
	evalVars    string
	evalArenaKB int
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Compile and evaluate an expression, resolving $variables against a JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate this inline expression instead of reading a file")
	evalCmd.Flags().StringVar(&evalType, "type", "any", "expression type: bool|number|datetime|string|any")
	evalCmd.Flags().StringVar(&evalVars, "vars", "", "JSON document to resolve $variables against")
	evalCmd.Flags().IntVar(&evalArenaKB, "arena-kb", 4, "temporary-string arena size in KiB")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ws := value.NewWorkspace(cfg.WorkspaceCapacity)
	_, perr := compileAs(evalType, input, ws)
	if perr != nil {
		ce := compileerr.FromParseError(perr, input)
		fmt.Fprint(os.Stderr, ce.Format(true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("compilation failed")
	}
	program := append([]value.Value(nil), ws.Output()...)

	varsPath := evalVars
	if varsPath == "" {
		varsPath = cfg.VarsFile
	}
	ar := value.NewArena(make([]byte, evalArenaKB*1024))
	if varsPath != "" {
		doc, err := os.ReadFile(varsPath)
		if err != nil {
			return fmt.Errorf("failed to read vars file %s: %w", varsPath, err)
		}
		ar.Resolve = jsonresolver.New(string(doc)).AsArenaResolver()
	}

	scratch := value.NewWorkspace(cfg.WorkspaceCapacity)
	result, everr := eval.Run(program, scratch, ar)
	if everr != nil {
		ce := compileerr.FromEvalError(everr, input)
		fmt.Fprint(os.Stderr, ce.Format(true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("evaluation failed")
	}

	fmt.Println(formatResult(result))
	return nil
}

func formatResult(v value.Value) string {
	switch v.Kind {
	case value.KindError:
		return fmt.Sprintf("error: %s", v.ErrKind())
	default:
		return fmt.Sprintf("%#v", v)
	}
}
