package cmd

import (
	"fmt"

	"github.com/exprlang/exprc/internal/compileerr"
	"github.com/exprlang/exprc/internal/value"
	"github.com/spf13/cobra"
)

var (
	compileExpr string
	compileType string
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile an expression, reporting any syntax error with source context",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileExpr, "eval", "e", "", "compile this inline expression instead of reading a file")
	compileCmd.Flags().StringVar(&compileType, "type", "any", "expression type: bool|number|datetime|string|any")
}

func runCompile(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(compileExpr, args)
	if err != nil {
		return err
	}

	ws := value.NewWorkspace(64)
	kind, perr := compileAs(compileType, input, ws)
	if perr != nil {
		ce := compileerr.New(perr.Kind, perr.Message, input, perr.Offset)
		fmt.Print(ce.Format(true))
		fmt.Println()
		return fmt.Errorf("compilation failed")
	}

	fmt.Printf("ok: type %s, %d instruction(s)\n", kind, ws.OutLen())
	return nil
}
