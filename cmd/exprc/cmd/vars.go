package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/exprlang/exprc/internal/jsonresolver"
	"github.com/spf13/cobra"
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Read or write the JSON variables file eval --vars resolves against",
}

var varsGetCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value of a key in a JSON variables file",
	Args:  cobra.ExactArgs(2),
	RunE:  runVarsGet,
}

var varsSetCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Set a key in a JSON variables file, creating the file if needed",
	Args:  cobra.ExactArgs(3),
	RunE:  runVarsSet,
}

func init() {
	rootCmd.AddCommand(varsCmd)
	varsCmd.AddCommand(varsGetCmd)
	varsCmd.AddCommand(varsSetCmd)
}

func runVarsGet(cmd *cobra.Command, args []string) error {
	file, key := args[0], args[1]
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	v, ok := jsonresolver.Get(string(data), key)
	if !ok {
		return fmt.Errorf("key %q not found in %s", key, file)
	}
	fmt.Println(v)
	return nil
}

// runVarsSet writes value, inferring its JSON type from its literal
// form: "true"/"false" become booleans, a parseable float64 becomes a
// number, everything else is stored as a string.
func runVarsSet(cmd *cobra.Command, args []string) error {
	file, key, raw := args[0], args[1], args[2]

	doc := "{}"
	if data, err := os.ReadFile(file); err == nil {
		doc = string(data)
	}

	var updated string
	var err error
	switch {
	case raw == "true" || raw == "false":
		updated, err = jsonresolver.SetBool(doc, key, raw == "true")
	default:
		if n, perr := strconv.ParseFloat(raw, 64); perr == nil {
			updated, err = jsonresolver.SetNumber(doc, key, n)
		} else {
			updated, err = jsonresolver.Set(doc, key, raw)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if err := os.WriteFile(file, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	fmt.Printf("%s: %s = %s\n", file, key, raw)
	return nil
}
