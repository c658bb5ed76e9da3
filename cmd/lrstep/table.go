package main

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/lrstep/lr"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	format *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file path>",
		Short:   "Print the ACTION and GOTO table",
		Example: `  lrstep table --lr1 --format json expr.bnf > expr.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.format = cmd.Flags().StringP("format", "f", "text", "output format [text|json|html]")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	b, err := loadBuild(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch *tableFlags.format {
	case "text":
		fmt.Fprintln(w, lr.TableAsText(b.Table))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b.Table)
	case "html":
		return lr.TableAsHTML(b.Table, w)
	default:
		return fmt.Errorf("unknown table format %q", *tableFlags.format)
	}
	return nil
}
