package main

import (
	"strings"

	"github.com/npillmayer/lrstep/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "first <grammar file path>",
		Short: "Print the FIRST sets of the non-terminals",
		Args:  cobra.ExactArgs(1),
		RunE:  runFirst,
	}
	rootCmd.AddCommand(cmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	b, err := loadBuild(args[0])
	if err != nil {
		return err
	}
	pterm.DefaultTable.WithHasHeader().WithData(firstTable(b.Grammar, b.First)).Render()
	return nil
}

func firstTable(g *lr.Grammar, first *lr.FirstSets) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "FIRST", "nullable"}}
	for _, nt := range g.NonTerminals() {
		nullable := ""
		if first.Nullable(nt) {
			nullable = "yes"
		}
		data = append(data, []string{
			nt,
			"{ " + strings.Join(first.First(lr.N(nt)), " ") + " }",
			nullable,
		})
	}
	return data
}
