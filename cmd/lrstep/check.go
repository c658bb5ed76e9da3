package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <grammar file path>",
		Short:   "Check a grammar and report conflicts",
		Example: `  lrstep check --lr1 expr.bnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := loadBuild(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%d rules, %d terminals, %d %s states",
		len(b.Grammar.Rules()), len(b.Grammar.Terminals()), b.CFSM.Size(), b.Config.Method))
	conflicts := b.Table.Conflicts()
	for _, c := range conflicts {
		pterm.Warning.Println(c.String())
	}
	if len(conflicts) == 0 {
		pterm.Info.Println(fmt.Sprintf("grammar is %s", b.Config.Method))
	}
	return nil
}
