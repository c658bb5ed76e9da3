package main

import (
	"fmt"

	"github.com/npillmayer/lrstep/lr/bnf"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var ebnfFlags = struct {
	verify *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "ebnf <grammar file path>",
		Short: "Print a grammar in EBNF notation",
		Args:  cobra.ExactArgs(1),
		RunE:  runEBNF,
	}
	ebnfFlags.verify = cmd.Flags().Bool("verify", false, "verify that every non-terminal is defined and reachable")
	rootCmd.AddCommand(cmd)
}

func runEBNF(cmd *cobra.Command, args []string) error {
	b, err := loadBuild(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), bnf.ToEBNF(b.Grammar))
	if *ebnfFlags.verify {
		if err := bnf.VerifyEBNF(b.Grammar); err != nil {
			return fmt.Errorf("EBNF verification failed: %w", err)
		}
		pterm.Info.Println("EBNF verified")
	}
	return nil
}
