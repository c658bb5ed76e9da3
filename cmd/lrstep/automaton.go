package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/lrstep/lr"
	"github.com/spf13/cobra"
)

var automatonFlags = struct {
	dot *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "automaton <grammar file path>",
		Short: "Print the states and transitions of the characteristic automaton",
		Example: `  lrstep automaton --lr1 expr.bnf
  lrstep automaton --dot expr.bnf | dot -Tsvg > cfsm.svg`,
		Args: cobra.ExactArgs(1),
		RunE: runAutomaton,
	}
	automatonFlags.dot = cmd.Flags().Bool("dot", false, "write the automaton in Graphviz Dot format")
	rootCmd.AddCommand(cmd)
}

func runAutomaton(cmd *cobra.Command, args []string) error {
	b, err := loadBuild(args[0])
	if err != nil {
		return err
	}
	if *automatonFlags.dot {
		return b.CFSM.CFSM2GraphViz(cmd.OutOrStdout())
	}
	printAutomaton(cmd.OutOrStdout(), b.CFSM)
	return nil
}

func printAutomaton(w io.Writer, c *lr.CFSM) {
	for _, s := range c.States() {
		accept := ""
		if s.Accept {
			accept = " (accept)"
		}
		fmt.Fprintf(w, "state %d%s\n", s.ID, accept)
		for _, i := range s.Items() {
			fmt.Fprintf(w, "    %v\n", i)
		}
		for _, A := range s.Symbols() {
			next, _ := s.Successor(A)
			fmt.Fprintf(w, "    on %v goto %d\n", A, next)
		}
	}
}
