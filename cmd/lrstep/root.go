package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/bnf"
	"github.com/npillmayer/lrstep/lr/workbench"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'lrstep.cli'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.cli")
}

var traceKeys = []string{
	"lrstep.cli",
	"lrstep.lr",
	"lrstep.bnf",
	"lrstep.scanner",
	"lrstep.driver",
	"lrstep.workbench",
}

var rootFlags = struct {
	trace    *string
	lr1      *bool
	loose    *bool
	maxSteps *int
}{}

var rootCmd = &cobra.Command{
	Use:   "lrstep",
	Short: "Construct LR parsers and trace them step by step",
	Long: `lrstep builds LR(0) or LR(1) automata and parse tables from a grammar
in BNF notation and runs a shift-reduce parser on token input, recording
every step of the parse.

A grammar file holds one rule per line:
  S    -> LIST
  LIST -> 'LPAR' SEQ 'RPAR' | 'NUM'
  SEQ  -> LIST SEQ | ε`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.lr1 = rootCmd.PersistentFlags().Bool("lr1", false, "construct an LR(1) automaton instead of LR(0)")
	rootFlags.loose = rootCmd.PersistentFlags().Bool("loose", false, "resolve shift/reduce conflicts by shifting (LR(1) only)")
	rootFlags.maxSteps = rootCmd.PersistentFlags().Int("max-steps", 0, "step limit for parse runs (default 10000)")
}

// Execute runs the command line interface.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func config(name string) workbench.Config {
	cfg := workbench.Config{
		Name:     name,
		Method:   lr.LR0,
		Loose:    *rootFlags.loose,
		MaxSteps: *rootFlags.maxSteps,
	}
	if *rootFlags.lr1 {
		cfg.Method = lr.LR1
	}
	return cfg
}

// readGrammar reads a grammar file, or stdin if path is "-".
func readGrammar(path string) (string, error) {
	var text []byte
	var err error
	if path == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read grammar: %w", err)
	}
	return string(text), nil
}

// loadBuild reads a grammar file and runs the workbench on it. Diagnostics
// are printed; grammars with errors produce an error.
func loadBuild(path string) (*workbench.Build, error) {
	text, err := readGrammar(path)
	if err != nil {
		return nil, err
	}
	b, err := workbench.Run(text, config(path))
	if err != nil {
		return nil, err
	}
	printDiagnostics(b.Diagnostics)
	if b.Diagnostics.HasErrors() {
		return b, fmt.Errorf("grammar %s has %d error(s)", path, len(b.Diagnostics.Errors()))
	}
	return b, nil
}

func printDiagnostics(diags bnf.Diagnostics) {
	for _, d := range diags {
		if d.IsError {
			pterm.Error.Println(d.Error())
		} else {
			pterm.Warning.Println(d.Error())
		}
	}
}
