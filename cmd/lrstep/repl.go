package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/lrstep/lr/workbench"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	lex      *bool
	patterns *[]string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Parse input interactively, line by line",
		Long: `repl reads lines of input and parses each of them with the table for the
grammar. Lines starting with ':' are commands; enter :help for a list.`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	replFlags.lex = cmd.Flags().Bool("lex", false, "scan input lines with a lexer generated from the grammar")
	replFlags.patterns = cmd.Flags().StringArrayP("pattern", "p", nil, "regular expression for a terminal, KIND=regex (with --lex)")
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object.
type Intp struct {
	path  string
	cfg   workbench.Config
	build *workbench.Build
	repl  *readline.Instance
}

func runREPL(cmd *cobra.Command, args []string) error {
	intp := &Intp{path: args[0], cfg: config(args[0])}
	if err := intp.reload(); err != nil {
		return err
	}
	repl, err := readline.New("lrstep> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to lrstep, quit with <ctrl>D or :quit")
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(strings.Fields(line[1:])); quit {
				break
			}
			continue
		}
		if err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Execute runs a command. It returns true if the user wants to quit.
func (intp *Intp) Execute(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "q", "quit":
		return true
	case "help":
		fmt.Println(`  :lr0 | :lr1        switch the construction method and rebuild
  :loose | :strict   switch conflict resolution and rebuild
  :reload            re-read the grammar file
  :grammar           print the augmented grammar
  :table             print the parse table
  :conflicts         list conflicting table cells
  :quit              leave`)
	case "lr0":
		intp.cfg.Method = lr.LR0
		intp.rebuild()
	case "lr1":
		intp.cfg.Method = lr.LR1
		intp.rebuild()
	case "loose", "strict":
		intp.cfg.Loose = args[0] == "loose"
		intp.rebuild()
	case "reload":
		intp.rebuild()
	case "grammar":
		fmt.Print(intp.build.Grammar.String())
	case "table":
		if intp.build.HasTable() {
			fmt.Println(lr.TableAsText(intp.build.Table))
		}
	case "conflicts":
		if intp.build.HasTable() {
			for _, c := range intp.build.Table.Conflicts() {
				pterm.Warning.Println(c.String())
			}
		}
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command :%s", args[0]))
	}
	return false
}

func (intp *Intp) rebuild() {
	if err := intp.reload(); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(fmt.Sprintf("%s table with %d states", intp.cfg.Method, intp.build.Table.Size()))
}

// reload reads the grammar file and runs the workbench on it. The previous
// build stays active if the grammar has errors.
func (intp *Intp) reload() error {
	text, err := readGrammar(intp.path)
	if err != nil {
		return err
	}
	b, err := workbench.Run(text, intp.cfg)
	if err != nil {
		return err
	}
	printDiagnostics(b.Diagnostics)
	if !b.HasTable() {
		return fmt.Errorf("grammar %s has errors", intp.path)
	}
	intp.build = b
	return nil
}

// Eval parses a line of input and prints the parse tree.
func (intp *Intp) Eval(line string) error {
	var tok scanner.Tokenizer = scanner.Fields(line)
	if *replFlags.lex {
		var err error
		if tok, err = lexTokenizer(intp.build.Grammar, line, *replFlags.patterns); err != nil {
			return err
		}
	}
	tok.SetErrorHandler(func(e error) {
		pterm.Warning.Println(e.Error())
	})
	result, err := intp.build.Parse(tok)
	if err != nil {
		return err
	}
	printResult(os.Stdout, result)
	if !result.Accepted {
		return fmt.Errorf("%s", result.Diagnostic)
	}
	return nil
}
