package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/driver"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/lrstep/lr/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	tokens    *string
	tokenFile *string
	source    *string
	goSource  *string
	patterns  *[]string
	json      *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file path>",
		Short: "Parse token input and print the parse trace",
		Example: `  lrstep parse --lr1 --tokens "LPAR NUM:1 NUM:2 RPAR" list.bnf
  lrstep parse --lr1 --source prog.txt --pattern NUM=[0-9]+ list.bnf
  lrstep parse --lr1 --go-source expr.txt expr.bnf
  cat tokens.json | lrstep parse --token-file - list.bnf`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	parseFlags.tokens = cmd.Flags().StringP("tokens", "t", "", "whitespace separated token kinds, KIND or KIND:text (default stdin)")
	parseFlags.tokenFile = cmd.Flags().String("token-file", "", "JSON file with a list of {kind, text, position} records")
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file to scan with a lexer generated from the grammar")
	parseFlags.goSource = cmd.Flags().String("go-source", "", "source file to scan with Go token rules (ID, NUM, STRING, CHAR, single characters)")
	parseFlags.patterns = cmd.Flags().StringArrayP("pattern", "p", nil, "regular expression for a terminal, KIND=regex (with --source)")
	parseFlags.json = cmd.Flags().Bool("json", false, "print the parse trace as JSON")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	b, err := loadBuild(args[0])
	if err != nil {
		return err
	}
	tok, err := makeTokenizer(b.Grammar)
	if err != nil {
		return err
	}
	tok.SetErrorHandler(func(e error) {
		pterm.Warning.Println(e.Error())
	})
	result, err := b.Parse(tok)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if *parseFlags.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Trace); err != nil {
			return err
		}
	} else {
		printResult(w, result)
	}
	if !result.Accepted {
		return fmt.Errorf("input rejected: %s", result.Diagnostic)
	}
	return nil
}

func makeTokenizer(g *lr.Grammar) (scanner.Tokenizer, error) {
	switch {
	case *parseFlags.source != "":
		src, err := os.ReadFile(*parseFlags.source)
		if err != nil {
			return nil, fmt.Errorf("cannot read source: %w", err)
		}
		return lexTokenizer(g, string(src), *parseFlags.patterns)
	case *parseFlags.goSource != "":
		f, err := os.Open(*parseFlags.goSource)
		if err != nil {
			return nil, fmt.Errorf("cannot open source: %w", err)
		}
		src, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot read source: %w", err)
		}
		return goTokenizer(g, *parseFlags.goSource, string(src)), nil
	case *parseFlags.tokenFile != "":
		r := io.Reader(os.Stdin)
		if *parseFlags.tokenFile != "-" {
			f, err := os.Open(*parseFlags.tokenFile)
			if err != nil {
				return nil, fmt.Errorf("cannot open token file: %w", err)
			}
			defer f.Close()
			r = f
		}
		return scanner.ReadJSON(r)
	case *parseFlags.tokens != "":
		return scanner.Fields(*parseFlags.tokens), nil
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return scanner.Fields(string(input)), nil
}

// lexTokenizer creates a lexmachine scanner for the terminals of g.
func lexTokenizer(g *lr.Grammar, input string, patterns []string) (scanner.Tokenizer, error) {
	pmap, err := parsePatterns(patterns)
	if err != nil {
		return nil, err
	}
	adapter, err := lexmach.ForGrammar(g, pmap)
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer: %w", err)
	}
	lms, err := adapter.Scanner(input)
	if err != nil {
		return nil, err
	}
	return lms, nil
}

// goTokenizer scans input like Go source. Terminals of g which are
// identifiers become keywords, with the terminal as token kind.
func goTokenizer(g *lr.Grammar, name string, input string) scanner.Tokenizer {
	var keywords []string
	for _, term := range g.Terminals() {
		if isIdent(term) {
			keywords = append(keywords, term)
		}
	}
	return scanner.GoTokenizer(name, strings.NewReader(input),
		scanner.SkipComments(true), scanner.Keywords(keywords...))
}

func isIdent(s string) bool {
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r))) {
			return false
		}
	}
	return s != ""
}

// parsePatterns splits KIND=regex arguments.
func parsePatterns(args []string) (map[string]string, error) {
	patterns := make(map[string]string, len(args))
	for _, arg := range args {
		kind, re, ok := strings.Cut(arg, "=")
		if !ok || kind == "" || re == "" {
			return nil, fmt.Errorf("malformed pattern %q, expected KIND=regex", arg)
		}
		patterns[kind] = re
	}
	return patterns, nil
}

func printResult(w io.Writer, result *driver.Result) {
	for _, e := range result.Trace {
		if e.IsDiagnostic() {
			continue
		}
		fmt.Fprintln(w, e.String())
	}
	if result.Accepted {
		pterm.Info.Println(fmt.Sprintf("accepted after %d steps", result.Steps()))
	}
	renderTree(result.Root)
}
