/*
Package workbench runs the complete pipeline for a grammar text: parsing and
validation, FIRST sets, automaton and table construction. It is what an
interactive front end calls after every edit of the grammar.

Errors in the grammar text do not stop the workbench: they are reported as
diagnostics, and the build falls back to an empty grammar without automaton
and table. Only internal failures of the automaton construction are returned
as errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package workbench

import (
	"errors"
	"strings"

	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/bnf"
	"github.com/npillmayer/lrstep/lr/driver"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrstep.workbench'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.workbench")
}

// Config holds the settings for a build.
type Config struct {
	Name     string    // grammar name, used for diagnostics
	Method   lr.Method // LR(0) or LR(1)
	Loose    bool      // prefer shift over reduce, LR(1) only
	MaxSteps int       // step limit for parse runs; 0 for the default
}

// Build is the result of running the pipeline for a grammar text.
type Build struct {
	Config      Config
	Diagnostics bnf.Diagnostics
	Grammar     *lr.Grammar // augmented grammar; empty if there are errors
	First       *lr.FirstSets
	CFSM        *lr.CFSM
	Table       *lr.Table
}

// ErrNoTable is returned when parsing with a build which has no table.
var ErrNoTable = errors.New("grammar has errors, no parse table available")

// Run parses and validates a grammar text and constructs the automaton and
// the parse table for it.
func Run(text string, cfg Config) (*Build, error) {
	if cfg.Name == "" {
		cfg.Name = "G"
	}
	b := &Build{Config: cfg}
	g, diags := bnf.Check(cfg.Name, strings.NewReader(text))
	b.Diagnostics = diags
	if diags.HasErrors() {
		tracer().Infof("grammar %q has errors, falling back to empty grammar", cfg.Name)
		b.Grammar = lr.NewGrammar(cfg.Name)
		return b, nil
	}
	lrgen := lr.NewTableGenerator(g, cfg.Method, lr.Loose(cfg.Loose))
	b.Grammar = lrgen.Grammar()
	b.First = lrgen.First()
	if err := lrgen.CreateTables(); err != nil {
		tracer().Errorf("cannot build tables for %q: %v", cfg.Name, err)
		return b, err
	}
	b.CFSM = lrgen.CFSM()
	b.Table = lrgen.Table()
	tracer().Infof("%s table for %q: %d states, conflicts: %v",
		cfg.Method, cfg.Name, b.Table.Size(), lrgen.HasConflicts)
	return b, nil
}

// HasTable is true if the build produced a parse table.
func (b *Build) HasTable() bool {
	return b.Table != nil
}

// Parse runs the parse driver on a token stream.
func (b *Build) Parse(scan scanner.Tokenizer) (*driver.Result, error) {
	if !b.HasTable() {
		return nil, ErrNoTable
	}
	p := driver.NewParser(b.Table, driver.MaxSteps(b.Config.MaxSteps))
	return p.Parse(scan)
}
