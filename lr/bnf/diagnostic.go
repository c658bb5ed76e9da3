package bnf

import (
	"fmt"
	"sort"
	"strings"
)

// Diagnostic is a message about a grammar source, either an error or a warning.
// Messages are meant to be read by grammar authors.
type Diagnostic struct {
	Message string `json:"error"`
	Line    int    `json:"line"` // 0-based
	IsError bool   `json:"isError"`
}

func (d Diagnostic) Error() string {
	kind := "warning"
	if d.IsError {
		kind = "error"
	}
	return fmt.Sprintf("line %d: %s: %s", d.Line+1, kind, d.Message)
}

func errorAt(line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Message: fmt.Sprintf(format, args...), Line: line, IsError: true}
}

func warningAt(line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Message: fmt.Sprintf(format, args...), Line: line}
}

// Diagnostics is a list of diagnostics, usually sorted by line.
type Diagnostics []Diagnostic

func (diags Diagnostics) Error() string {
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// HasErrors is true if at least one diagnostic is an error.
func (diags Diagnostics) HasErrors() bool {
	for _, d := range diags {
		if d.IsError {
			return true
		}
	}
	return false
}

// Errors returns the error diagnostics.
func (diags Diagnostics) Errors() Diagnostics {
	return diags.filter(true)
}

// Warnings returns the warning diagnostics.
func (diags Diagnostics) Warnings() Diagnostics {
	return diags.filter(false)
}

// Err returns diags as an error if it contains errors, nil otherwise.
func (diags Diagnostics) Err() error {
	if !diags.HasErrors() {
		return nil
	}
	return diags.Errors()
}

func (diags Diagnostics) filter(errs bool) Diagnostics {
	var r Diagnostics
	for _, d := range diags {
		if d.IsError == errs {
			r = append(r, d)
		}
	}
	return r
}

func (diags Diagnostics) sorted() Diagnostics {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Line < diags[j].Line
	})
	return diags
}
