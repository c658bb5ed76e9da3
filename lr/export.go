package lr

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
)

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) CFSM2GraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.states {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.Items()))
	}
	for _, e := range c.Transitions() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, escapeDot(e.Label.String()))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(items []Item) string {
	var b strings.Builder
	for _, i := range items {
		b.WriteString(escapeDot(i.String()))
		b.WriteString("\\l")
	}
	return b.String()
}

var dotEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// ===========================================================================

// TableAsHTML exports a parse table in HTML-format, with one column per
// terminal and one per non-terminal.
func TableAsHTML(t *Table, w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<html><body>\n")
	fmt.Fprintf(bw, "<p>%s table with %d states</p>\n", t.Method, t.Size())
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	bw.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, term := range t.Terminals {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(term))
	}
	for _, nt := range t.NonTerminals {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(nt))
	}
	bw.WriteString("</tr>\n")
	for _, row := range t.Rows {
		fmt.Fprintf(bw, "<tr><td>state %d</td>\n", row.State)
		for _, term := range t.Terminals {
			td := "&nbsp;"
			if a, ok := row.Actions[term]; ok {
				td = html.EscapeString(a.String())
				if a.Type == ConflictAction {
					td = "<b>" + td + "</b>"
				}
			}
			fmt.Fprintf(bw, "<td>%s</td>\n", td)
		}
		for _, nt := range t.NonTerminals {
			td := "&nbsp;"
			if next, ok := row.Gotos[nt]; ok {
				td = strconv.Itoa(next)
			}
			fmt.Fprintf(bw, "<td>%s</td>\n", td)
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table></body></html>\n")
	return bw.Flush()
}

// TableAsText renders a parse table as a text table. Action columns are
// prefixed with "A:", goto columns with "G:".
func TableAsText(t *Table) string {
	var data [][]string
	headers := []string{"S", "|"}
	for _, term := range t.Terminals {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range t.NonTerminals {
		headers = append(headers, "G:"+nt)
	}
	data = append(data, headers)
	for _, row := range t.Rows {
		line := []string{strconv.Itoa(row.State), "|"}
		for _, term := range t.Terminals {
			cell := ""
			if a, ok := row.Actions[term]; ok {
				cell = a.String()
			}
			line = append(line, cell)
		}
		line = append(line, "|")
		for _, nt := range t.NonTerminals {
			cell := ""
			if next, ok := row.Gotos[nt]; ok {
				cell = strconv.Itoa(next)
			}
			line = append(line, cell)
		}
		data = append(data, line)
	}
	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
