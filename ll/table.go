package ll

import (
	"fmt"
	"html"
	"io"

	"github.com/cnf/structhash"
	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll/sparse"
)

// ParseTable is a prediction table for an LL(1) grammar. Rows are
// non-terminals, columns are terminals (including end of input) and every
// occupied cell holds the rule to expand. Create one with BuildTable.
// A ParseTable is read-only and may be shared between goroutines.
type ParseTable struct {
	ga     *LLAnalysis
	matrix *sparse.IntMatrix
}

// Entry is a single cell of a prediction table.
type Entry struct {
	NonTerminal *Symbol
	Lookahead   *Symbol
	Rule        *Rule
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s, %s] => %d %v", e.NonTerminal, e.Lookahead, e.Rule.Serial, e.Rule)
}

const noRule int32 = -1

// BuildTable constructs the prediction table from a grammar analysis.
// If two distinct rules compete for a cell, BuildTable returns a *ConflictError,
// which unwraps to ErrNotLL1. The table builder never prefers one of the
// rules over the other.
func BuildTable(ga *LLAnalysis) (*ParseTable, error) {
	if ga == nil {
		return nil, fmt.Errorf("cannot build table: %w", ErrMalformedGrammar)
	}
	g := ga.g
	tracer().Infof("prediction table for %q of size %d x %d", g.Name, g.NonTerminalCount(), g.TerminalCount())
	T := &ParseTable{
		ga:     ga,
		matrix: sparse.NewIntMatrix(g.NonTerminalCount(), g.TerminalCount(), noRule),
	}
	for _, r := range g.rules {
		F := ga.FirstOfSequence(r.rhs)
		for _, tt := range F.Values() {
			if tt == gopred.Epsilon {
				continue
			}
			if err := T.insert(r, g.Terminal(tt)); err != nil {
				return nil, err
			}
		}
		if F.HasEpsilon() {
			for _, tt := range ga.follow[r.LHS.Value].Values() {
				if err := T.insert(r, g.Terminal(tt)); err != nil {
					return nil, err
				}
			}
		}
	}
	tracer().Infof("prediction table for %q has %d entries", g.Name, T.matrix.ValueCount())
	return T, nil
}

func (T *ParseTable) insert(r *Rule, a *Symbol) error {
	if a == nil {
		panic("prediction table: lookahead is not a terminal of the grammar")
	}
	v := T.matrix.Value(r.LHS.Value, a.col)
	if v == noRule {
		tracer().Debugf("table[%s, %s] = %d", r.LHS, a, r.Serial)
		T.matrix.Set(r.LHS.Value, a.col, int32(r.Serial))
		return nil
	}
	if int(v) == r.Serial {
		return nil
	}
	err := &ConflictError{
		NonTerminal: r.LHS,
		Lookahead:   a,
		RuleA:       T.ga.g.rules[v],
		RuleB:       r,
	}
	tracer().Errorf("%v", err)
	return err
}

// Analysis returns the grammar analysis the table has been built from.
func (T *ParseTable) Analysis() *LLAnalysis {
	return T.ga
}

// Grammar returns the grammar of the table.
func (T *ParseTable) Grammar() *Grammar {
	return T.ga.g
}

// Lookup returns the rule to expand for non-terminal A, given a lookahead
// token type. If the cell is empty, or tt is not a terminal of the grammar,
// Lookup returns false.
func (T *ParseTable) Lookup(A *Symbol, tt gopred.TokType) (*Rule, bool) {
	if A == nil || A.IsTerminal() || A.Value >= T.matrix.M() {
		return nil, false
	}
	a := T.ga.g.Terminal(tt)
	if a == nil {
		return nil, false
	}
	v := T.matrix.Value(A.Value, a.col)
	if v == noRule {
		return nil, false
	}
	return T.ga.g.rules[v], true
}

// Size returns the number of occupied cells.
func (T *ParseTable) Size() int {
	return T.matrix.ValueCount()
}

// Entries returns all occupied cells in row-major order, i.e. sorted by
// non-terminal serial and then by token type of the lookahead.
func (T *ParseTable) Entries() []Entry {
	g := T.ga.g
	cols := make([]*Symbol, g.TerminalCount())
	g.EachTerminal(func(A *Symbol) interface{} {
		cols[A.col] = A
		return nil
	})
	entries := make([]Entry, 0, T.matrix.ValueCount())
	T.matrix.Each(func(i, j int, v int32) bool {
		entries = append(entries, Entry{
			NonTerminal: g.nonterminals[i],
			Lookahead:   cols[j],
			Rule:        g.rules[v],
		})
		return true
	})
	return entries
}

// tableDigest is the hashable form of a prediction table.
type tableDigest struct {
	Grammar string
	Rules   []string
	Cells   []cellDigest
}

type cellDigest struct {
	Row  int
	Col  int
	Rule int
}

// Fingerprint returns a hash over the rules and cells of the table. Tables
// built from the same grammar have identical fingerprints.
func (T *ParseTable) Fingerprint() string {
	d := tableDigest{Grammar: T.ga.g.Name}
	for _, r := range T.ga.g.rules {
		d.Rules = append(d.Rules, r.String())
	}
	for _, e := range T.Entries() {
		d.Cells = append(d.Cells, cellDigest{
			Row:  e.NonTerminal.Value,
			Col:  e.Lookahead.Value,
			Rule: e.Rule.Serial,
		})
	}
	hash, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot hash prediction table: %v", err)
		return ""
	}
	return hash
}

// Dump is a debugging helper, writing the table entries to the trace.
func (T *ParseTable) Dump() {
	tracer().Debugf("--- prediction table for %s ----------------------", T.ga.g.Name)
	for _, e := range T.Entries() {
		tracer().Debugf("%v", e)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// TableAsHTML exports a prediction table in HTML-format.
func TableAsHTML(T *ParseTable, w io.Writer) {
	if T == nil {
		tracer().Errorf("prediction table not yet created, cannot export to HTML")
		return
	}
	g := T.ga.g
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("Prediction table of %s, size = %d<p>", html.EscapeString(g.Name), T.matrix.ValueCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	g.EachTerminal(func(A *Symbol) interface{} {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(A.Name)))
		return nil
	})
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	g.EachNonTerminal(func(N *Symbol) interface{} {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(N.Name)))
		g.EachTerminal(func(A *Symbol) interface{} {
			if r, ok := T.Lookup(N, A.TokenType()); ok {
				td = fmt.Sprintf("%d", r.Serial)
			} else {
				td = "&nbsp;"
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
			return nil
		})
		io.WriteString(w, "</tr>\n")
		return nil
	})
	io.WriteString(w, "</table></body></html>\n")
}
