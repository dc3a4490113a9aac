package predictive

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/gopred/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S ::= a S b | ε
func balancedTable(t *testing.T) *ll.ParseTable {
	b := ll.NewGrammarBuilder("Balanced")
	b.LHS("S").T("a", 1).N("S").T("b", 2).End()
	b.LHS("S").Epsilon()
	return makeTable(t, b)
}

// E ::= T E'    E' ::= + T E' | ε
// T ::= F T'    T' ::= * F T' | ε
// F ::= ( E ) | id
func expressionTable(t *testing.T) *ll.ParseTable {
	b := ll.NewGrammarBuilder("Expressions")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+", '+').N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*", '*').N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(", '(').N("E").T(")", ')').End()
	b.LHS("F").T("id", scanner.Ident).End()
	return makeTable(t, b)
}

func makeTable(t *testing.T, b *ll.GrammarBuilder) *ll.ParseTable {
	g, err := b.Grammar()
	require.NoError(t, err)
	table, err := ll.BuildTable(ll.Analysis(g))
	require.NoError(t, err)
	return table
}

// tokens creates a token for every white-space separated terminal name.
// Names unknown to the grammar get token type 99.
func tokens(g *ll.Grammar, input string) []gopred.Token {
	var toks []gopred.Token
	for i, name := range strings.Fields(input) {
		tt := gopred.TokType(99)
		if A := g.TerminalByName(name); A != nil {
			tt = A.TokenType()
		}
		toks = append(toks, scanner.NewToken(tt, name, nil,
			gopred.Span{uint64(i), uint64(i + 1)},
			gopred.Position{Line: 1, Column: 2*i + 1}))
	}
	return toks
}

func parse(t *testing.T, table *ll.ParseTable, input string) (*Parser, bool, error) {
	p := NewParser(table, GenerateTree(true))
	ok, err := p.Parse(scanner.NewTokenSlice(tokens(table.Grammar(), input)))
	return p, ok, err
}

func TestParseBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	table := balancedTable(t)
	for _, input := range []string{"", "a b", "a a b b", "a a a b b b"} {
		p, ok, err := parse(t, table, input)
		assert.NoError(t, err, input)
		assert.True(t, ok, input)
		require.NotNil(t, p.ParseTree())
		assert.Equal(t, "S", p.ParseTree().Symbol.Name)
	}
}

func TestPrematureEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	p, ok, err := parse(t, balancedTable(t), "a a b")
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPrematureEOF))
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
	assert.False(t, errors.Is(err, ErrNoRule))
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, PrematureEndOfInput, serr.Kind)
	assert.Equal(t, "b", serr.Expected.Name)
	assert.True(t, serr.Lookahead.IsEOF())
	assert.Equal(t, gopred.Position{Line: 1, Column: 6}, serr.Pos)
	assert.Equal(t, "1:6: premature end of input, expected b", err.Error())
	assert.Nil(t, p.ParseTree(), "no tree for failed parses")
}

func TestTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	_, ok, err := parse(t, balancedTable(t), "a b b")
	assert.False(t, ok)
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, UnexpectedToken, serr.Kind)
	assert.True(t, serr.Expected.IsEOF())
	assert.Equal(t, "b", serr.Token.Lexeme())
	assert.Equal(t, 5, serr.Pos.Column)
}

func TestNoRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	table := expressionTable(t)
	p, ok, err := parse(t, table, "id + * id")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrNoRule))
	assert.False(t, errors.Is(err, ErrUnexpectedToken))
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "T", serr.NonTerminal.Name)
	assert.Equal(t, "*", serr.Lookahead.Name)
	assert.Equal(t, gopred.Position{Line: 1, Column: 5}, serr.Pos)
	expected := p.Expected(serr)
	require.Len(t, expected, 2)
	assert.ElementsMatch(t, []string{"id", "("}, []string{expected[0].Name, expected[1].Name})
	// unknown token types have no terminal
	_, _, err = parse(t, table, "id + ~")
	require.True(t, errors.As(err, &serr))
	assert.Nil(t, serr.Lookahead)
	assert.Contains(t, serr.Error(), `"~"`)
}

func TestReplayIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	table := expressionTable(t)
	ts := scanner.NewTokenSlice(tokens(table.Grammar(), "( id + id ) * id"))
	p := NewParser(table, GenerateTree(true))
	ok, err := p.Parse(ts)
	require.NoError(t, err)
	require.True(t, ok)
	first, steps := p.ParseTree().Indented(), p.Steps()
	ts.Reset()
	ok, err = p.Parse(ts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, p.ParseTree().Indented())
	assert.Equal(t, steps, p.Steps())
}

func TestTruncateAndRepair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	table := expressionTable(t)
	g := table.Grammar()
	for _, input := range []string{"id + * id", "( + id )", "id * ( + id )"} {
		toks := tokens(g, input)
		p := NewParser(table)
		ok, err := p.Parse(scanner.NewTokenSlice(toks))
		require.False(t, ok, input)
		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), input)
		i := int(serr.Token.Span().From()) // index of offending token
		repaired := append([]gopred.Token{}, toks[:i]...)
		// continue with "id" and close open parentheses
		repaired = append(repaired, tokens(g, "id")...)
		for _, tok := range toks[:i] {
			if tok.Lexeme() == "(" {
				repaired = append(repaired, tokens(g, ")")...)
			}
		}
		ok, err = NewParser(table).Parse(scanner.NewTokenSlice(repaired))
		assert.NoError(t, err, input)
		assert.True(t, ok, input)
	}
}

func TestSharedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	table := expressionTable(t)
	inputs := []string{"id", "id + id", "( id ) * id", "id +", "( ( id ) )", "* id"}
	want := []bool{true, true, true, false, true, false}
	got := make([]bool, len(inputs))
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, input := range inputs {
			wg.Add(1)
			go func(i int, input string) {
				defer wg.Done()
				p := NewParser(table, GenerateTree(true))
				ok, _ := p.Parse(scanner.NewTokenSlice(tokens(table.Grammar(), input)))
				if n == 0 {
					got[i] = ok
				} else if ok != want[i] {
					t.Errorf("parse of %q returned %v", input, ok)
				}
			}(i, input)
		}
		wg.Wait()
	}
	assert.Equal(t, want, got)
}

type concat struct{}

func (concat) Reduce(sym *ll.Symbol, rule int, rhs []*RuleNode, span gopred.Span, level int) interface{} {
	var b strings.Builder
	for _, r := range rhs {
		b.WriteString(r.Value.(string))
	}
	return b.String()
}

func (concat) Terminal(tokenValue int, token gopred.Token, span gopred.Span, level int) interface{} {
	return token.Lexeme()
}

func TestTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	table := expressionTable(t)
	input := "( id + id ) * id"
	p, ok, err := parse(t, table, input)
	require.NoError(t, err)
	require.True(t, ok)
	root := p.ParseTree()
	t.Logf("\n%s", root.Indented())
	assert.Equal(t, gopred.Span{0, 7}, root.Span)
	assert.Len(t, root.Tokens(), 7)
	rnode := root.Walk(concat{})
	assert.Equal(t, strings.ReplaceAll(input, " ", ""), rnode.Value)
	assert.Equal(t, "E", rnode.Symbol().Name)
	assert.Equal(t, root.Span, rnode.Extent)
	for _, ch := range root.Children {
		assert.Equal(t, root, ch.Parent())
	}
}

func TestParseWithGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := ll.NewGrammarBuilder("Parens")
	b.LHS("S").T("(", '(').N("S").T(")", ')').End()
	b.LHS("S").Epsilon()
	table := makeTable(t, b)
	p := NewParser(table)
	ok, err := p.Parse(scanner.GoTokenizer("parens", strings.NewReader("(())")))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, p.ParseTree(), "tree generation is off by default")
	ok, err = p.Parse(scanner.GoTokenizer("parens", strings.NewReader("(\n()")))
	assert.False(t, ok)
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, PrematureEndOfInput, serr.Kind)
	assert.Equal(t, 2, serr.Pos.Line)
}

func TestParserNotInitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	ok, err := NewParser(nil).Parse(scanner.NewTokenSlice(nil))
	assert.False(t, ok)
	assert.Error(t, err)
}
