package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Balanced parentheses, written with terminals a and b:
//
//     S ::= a S b | ε
//
func balanced(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Balanced")
	b.LHS("S").T("a", 1).N("S").T("b", 2).End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	g := balanced(t)
	g.Dump()
	assert.Equal(t, 2, g.Size())
	assert.Equal(t, "S", g.Start().Name)
	assert.Equal(t, 3, g.TerminalCount(), "a, b and end of input")
	assert.Equal(t, 1, g.NonTerminalCount())
	assert.Len(t, g.ProductionsFor(g.Start()), 2)
	assert.True(t, g.Rule(1).IsEps())
	assert.Nil(t, g.Rule(2))
	assert.Equal(t, "[S] ::= [a S b]", g.Rule(0).String())
	assert.True(t, g.IsNullable(g.Start()))
	assert.Equal(t, g.TerminalByName("a"), g.Terminal(1))
	assert.True(t, g.EOF().IsEOF())
	assert.Equal(t, g.EOF(), g.Terminal(gopred.EOF))
	assert.Equal(t, g.NonTerminal("S"), g.SymbolByName("S"))
	names := g.EachSymbol(func(A *Symbol) interface{} { return A.Name })
	assert.Equal(t, []interface{}{"S", EOFName, "a", "b"}, names)
}

func TestNullableBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Nullable")
	b.LHS("S").N("A").N("B").T("c", 3).End()
	b.LHS("A").N("B").N("B").End()
	b.LHS("B").T("b", 2).End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	A, B := g.NonTerminal("A"), g.NonTerminal("B")
	assert.False(t, g.IsNullable(g.Start()))
	assert.True(t, g.IsNullable(A))
	assert.True(t, g.IsNullable(B))
	assert.True(t, g.IsNullableBody(nil))
	assert.True(t, g.IsNullableBody([]*Symbol{A, B}))
	assert.False(t, g.IsNullableBody(g.Rule(0).RHS()))
	assert.False(t, g.IsNullable(g.TerminalByName("c")))
}

func TestDuplicateRulesDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Duplicates")
	b.LHS("E").T("n", 1).End()
	b.LHS("E").T("n", 1).End()
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
	assert.Len(t, g.ProductionsFor(g.NonTerminal("E")), 1)
}

func TestMalformedGrammars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	tests := []struct {
		name  string
		build func(b *GrammarBuilder)
	}{
		{"no rules", func(b *GrammarBuilder) {}},
		{"start without rules", func(b *GrammarBuilder) {
			b.LHS("S").T("a", 1).End()
			b.StartWith("X")
		}},
		{"undefined non-terminal", func(b *GrammarBuilder) {
			b.LHS("S").N("A").End()
		}},
		{"unknown symbol", func(b *GrammarBuilder) {
			b.LHS("S").S("x").End()
		}},
		{"reserved epsilon value", func(b *GrammarBuilder) {
			b.LHS("S").T("a", 0).End()
		}},
		{"reserved EOF value", func(b *GrammarBuilder) {
			b.LHS("S").T("a", -1).End()
		}},
		{"shared token value", func(b *GrammarBuilder) {
			b.LHS("S").T("a", 1).T("b", 1).End()
		}},
		{"two token values", func(b *GrammarBuilder) {
			b.LHS("S").T("a", 1).T("a", 2).End()
		}},
		{"end of input in body", func(b *GrammarBuilder) {
			b.LHS("S").T("a", 1).S("$").End()
		}},
		{"terminal and non-terminal", func(b *GrammarBuilder) {
			b.LHS("S").T("a", 1).N("a").End()
			b.LHS("a").T("b", 2).End()
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewGrammarBuilder(tc.name)
			tc.build(b)
			g, err := b.Grammar()
			assert.Nil(t, g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedGrammar))
			var gerr *GrammarError
			require.True(t, errors.As(err, &gerr))
			assert.NotEmpty(t, gerr.Problems)
			t.Logf("%v", err)
		})
	}
}

func TestStartWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Start")
	b.LHS("A").T("a", 1).End()
	b.LHS("S").N("A").T("b", 2).End()
	b.StartWith("S")
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, "S", g.Start().Name)
	assert.Equal(t, 0, g.NonTerminal("A").Value, "serials follow order of appearance")
	// declared, but unused terminals are part of the grammar
	b = NewGrammarBuilder("Declared")
	b.Terminal("x", 7)
	b.LHS("S").T("a", 1).End()
	g, err = b.Grammar()
	require.NoError(t, err)
	assert.NotNil(t, g.Terminal(7))
}
