package ll

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	g := balanced(t)
	T, err := BuildTable(Analysis(g))
	require.NoError(t, err)
	T.Dump()
	S := g.Start()
	r, ok := T.Lookup(S, 1)
	require.True(t, ok)
	assert.Equal(t, 0, r.Serial)
	r, ok = T.Lookup(S, 2)
	require.True(t, ok)
	assert.True(t, r.IsEps())
	r, ok = T.Lookup(S, gopred.EOF)
	require.True(t, ok)
	assert.True(t, r.IsEps())
	_, ok = T.Lookup(S, 77)
	assert.False(t, ok, "unknown token type")
	_, ok = T.Lookup(g.TerminalByName("a"), 1)
	assert.False(t, ok, "terminals have no rows")
	assert.Equal(t, 3, T.Size())
}

func TestTableEpsilonFromFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Tail")
	b.LHS("A").T("x", 1).N("B").End()
	b.LHS("B").T("y", 2).End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	ga := Analysis(g)
	B := g.NonTerminal("B")
	assert.True(t, ga.Follow(B).Equals(ga.Follow(g.Start())))
	T, err := BuildTable(ga)
	require.NoError(t, err)
	r, ok := T.Lookup(B, gopred.EOF)
	require.True(t, ok)
	assert.True(t, r.IsEps())
	assert.Equal(t, B, r.LHS)
	r, ok = T.Lookup(B, 2)
	require.True(t, ok)
	assert.Equal(t, "[B] ::= [y]", r.String())
	_, ok = T.Lookup(B, 1)
	assert.False(t, ok)
}

func TestDuplicateIsNotAConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Duplicate")
	b.LHS("E").T("n", 1).End()
	b.LHS("E").T("n", 1).End()
	g, err := b.Grammar()
	require.NoError(t, err)
	T, err := BuildTable(Analysis(g))
	require.NoError(t, err)
	assert.Equal(t, 1, T.Size())
}

func TestConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Ambiguous")
	b.LHS("E").T("n", 1).End()
	b.LHS("E").T("n", 1).T("m", 2).End()
	g, err := b.Grammar()
	require.NoError(t, err)
	T, err := BuildTable(Analysis(g))
	assert.Nil(t, T)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotLL1))
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "E", conflict.NonTerminal.Name)
	assert.Equal(t, "n", conflict.Lookahead.Name)
	assert.Equal(t, 0, conflict.RuleA.Serial)
	assert.Equal(t, 1, conflict.RuleB.Serial)
	assert.Contains(t, err.Error(), "[E] ::= [n m]")
}

func TestEpsilonFollowConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	// dangling else: FIRST(Else) and FOLLOW(Else) share 'else'
	b := NewGrammarBuilder("Dangling")
	b.LHS("S").T("if", 1).N("S").N("Else").End()
	b.LHS("S").T("x", 2).End()
	b.LHS("Else").T("else", 3).N("S").End()
	b.LHS("Else").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	_, err = BuildTable(Analysis(g))
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Else", conflict.NonTerminal.Name)
	assert.Equal(t, "else", conflict.Lookahead.Name)
}

func TestTableIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	g := expressions(t)
	T1, err := BuildTable(Analysis(g))
	require.NoError(t, err)
	T2, err := BuildTable(Analysis(g))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(T1.Entries()), fmt.Sprint(T2.Entries()))
	assert.NotEmpty(t, T1.Fingerprint())
	assert.Equal(t, T1.Fingerprint(), T2.Fingerprint())
	T3, err := BuildTable(Analysis(balanced(t)))
	require.NoError(t, err)
	assert.NotEqual(t, T1.Fingerprint(), T3.Fingerprint())
	var html1, html2 bytes.Buffer
	TableAsHTML(T1, &html1)
	TableAsHTML(T2, &html2)
	assert.Equal(t, html1.String(), html2.String())
}

func TestTableEntriesOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	g := expressions(t)
	T, err := BuildTable(Analysis(g))
	require.NoError(t, err)
	entries := T.Entries()
	require.Len(t, entries, T.Size())
	for i := 1; i < len(entries); i++ {
		prev, e := entries[i-1], entries[i]
		ordered := prev.NonTerminal.Value < e.NonTerminal.Value ||
			prev.NonTerminal.Value == e.NonTerminal.Value && prev.Lookahead.Value < e.Lookahead.Value
		assert.True(t, ordered, "entries %v and %v out of order", prev, e)
	}
	for _, e := range entries {
		r, ok := T.Lookup(e.NonTerminal, e.Lookahead.TokenType())
		assert.True(t, ok)
		assert.Equal(t, e.Rule, r)
	}
	assert.Equal(t, g, T.Grammar())
	assert.NotNil(t, T.Analysis())
}

func TestTableAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Less")
	b.LHS("C").T("<", '<').End()
	g, err := b.Grammar()
	require.NoError(t, err)
	T, err := BuildTable(Analysis(g))
	require.NoError(t, err)
	var w strings.Builder
	TableAsHTML(T, &w)
	html := w.String()
	assert.Contains(t, html, "<table")
	assert.Contains(t, html, "<td>&lt;</td>")
	assert.Contains(t, html, "<td>0</td>")
}
