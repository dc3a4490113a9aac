package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/gopred/ll/predictive"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprGrammar = `// expressions
%token id '+' '*' '(' ')'
%start E
E  ::= T Eq
Eq ::= '+' T Eq | ε
T  ::= F Tq
Tq ::= '*' F Tq | ε
F  ::= '(' E ')' | id
`

func writeGrammar(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "grammar.bnf")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func run(args ...string) (string, error) {
	*tableFlags.html = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	path := writeGrammar(t, exprGrammar)
	out, err := run("first", path)
	require.NoError(t, err)
	assert.Contains(t, out, "{ id ( }")
	out, err = run("follow", path)
	require.NoError(t, err)
	assert.Contains(t, out, "{ #eof + ) }")
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	path := writeGrammar(t, exprGrammar)
	out, err := run("table", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[F] ::= [( E )]")
	out, err = run("table", "--html", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<table")
	//
	conflicting := writeGrammar(t, "%token a\nS ::= a | a S\n")
	_, err = run("table", conflicting)
	assert.True(t, errors.Is(err, ll.ErrNotLL1))
	_, err = run("table", filepath.Join(t.TempDir(), "missing.bnf"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.ll")
	defer teardown()
	//
	path := writeGrammar(t, exprGrammar)
	out, err := run("parse", path, "id + id * id")
	require.NoError(t, err)
	assert.Contains(t, out, "Tq")
	_, err = run("parse", path, "(", "id", "'+'", "id", ")")
	assert.NoError(t, err)
	_, err = run("parse", path, "id", "+")
	require.Error(t, err)
	assert.True(t, errors.Is(err, predictive.ErrNoRule))
	assert.Contains(t, err.Error(), "expected one of: id (")
	_, err = run("parse", path, "id", "-")
	assert.Error(t, err)
}
