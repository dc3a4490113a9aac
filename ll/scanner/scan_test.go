package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestScanValuesAndPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.scanner")
	defer teardown()
	//
	sc := GoTokenizer("values", strings.NewReader("a 42\n  3.5 \"str\""))
	tokens := Collect(sc)
	require.Len(t, tokens, 5)
	assert.Equal(t, gopred.TokType(Ident), tokens[0].TokType())
	assert.Equal(t, gopred.Position{Line: 1, Column: 1}, tokens[0].Pos())
	assert.Equal(t, int64(42), tokens[1].Value())
	assert.Equal(t, gopred.Position{Line: 1, Column: 3}, tokens[1].Pos())
	assert.Equal(t, 3.5, tokens[2].Value())
	assert.Equal(t, 2, tokens[2].Pos().Line)
	assert.Equal(t, 3, tokens[2].Pos().Column)
	assert.Equal(t, "str", tokens[3].Value())
	assert.Equal(t, gopred.TokType(EOF), tokens[4].TokType())
	assert.True(t, tokens[4].Pos().IsValid(), "EOF token should have a position")
}

func TestScanErrorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.scanner")
	defer teardown()
	//
	var errs []error
	sc := GoTokenizer("errors", strings.NewReader(`x "unterminated`))
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	Collect(sc)
	assert.NotEmpty(t, errs, "expected unterminated string to be reported")
}

func TestTokenSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.scanner")
	defer teardown()
	//
	tokens := []gopred.Token{
		NewToken(1, "a", nil, gopred.Span{0, 1}, gopred.Position{Line: 1, Column: 1}),
		NewToken(2, "bb", nil, gopred.Span{2, 4}, gopred.Position{Line: 1, Column: 3}),
	}
	ts := NewTokenSlice(tokens)
	assert.Equal(t, 2, ts.Len())
	replay := Collect(ts)
	require.Len(t, replay, 3)
	eof := replay[2]
	assert.Equal(t, gopred.TokType(EOF), eof.TokType())
	assert.Equal(t, gopred.Span{4, 4}, eof.Span())
	assert.Equal(t, gopred.Position{Line: 1, Column: 5}, eof.Pos())
	// after end of input, EOF is repeated
	assert.Equal(t, gopred.TokType(EOF), ts.NextToken().TokType())
	ts.Reset()
	assert.Equal(t, "a", ts.NextToken().Lexeme())
}

func TestTokenSliceKeepsEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.scanner")
	defer teardown()
	//
	recorded := Collect(GoTokenizer("rec", strings.NewReader("x + y")))
	require.Len(t, recorded, 4)
	ts := NewTokenSlice(recorded)
	assert.Equal(t, 3, ts.Len())
	replay := Collect(ts)
	assert.Equal(t, recorded, replay)
}
