package scanner

import (
	"github.com/npillmayer/gopred"
)

// TokenSlice is a tokenizer replaying a fixed sequence of tokens. If the
// sequence does not end with an EOF token, one is appended, positioned just
// behind the last token. TokenSlice is used to re-run a parse on a recorded
// token stream.
type TokenSlice struct {
	tokens []gopred.Token
	next   int
	eof    gopred.Token
}

var _ Tokenizer = (*TokenSlice)(nil)

// NewTokenSlice creates a tokenizer for a sequence of tokens. The slice is
// not copied and must not be modified while tokens are read.
func NewTokenSlice(tokens []gopred.Token) *TokenSlice {
	ts := &TokenSlice{tokens: tokens}
	if n := len(tokens); n > 0 && tokens[n-1].TokType() == EOF {
		ts.eof = tokens[n-1]
		ts.tokens = tokens[:n-1]
	} else {
		var span gopred.Span
		var pos gopred.Position
		if n > 0 {
			last := tokens[n-1]
			span = gopred.Span{last.Span().To(), last.Span().To()}
			pos = last.Pos()
			if pos.IsValid() {
				pos.Column += len(last.Lexeme())
			}
		}
		ts.eof = NewToken(EOF, "", nil, span, pos)
	}
	return ts
}

// Collect reads all tokens from a tokenizer, up to and including the EOF
// token. Use it to record a token stream for NewTokenSlice.
func Collect(t Tokenizer) []gopred.Token {
	var tokens []gopred.Token
	for {
		tok := t.NextToken()
		tokens = append(tokens, tok)
		if tok.TokType() == EOF {
			return tokens
		}
	}
}

// SetErrorHandler is part of the Tokenizer interface. A token slice never
// reports errors.
func (ts *TokenSlice) SetErrorHandler(func(error)) {}

// NextToken is part of the Tokenizer interface.
func (ts *TokenSlice) NextToken() gopred.Token {
	if ts.next >= len(ts.tokens) {
		return ts.eof
	}
	tok := ts.tokens[ts.next]
	ts.next++
	return tok
}

// Len returns the number of tokens, not counting EOF.
func (ts *TokenSlice) Len() int {
	return len(ts.tokens)
}

// Reset rewinds the token slice to its first token.
func (ts *TokenSlice) Reset() {
	ts.next = 0
}
