/*
Package scanner defines the tokenizer interface the predictive parsers of
package ll/predictive read their input from.

The package provides a tokenizer for Go-like input, based on the standard
library's text/scanner, and TokenSlice, which replays a recorded sequence
of tokens. Sub-package lexmach adapts lexmachine-generated scanners.

Every tokenizer signals end of input by a token of type EOF. After that, it
keeps returning EOF tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopred.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gopred.scanner")
}

// Token types of the Go tokenizer, as defined by text/scanner. Single
// character tokens have their character as token type. EOF equals gopred.EOF.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is the interface parsers read tokens from.
type Tokenizer interface {
	NextToken() gopred.Token
	SetErrorHandler(func(error))
}

// GoScanner tokenizes input the way the Go language does. Create one with
// GoTokenizer.
type GoScanner struct {
	sc      scanner.Scanner
	onError func(error)
	unify   bool // report raw strings and chars as strings
}

var _ Tokenizer = (*GoScanner)(nil)

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a tokenizer for Go-like tokens. sourceID names the
// input in error messages.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *GoScanner {
	t := &GoScanner{onError: logError}
	t.sc.Init(input)
	t.sc.Filename = sourceID
	t.sc.Error = func(s *scanner.Scanner, msg string) {
		t.onError(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler is part of the Tokenizer interface. A nil handler restores
// the default, which writes errors to the trace.
func (t *GoScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.onError = h
}

// NextToken is part of the Tokenizer interface. Integer, float and string
// literals carry their Go value (int64, float64, unquoted string).
func (t *GoScanner) NextToken() gopred.Token {
	r := t.sc.Scan()
	if t.unify && (r == scanner.RawString || r == scanner.Char) {
		r = scanner.String
	}
	from, to := t.sc.Position, t.sc.Pos()
	pos := gopred.Position{Line: from.Line, Column: from.Column}
	if r == scanner.EOF {
		tracer().Debugf("Go tokenizer reached end of input")
		pos = gopred.Position{Line: to.Line, Column: to.Column}
		from.Offset = to.Offset
	}
	lexeme := t.sc.TokenText()
	return NewToken(gopred.TokType(r), lexeme, literalValue(r, lexeme),
		gopred.Span{uint64(from.Offset), uint64(to.Offset)}, pos)
}

func literalValue(r rune, lexeme string) interface{} {
	var v interface{}
	var err error
	switch r {
	case scanner.Int:
		v, err = strconv.ParseInt(lexeme, 0, 64)
	case scanner.Float:
		v, err = strconv.ParseFloat(lexeme, 64)
	case scanner.String, scanner.RawString, scanner.Char:
		v, err = strconv.Unquote(lexeme)
	}
	if err != nil {
		return nil
	}
	return v
}

// Option configures a Go tokenizer.
type Option func(t *GoScanner)

// SkipComments sets or clears mode-flag SkipComments of text/scanner. It
// is set by default.
func SkipComments(b bool) Option {
	return func(t *GoScanner) {
		if b {
			t.sc.Mode |= scanner.SkipComments
		} else {
			t.sc.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings: report raw strings and
// character literals as strings.
func UnifyStrings(b bool) Option {
	return func(t *GoScanner) {
		t.unify = b
	}
}
