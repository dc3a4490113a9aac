package predictive

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll"
)

// Kinds of syntax errors. Test for them with errors.Is.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrNoRule          = errors.New("no rule")
	ErrPrematureEOF    = errors.New("premature end of input")
)

// ErrorKind classifies syntax errors.
type ErrorKind uint8

// Syntax errors are either mismatches of a terminal, missing table entries
// for a non-terminal, or mismatches against the end of input.
const (
	UnexpectedToken ErrorKind = iota
	NoRule
	PrematureEndOfInput
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case NoRule:
		return "NoRule"
	case PrematureEndOfInput:
		return "PrematureEndOfInput"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SyntaxError is the error type for failed parses. It reports the first
// point of failure.
type SyntaxError struct {
	Kind        ErrorKind
	Expected    *ll.Symbol      // terminal expected on top of the stack (UnexpectedToken, PrematureEndOfInput)
	NonTerminal *ll.Symbol      // non-terminal without a rule for the lookahead (NoRule)
	Token       gopred.Token    // offending input token
	Lookahead   *ll.Symbol      // terminal of the offending token, nil for unknown token types
	Pos         gopred.Position // position of the offending token
}

func (e *SyntaxError) Error() string {
	found := e.found()
	switch e.Kind {
	case NoRule:
		return fmt.Sprintf("%v: no rule for %s with lookahead %s", e.Pos, e.NonTerminal, found)
	case PrematureEndOfInput:
		return fmt.Sprintf("%v: premature end of input, expected %s", e.Pos, e.Expected)
	}
	return fmt.Sprintf("%v: unexpected token %s, expected %s", e.Pos, found, e.Expected)
}

func (e *SyntaxError) found() string {
	if e.Lookahead != nil && e.Lookahead.IsEOF() {
		return e.Lookahead.Name
	}
	if e.Token != nil && e.Token.Lexeme() != "" {
		if e.Lookahead != nil && e.Lookahead.Name != e.Token.Lexeme() {
			return fmt.Sprintf("%s %q", e.Lookahead.Name, e.Token.Lexeme())
		}
		return fmt.Sprintf("%q", e.Token.Lexeme())
	}
	if e.Lookahead != nil {
		return e.Lookahead.Name
	}
	if e.Token != nil {
		return fmt.Sprintf("<token type %d>", e.Token.TokType())
	}
	return "<none>"
}

// Is makes errors.Is work with the error kinds. A premature end of input is a
// special case of an unexpected token.
func (e *SyntaxError) Is(target error) bool {
	switch target {
	case ErrUnexpectedToken:
		return e.Kind == UnexpectedToken || e.Kind == PrematureEndOfInput
	case ErrNoRule:
		return e.Kind == NoRule
	case ErrPrematureEOF:
		return e.Kind == PrematureEndOfInput
	}
	return false
}
