package scanner

import (
	"fmt"

	"github.com/npillmayer/gopred"
)

// SimpleToken is a plain implementation of gopred.Token, produced by the
// tokenizers of this package and of package lexmach.
type SimpleToken struct {
	typ    gopred.TokType
	lexeme string
	value  interface{}
	span   gopred.Span
	pos    gopred.Position
}

var _ gopred.Token = SimpleToken{}

// NewToken creates a token from its parts.
func NewToken(typ gopred.TokType, lexeme string, value interface{}, span gopred.Span,
	pos gopred.Position) SimpleToken {
	//
	return SimpleToken{typ: typ, lexeme: lexeme, value: value, span: span, pos: pos}
}

// TokType is part of the gopred.Token interface.
func (t SimpleToken) TokType() gopred.TokType { return t.typ }

// Lexeme is part of the gopred.Token interface.
func (t SimpleToken) Lexeme() string { return t.lexeme }

// Value is part of the gopred.Token interface.
func (t SimpleToken) Value() interface{} { return t.value }

// Span is part of the gopred.Token interface.
func (t SimpleToken) Span() gopred.Span { return t.span }

// Pos is part of the gopred.Token interface.
func (t SimpleToken) Pos() gopred.Position { return t.pos }

func (t SimpleToken) String() string {
	if t.typ == EOF {
		return fmt.Sprintf("<eof>@%v", t.pos)
	}
	return fmt.Sprintf("%q@%v", t.lexeme, t.pos)
}
