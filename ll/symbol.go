package ll

import (
	"fmt"

	"github.com/npillmayer/gopred"
)

// SymbolKind discriminates grammar symbols.
type SymbolKind uint8

// Kinds of grammar symbols. Epsilon is not a symbol: an empty right hand side
// of a rule is epsilon. Within FIRST-sets epsilon shows up as gopred.Epsilon.
const (
	NonTermKind SymbolKind = iota // symbol is expanded by rules
	TermKind                      // symbol is matched against input tokens
	EOFKind                       // end of input, a terminal, too
)

func (k SymbolKind) String() string {
	switch k {
	case NonTermKind:
		return "non-terminal"
	case TermKind:
		return "terminal"
	case EOFKind:
		return "end-of-input"
	}
	return fmt.Sprintf("kind(%d)", k)
}

// EOFName is the name of the end of input terminal, which every grammar contains.
const EOFName = "#eof"

// Symbol is a grammar symbol, i.e. either a terminal or a non-terminal.
//
// For terminals, Value is the token type the scanner will assign to matching
// tokens. For non-terminals, Value is a serial number, counting from 0 in
// order of first appearance as the left hand side of a rule.
type Symbol struct {
	Name  string
	Value int
	kind  SymbolKind
	col   int // column in a prediction table (terminals only)
}

func newTerminal(name string, tokval gopred.TokType) *Symbol {
	return &Symbol{Name: name, Value: int(tokval), kind: TermKind}
}

func newNonTerminal(name string, serial int) *Symbol {
	return &Symbol{Name: name, Value: serial, kind: NonTermKind}
}

func newEOF() *Symbol {
	return &Symbol{Name: EOFName, Value: int(gopred.EOF), kind: EOFKind}
}

// Kind returns the kind of a symbol.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal is true for terminals, including end of input.
func (A *Symbol) IsTerminal() bool {
	return A.kind == TermKind || A.kind == EOFKind
}

// IsEOF is true for the end of input terminal.
func (A *Symbol) IsEOF() bool {
	return A.kind == EOFKind
}

// TokenType returns the token type of a terminal. For non-terminals it
// returns gopred.Epsilon, which no scanner produces.
func (A *Symbol) TokenType() gopred.TokType {
	if A.IsTerminal() {
		return gopred.TokType(A.Value)
	}
	return gopred.Epsilon
}

func (A *Symbol) String() string {
	if A == nil {
		return "<nil>"
	}
	return A.Name
}
