package gopred

import "fmt"

// TokType is the category of a token, as assigned by a scanner. Applications
// are free to choose their token types, except for the two values reserved
// for grammar analysis.
type TokType int

const (
	// EOF is the token type of the end of input marker. It has the same value
	// as text/scanner.EOF.
	EOF TokType = -1
	// Epsilon stands for the empty word in FIRST-sets. Scanners never produce
	// tokens of this type.
	Epsilon TokType = 0
)

// TokTypeStringer names token types for display.
type TokTypeStringer func(TokType) string

// Token is an input token, as produced by a scanner. For an integer literal
// a token might be:
//
//    TokType = Int         // application defined category
//    Lexeme  = "0x1F"      // text as found in the input
//    Value   = int64(31)   // converted value, optional
//    Span    = 67…71       // input offsets covered
//    Pos     = 4:12        // line 4, column 12
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Pos() Position
}

// TokenRetriever returns the token at an input offset.
type TokenRetriever func(uint64) Token

// --- Positions --------------------------------------------------------

// Position is a line/column location within the source text. Lines start
// at 1, columns are counted as the scanner does (usually starting at 1).
// A zero Position means "unknown".
type Position struct {
	Line   int
	Column int
}

// IsValid is true for positions with a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// --- Spans ------------------------------------------------------------

// Span is a half-open range of input offsets: it starts at From and ends just
// before To. Parse tree nodes carry the span of input they derive.
type Span [2]uint64 // (x…y)

// From returns the first offset of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the offset just behind a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns y-x for span (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, i.e. for spans of epsilon-derivations.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans
// do not contribute.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
