package lexmach

import (
	"errors"
	"strings"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gopred.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gopred.scanner")
}

// LMAdapter holds a compiled lexmachine lexer.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates and compiles a lexer. tokenIds maps literals and
// keywords to their token types.
//
// Literals and keywords are added before the patterns of init. For matches
// of equal length lexmachine prefers the pattern added first, thus a keyword
// wins over an identifier pattern.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	lx := lexmachine.NewLexer()
	for _, lit := range literals {
		lx.Add(quote(lit), MakeToken(lit, tokenIds[lit]))
	}
	for _, kw := range keywords {
		lx.Add([]byte(strings.ToLower(kw)), MakeToken(kw, tokenIds[kw]))
	}
	init(lx)
	if err := lx.Compile(); err != nil {
		tracer().Errorf("cannot compile lexer DFA: %v", err)
		return nil, err
	}
	return &LMAdapter{Lexer: lx}, nil
}

// quote escapes every character of a literal lexeme.
func quote(lit string) []byte {
	var b strings.Builder
	for _, ch := range lit {
		b.WriteRune('\\')
		b.WriteRune(ch)
	}
	return []byte(b.String())
}

// Scanner creates a scanner for an input string.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, onError: logError}, nil
}

// LMScanner reads tokens from a lexmachine scanner. It implements
// scanner.Tokenizer.
type LMScanner struct {
	scanner *lexmachine.Scanner
	onError func(error)
	last    gopred.Token // most recent token, for positioning EOF
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler is part of the Tokenizer interface. A nil handler restores
// the default, which writes errors to the trace.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.onError = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
//
// Input lexmachine cannot match is reported to the error handler and skipped.
// Any other error ends the input. The EOF token is positioned just behind the
// last token.
func (lms *LMScanner) NextToken() gopred.Token {
	if lms.scanner == nil {
		return scanner.NewToken(scanner.EOF, "", nil, gopred.Span{}, gopred.Position{})
	}
	for {
		tok, err, eof := lms.scanner.Next()
		if eof {
			return lms.eofToken()
		}
		if err != nil {
			lms.onError(err)
			var ui *machines.UnconsumedInput
			if !errors.As(err, &ui) {
				return lms.eofToken()
			}
			lms.scanner.TC = ui.FailTC
			continue
		}
		lt := tok.(*lexmachine.Token)
		tracer().Debugf("token %d %q", lt.Type, lt.Lexeme)
		t := scanner.NewToken(gopred.TokType(lt.Type), string(lt.Lexeme), lt.Value,
			gopred.Span{uint64(lt.TC), uint64(lt.TC + len(lt.Lexeme))},
			gopred.Position{Line: lt.StartLine, Column: lt.StartColumn})
		lms.last = t
		return t
	}
}

func (lms *LMScanner) eofToken() gopred.Token {
	if lms.last == nil {
		return scanner.NewToken(scanner.EOF, "", nil, gopred.Span{}, gopred.Position{Line: 1, Column: 1})
	}
	end := lms.last.Span().To()
	pos := lms.last.Pos()
	pos.Column += len(lms.last.Lexeme())
	return scanner.NewToken(scanner.EOF, "", nil, gopred.Span{end, end}, pos)
}

// --- Actions ---------------------------------------------------------------

// Skip is an action which ignores the match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is an action creating a token of type id, with the lexeme as
// its value. name is for documentation only.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// MakeValueToken is an action creating a token of type id, with its value
// converted from the lexeme. If conversion fails, the token gets type
// errorID and the lexeme as its value.
func MakeValueToken(id int, errorID int, conv func(string) (interface{}, error)) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		v, err := conv(string(m.Bytes))
		if err != nil {
			return s.Token(errorID, string(m.Bytes), m), nil
		}
		return s.Token(id, v, m), nil
	}
}
