package ll

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/gopred"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Grammars may be given as BNF text:
//
//     // comments run until end of line
//     %token  num id
//     %start  Expr
//     Expr   ::= Term ExprRest
//     ExprRest ::= '+' Term ExprRest
//              |   ε
//     Term   ::= num | id | '(' Expr ')'
//
// Every rule starts with its head and "::=", alternatives are separated by
// "|", either on the same line or on continuation lines. An alternative may
// be empty or consist of an epsilon marker (ε, epsilon or EPSILON). Symbols
// are words delimited by white space; quoted symbols are always terminals.
// Symbols having rules are non-terminals, all others have to be declared as
// terminals, either by a "%token" line or by the terminal dictionary handed
// to ReadBNF.

// BNF token categories.
const (
	bnfWord int = iota + 1
	bnfQuoted
	bnfDef
	bnfBar
	bnfEps
	bnfToken
	bnfStart
	bnfNewline
)

var bnfLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

func bnfAction(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// bnfScanner returns the compiled BNF lexer. Patterns added first win for
// matches of equal length, therefore keywords precede general words.
func bnfScanner(src string) (*lexmachine.Scanner, error) {
	bnfLexer.once.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`//[^\n]*`), skip)
		lx.Add([]byte(`::=`), bnfAction(bnfDef))
		lx.Add([]byte(`\|`), bnfAction(bnfBar))
		lx.Add([]byte(`ε|epsilon|EPSILON`), bnfAction(bnfEps))
		lx.Add([]byte(`%token`), bnfAction(bnfToken))
		lx.Add([]byte(`%start`), bnfAction(bnfStart))
		lx.Add([]byte(`'[^'\n]+'`), bnfAction(bnfQuoted))
		lx.Add([]byte("[^ \t\r\n\\|']+"), bnfAction(bnfWord)) // tab and CR as raw bytes
		lx.Add([]byte(`\n`), bnfAction(bnfNewline))
		lx.Add([]byte(`( |\t|\r)+`), skip)
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling BNF lexer: %v", err)
			bnfLexer.err = err
			return
		}
		bnfLexer.lexer = lx
	})
	if bnfLexer.err != nil {
		return nil, bnfLexer.err
	}
	return bnfLexer.lexer.Scanner([]byte(src))
}

type bnfTok struct {
	kind   int
	lexeme string
	line   int
}

// ReadBNF reads a grammar in BNF notation. The terminals dictionary maps
// terminal names to token types and may be nil; terminals declared with
// "%token" get token types assigned automatically, starting with the lowest
// value ≥ 1 which is not in use.
//
// Any problem, including BNF syntax errors, results in a GrammarError.
func ReadBNF(name string, src string, terminals map[string]gopred.TokType) (*Grammar, error) {
	toks, problems := tokenizeBNF(src)
	gb := NewGrammarBuilder(name)
	gb.problems = append(gb.problems, problems...)
	names := make([]string, 0, len(terminals))
	used := make(map[gopred.TokType]bool, len(terminals))
	for t, v := range terminals {
		names = append(names, t)
		used[v] = true
	}
	sort.Slice(names, func(i, j int) bool { // deterministic order of declaration
		return terminals[names[i]] < terminals[names[j]] ||
			terminals[names[i]] == terminals[names[j]] && names[i] < names[j]
	})
	for _, t := range names {
		gb.declare(t, terminals[t])
	}
	r := &bnfReader{gb: gb, toks: toks, used: used, next: 1}
	r.read()
	return gb.Grammar()
}

func tokenizeBNF(src string) ([]bnfTok, []string) {
	s, err := bnfScanner(src)
	if err != nil {
		return nil, []string{fmt.Sprintf("cannot scan BNF: %v", err)}
	}
	var toks []bnfTok
	var problems []string
	for tok, err, eos := s.Next(); !eos; tok, err, eos = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				problems = append(problems, fmt.Sprintf("line %d: unexpected input %q",
					ui.StartLine, strings.TrimSpace(src[ui.StartTC:ui.FailTC])))
				s.TC = ui.FailTC
				continue
			}
			problems = append(problems, err.Error())
			break
		}
		t := tok.(*lexmachine.Token)
		lexeme := t.Value.(string)
		if t.Type == bnfQuoted {
			lexeme = lexeme[1 : len(lexeme)-1]
		}
		toks = append(toks, bnfTok{kind: t.Type, lexeme: lexeme, line: t.StartLine})
	}
	return toks, problems
}

type bnfReader struct {
	gb   *GrammarBuilder
	toks []bnfTok
	pos  int
	used map[gopred.TokType]bool // token types in use
	next gopred.TokType          // candidate for next automatic token type
}

func (r *bnfReader) peek(k int) bnfTok {
	if r.pos+k < len(r.toks) {
		return r.toks[r.pos+k]
	}
	return bnfTok{kind: 0}
}

func (r *bnfReader) atEOF() bool {
	return r.pos >= len(r.toks)
}

func (r *bnfReader) skipNewlines() {
	for !r.atEOF() && r.toks[r.pos].kind == bnfNewline {
		r.pos++
	}
}

// skipLine is used to recover from syntax errors.
func (r *bnfReader) skipLine() {
	for !r.atEOF() && r.toks[r.pos].kind != bnfNewline {
		r.pos++
	}
}

func (r *bnfReader) read() {
	for r.skipNewlines(); !r.atEOF(); r.skipNewlines() {
		tok := r.toks[r.pos]
		switch {
		case tok.kind == bnfToken:
			r.pos++
			r.tokenDirective()
		case tok.kind == bnfStart:
			r.pos++
			r.startDirective(tok.line)
		case tok.kind == bnfWord && r.peek(1).kind == bnfDef:
			r.pos += 2
			r.rule(tok)
		default:
			r.gb.problem("line %d: expected rule or directive, found %q", tok.line, tok.lexeme)
			r.skipLine()
		}
	}
}

func (r *bnfReader) tokenDirective() {
	for ; !r.atEOF() && r.toks[r.pos].kind != bnfNewline; r.pos++ {
		tok := r.toks[r.pos]
		if tok.kind != bnfWord && tok.kind != bnfQuoted {
			r.gb.problem("line %d: %q cannot be declared as a token", tok.line, tok.lexeme)
			continue
		}
		if _, declared := r.gb.terms[tok.lexeme]; declared {
			continue
		}
		for r.used[r.next] {
			r.next++
		}
		r.used[r.next] = true
		r.gb.declare(tok.lexeme, r.next)
	}
}

func (r *bnfReader) startDirective(line int) {
	tok := r.peek(0)
	if tok.kind != bnfWord {
		r.gb.problem("line %d: %%start needs a non-terminal", line)
		r.skipLine()
		return
	}
	r.gb.StartWith(tok.lexeme)
	r.pos++
	if !r.atEOF() && r.peek(0).kind != bnfNewline {
		r.gb.problem("line %d: unexpected %q after start symbol", line, r.peek(0).lexeme)
		r.skipLine()
	}
}

// rule reads the alternatives of a rule. head and "::=" have been consumed.
func (r *bnfReader) rule(head bnfTok) {
	alt := ruleDef{lhs: head.lexeme, line: head.line}
	eps := false
	closeAlt := func() {
		if eps && len(alt.rhs) > 0 {
			r.gb.problem("line %d: epsilon mixed with symbols in rule for %s", alt.line, head.lexeme)
		}
		r.gb.rules = append(r.gb.rules, alt)
	}
	for !r.atEOF() {
		tok := r.toks[r.pos]
		switch tok.kind {
		case bnfWord:
			alt.rhs = append(alt.rhs, symref{name: tok.lexeme, kind: refAny})
		case bnfQuoted:
			alt.rhs = append(alt.rhs, symref{name: tok.lexeme, kind: refTerm})
		case bnfEps:
			eps = true
		case bnfBar:
			closeAlt()
			alt = ruleDef{lhs: head.lexeme, line: tok.line}
			eps = false
		case bnfNewline:
			r.skipNewlines()
			if r.peek(0).kind != bnfBar {
				closeAlt()
				return
			}
			continue // continuation line, next token is '|'
		default:
			r.gb.problem("line %d: unexpected %q in rule for %s", tok.line, tok.lexeme, head.lexeme)
		}
		r.pos++
	}
	closeAlt()
}
