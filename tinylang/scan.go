package tinylang

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token types of tinylang.
const (
	Def int = iota + 1
	Fed
	If
	Then
	Else
	Fi
	While
	Do
	Od
	Print
	Return
	Type // int or double, lexeme is the payload
	Or
	And
	Not
	Ident
	IntLit // payload is an int64
	DblLit // payload is a float64
	LParen
	RParen
	LBracket
	RBracket
	Comma
	Semicolon
	Dot
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	Plus
	Minus
	Star
	Slash
	Percent
	Less
	Greater
	Equal
	LessEq
	GreaterEq
	NotEqual
	Error // invalid input
)

// Terminal names as used in the grammar, by token type.
var terminalNames = map[int]string{
	Def: "def", Fed: "fed", If: "if", Then: "then", Else: "else", Fi: "fi",
	While: "while", Do: "do", Od: "od", Print: "print", Return: "return",
	Type: "type", Or: "or", And: "and", Not: "not",
	Ident: "id", IntLit: "intlit", DblLit: "dbllit",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Comma: ",", Semicolon: ";", Dot: ".",
	Assign: "=", AddAssign: "+=", SubAssign: "-=", MulAssign: "*=", DivAssign: "/=", ModAssign: "%=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Less: "<", Greater: ">", Equal: "==", LessEq: "<=", GreaterEq: ">=", NotEqual: "!=",
}

// The tokens representing literal lexemes. Every literal maps to the token
// type having the same terminal name, except for the alternative spellings
// of the boolean operators.
var literals = []string{"(", ")", "[", "]", ",", ";", ".",
	"=", "+=", "-=", "*=", "/=", "%=", "+", "-", "*", "/", "%",
	"<", ">", "==", "<=", ">=", "!=", "||", "&&", "!"}

// The keyword tokens
var keywords = []string{"def", "fed", "if", "then", "else", "fi", "while", "do", "od",
	"print", "return", "int", "double", "or", "and", "not"}

var tokenIds map[string]int // lexeme or token name => token type

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int, len(terminalNames)+8)
		for id, name := range terminalNames {
			tokenIds[name] = id
		}
		tokenIds["int"] = Type
		tokenIds["double"] = Type
		tokenIds["||"] = Or
		tokenIds["&&"] = And
		tokenIds["!"] = Not
		tokenIds["error"] = Error
	})
}

// Token returns a terminal name and its token type.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

// TokenName returns the name of a token type, suitable to be used as a
// gopred.TokTypeStringer.
func TokenName(tt gopred.TokType) string {
	switch tt {
	case gopred.EOF:
		return "#eof"
	case gopred.TokType(Error):
		return "error"
	}
	if name, ok := terminalNames[int(tt)]; ok {
		return name
	}
	return strconv.Itoa(int(tt))
}

var _ gopred.TokTypeStringer = TokenName

// Terminals returns the terminal dictionary of the grammar, mapping terminal
// names to token types.
func Terminals() map[string]gopred.TokType {
	terms := make(map[string]gopred.TokType, len(terminalNames))
	for id, name := range terminalNames {
		terms[name] = gopred.TokType(id)
	}
	return terms
}

// Lexer creates a new lexmachine lexer for tinylang.
//
// A run of digits directly followed by letters is not a number and results
// in an Error token, as does any character the language does not know.
func Lexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*`), lexmach.Skip) // skip comments
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("id"))
		lexer.Add([]byte(`[0-9]+\.[0-9]+`), lexmach.MakeValueToken(DblLit, Error, parseDouble))
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeValueToken(IntLit, Error, parseInt))
		lexer.Add([]byte(`[0-9]+([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("error"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lexer.Add([]byte(`.`), makeToken("error"))
	}
	adapter, err := lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}

func parseInt(s string) (interface{}, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseDouble(s string) (interface{}, error) {
	return strconv.ParseFloat(s, 64)
}
