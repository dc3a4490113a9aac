package tinylang

import (
	"github.com/npillmayer/gopred/ll"
)

// --- Grammar ---------------------------------------------------------------

// Punctuation has to be quoted, all other terminals are declared by the
// terminal dictionary of Terminals().
const grammarBNF = `
%start Program

Program      ::= FuncDecls Declarations StmtSeq '.'

// functions
FuncDecls    ::= FuncDef ';' FuncDecls
             |   ε
FuncDef      ::= def type id '(' Params ')' Declarations StmtSeq fed
Params       ::= type id ParamsRest
             |   ε
ParamsRest   ::= ',' type id ParamsRest
             |   ε

// variables
Declarations ::= Decl ';' Declarations
             |   ε
Decl         ::= type VarList
VarList      ::= Var VarListRest
VarListRest  ::= ',' Var VarListRest
             |   ε
Var          ::= id VarIndex
VarIndex     ::= '[' Expr ']'
             |   ε

// statements
StmtSeq      ::= Stmt StmtSeqRest
StmtSeqRest  ::= ';' Stmt StmtSeqRest
             |   ε
Stmt         ::= Var AssignOp Expr
             |   if BExpr then StmtSeq ElsePart fi
             |   while BExpr do StmtSeq od
             |   print Expr
             |   return Expr
             |   ε
ElsePart     ::= else StmtSeq
             |   ε
AssignOp     ::= '=' | '+=' | '-=' | '*=' | '/=' | '%='

// arithmetic expressions
Expr         ::= Term ExprRest
ExprRest     ::= '+' Term ExprRest
             |   '-' Term ExprRest
             |   ε
Term         ::= Factor TermRest
TermRest     ::= '*' Factor TermRest
             |   '/' Factor TermRest
             |   '%' Factor TermRest
             |   ε
Factor       ::= id FactorRest
             |   intlit
             |   dbllit
             |   '(' Expr ')'
FactorRest   ::= '[' Expr ']'
             |   '(' Args ')'
             |   ε
Args         ::= Expr ArgsRest
             |   ε
ArgsRest     ::= ',' Expr ArgsRest
             |   ε

// boolean expressions
BExpr        ::= BTerm BExprRest
BExprRest    ::= or BTerm BExprRest
             |   ε
BTerm        ::= BFactor BTermRest
BTermRest    ::= and BFactor BTermRest
             |   ε
BFactor      ::= not BFactor
             |   Expr Comp Expr
Comp         ::= '<' | '>' | '==' | '<=' | '>=' | '!='
`

// GrammarSource returns the BNF text of the tinylang grammar.
func GrammarSource() string {
	return grammarBNF
}

func makeTinyGrammar() (*ll.Grammar, error) {
	return ll.ReadBNF("tinylang", grammarBNF, Terminals())
}
