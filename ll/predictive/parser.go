package predictive

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/gopred"
	"github.com/npillmayer/gopred/ll"
	"github.com/npillmayer/gopred/ll/scanner"
)

// Parser is an LL(1)-parser type. Create and initialize one with predictive.NewParser(...)
type Parser struct {
	table   *ll.ParseTable
	g       *ll.Grammar
	stack   *arraystack.Stack // parser stack of stackitems
	genTree bool              // create a parse tree
	root    *Node             // parse tree of the last run
	steps   int               // steps of the last run
}

// We store grammar symbols on the parse stack, together with the tree node
// which will be filled when the symbol is expanded or matched.
type stackitem struct {
	sym  *ll.Symbol
	node *Node // nil if no tree is generated
}

// Option configures a parser.
type Option func(p *Parser)

// GenerateTree sets or clears option GenerateTree: let the parser create a parse tree.
func GenerateTree(b bool) Option {
	return func(p *Parser) {
		p.genTree = b
	}
}

// NewParser creates an LL(1) parser for a prediction table.
func NewParser(table *ll.ParseTable, opts ...Option) *Parser {
	p := &Parser{
		table: table,
		stack: arraystack.New(),
	}
	if table != nil {
		p.g = table.Grammar()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseTree returns the root of the parse tree of the last successful parse,
// if option GenerateTree has been set. Otherwise it returns nil.
func (p *Parser) ParseTree() *Node {
	return p.root
}

// Steps returns the number of parser steps of the last run.
func (p *Parser) Steps() int {
	return p.steps
}

// Parse starts a new parse, given a scanner tokenizing the input.
// The parser must have been initialized.
//
// The parser returns true if the input string has been accepted. Otherwise
// the error is a *SyntaxError describing the first point of failure.
// The scanner is asked for a new token only after the lookahead has been
// consumed, and never again after end of input.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.table == nil || p.g == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return false, fmt.Errorf("LL(1)-parser not initialized")
	}
	if scan == nil {
		return false, fmt.Errorf("LL(1)-parser needs a scanner")
	}
	p.stack.Clear()
	p.root, p.steps = nil, 0
	var root *Node
	if p.genTree {
		root = &Node{Symbol: p.g.Start()}
	}
	p.stack.Push(stackitem{sym: p.g.EOF()})
	p.stack.Push(stackitem{sym: p.g.Start(), node: root})
	token := scan.NextToken()
	for {
		p.steps++
		x, ok := p.stack.Pop()
		if !ok { // cannot happen: end of input marker is popped only on accept
			panic("predictive parser: parse stack underflow")
		}
		tos := x.(stackitem)
		tokval := token.TokType()
		tracer().Debugf("TOS = %v, lookahead = %q/%d", tos.sym, token.Lexeme(), tokval)
		switch tos.sym.Kind() {
		case ll.EOFKind:
			if tokval == gopred.EOF {
				tracer().Debugf("accept after %d steps", p.steps)
				if root != nil {
					root.computeSpans()
				}
				p.root = root
				return true, nil
			}
			return false, p.syntaxError(UnexpectedToken, tos.sym, nil, token)
		case ll.TermKind:
			if tokval != tos.sym.TokenType() {
				kind := UnexpectedToken
				if tokval == gopred.EOF {
					kind = PrematureEndOfInput
				}
				return false, p.syntaxError(kind, tos.sym, nil, token)
			}
			tracer().Debugf("match %v", tos.sym)
			if tos.node != nil {
				tos.node.Token = token
			}
			token = scan.NextToken()
		case ll.NonTermKind:
			rule, found := p.table.Lookup(tos.sym, tokval)
			if !found {
				return false, p.syntaxError(NoRule, nil, tos.sym, token)
			}
			tracer().Debugf("expand %v", rule)
			p.expand(tos, rule)
		}
	}
}

// expand pushes the right hand side of a rule in reverse order, i.e. the
// leftmost symbol ends up on top of the stack. Epsilon-rules push nothing.
func (p *Parser) expand(tos stackitem, rule *ll.Rule) {
	rhs := rule.RHS()
	var children []*Node
	if tos.node != nil {
		tos.node.Rule = rule
		children = make([]*Node, len(rhs))
		for i, A := range rhs {
			children[i] = &Node{Symbol: A, parent: tos.node}
		}
		tos.node.Children = children
	}
	for i := len(rhs) - 1; i >= 0; i-- {
		item := stackitem{sym: rhs[i]}
		if children != nil {
			item.node = children[i]
		}
		p.stack.Push(item)
	}
}

func (p *Parser) syntaxError(kind ErrorKind, expected, nonterm *ll.Symbol, token gopred.Token) *SyntaxError {
	err := &SyntaxError{
		Kind:        kind,
		Expected:    expected,
		NonTerminal: nonterm,
		Token:       token,
		Lookahead:   p.g.Terminal(token.TokType()),
		Pos:         token.Pos(),
	}
	tracer().Infof("syntax error: %v", err)
	return err
}

// Expected returns the terminals which would have been accepted at the point
// of failure. For a failed match this is the expected terminal, for a missing
// rule it is the set of lookaheads the non-terminal has table entries for.
func (p *Parser) Expected(err *SyntaxError) []*ll.Symbol {
	if err == nil {
		return nil
	}
	if err.Expected != nil {
		return []*ll.Symbol{err.Expected}
	}
	var syms []*ll.Symbol
	p.g.EachTerminal(func(A *ll.Symbol) interface{} {
		if _, ok := p.table.Lookup(err.NonTerminal, A.TokenType()); ok {
			syms = append(syms, A)
		}
		return nil
	})
	return syms
}
